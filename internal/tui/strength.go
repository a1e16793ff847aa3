package tui

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Bits of entropy at which the strength bar is full.
const fullStrengthBits = 128.0

// Rating names a strength bracket for an entropy estimate.
func Rating(bits float64) string {
	switch {
	case bits < 28:
		return "very weak"
	case bits < 36:
		return "weak"
	case bits < 60:
		return "fair"
	case bits < 128:
		return "strong"
	default:
		return "very strong"
	}
}

// StrengthBar renders an entropy estimate as a progress bar followed by the
// bit count and rating. Width is the bar width in cells.
func StrengthBar(bits float64, width int, color bool) string {
	if width < 1 {
		width = 1
	}
	ratio := 0.0
	if bits > 0 && !math.IsNaN(bits) {
		ratio = math.Min(bits/fullStrengthBits, 1)
	}
	bar := progress.New(
		progress.WithWidth(width),
		progress.WithoutPercentage(),
		progress.WithSolidFill(ratingColor(bits)),
	)
	view := bar.ViewAs(ratio)
	if !color {
		view = ansi.Strip(view)
	}
	return fmt.Sprintf("%s %.1f bits (%s)", view, bits, Rating(bits))
}

func ratingColor(bits float64) string {
	switch {
	case bits < 36:
		return "#FF4D4F"
	case bits < 60:
		return "#C89A3A"
	default:
		return "#52C41A"
	}
}

// ShouldUseColor reports whether w is a terminal and NO_COLOR is unset.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	return IsTerminal(w)
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
