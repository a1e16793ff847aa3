package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/pwseq/internal/model"
)

const (
	sparkChars = " .:-=+*#%@"
	timeFormat = "2006-01-02 15:04"
)

// Summary aggregates a set of generation records.
type Summary struct {
	Count      int
	AvgEntropy float64
	MinEntropy float64
	MaxEntropy float64
	AvgLength  float64
	Advanced   int
}

// Summarize computes aggregate figures for recs.
func Summarize(recs []model.Generation) Summary {
	if len(recs) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(recs), MinEntropy: recs[0].Entropy, MaxEntropy: recs[0].Entropy}
	var entropy, length float64
	for _, rec := range recs {
		entropy += rec.Entropy
		length += float64(rec.Length)
		s.MinEntropy = math.Min(s.MinEntropy, rec.Entropy)
		s.MaxEntropy = math.Max(s.MaxEntropy, rec.Entropy)
		if rec.Advanced {
			s.Advanced++
		}
	}
	s.AvgEntropy = entropy / float64(len(recs))
	s.AvgLength = length / float64(len(recs))
	return s
}

// RenderHistory prints one line per record.
func RenderHistory(w io.Writer, recs []model.Generation) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "No generations recorded.")
		return err
	}
	headers := []string{"When", "Profile", "Items", "Length", "Entropy", "Advanced"}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		advanced := "no"
		if rec.Advanced {
			advanced = "yes"
		}
		rows = append(rows, []string{
			rec.CreatedAt.Local().Format(timeFormat),
			rec.Profile,
			fmt.Sprintf("%d", rec.Items),
			fmt.Sprintf("%d", rec.Length),
			fmt.Sprintf("%.1f", rec.Entropy),
			advanced,
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{2: true, 3: true, 4: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary prints aggregate figures and an entropy sparkline.
func RenderSummary(w io.Writer, recs []model.Generation) error {
	s := Summarize(recs)
	if s.Count == 0 {
		return nil
	}
	values := make([]float64, len(recs))
	for i, rec := range recs {
		values[i] = rec.Entropy
	}
	lines := []string{
		"",
		"Summary",
		fmt.Sprintf("Generations: %d", s.Count),
		fmt.Sprintf("Entropy avg/min/max: %.1f / %.1f / %.1f bits", s.AvgEntropy, s.MinEntropy, s.MaxEntropy),
		fmt.Sprintf("Avg length: %.1f", s.AvgLength),
		fmt.Sprintf("Advanced mode: %d of %d", s.Advanced, s.Count),
		"Trend: " + Sparkline(values),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
