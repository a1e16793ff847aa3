// Package model defines shared data structures.
package model

import "time"

// Settings are the resolved options for one generate run.
type Settings struct {
	Profile string
	Count   int
	History bool
}

// Generation records one generated password without the password itself.
type Generation struct {
	ID        string
	CreatedAt time.Time
	Profile   string
	Items     int
	Length    int
	Entropy   float64
	Advanced  bool
}

// HistoryFilter selects generation records.
type HistoryFilter struct {
	Profile string
	Since   *time.Time
	Last    int
}
