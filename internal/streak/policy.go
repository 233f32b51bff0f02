package streak

import (
	"fmt"
	"strings"
)

// CurrentMode decides how the running streak treats a today without a check-in.
type CurrentMode int

const (
	// CurrentTrailing counts the unbroken run ending yesterday while today is
	// still open. A user who checked in every day up to yesterday keeps the run.
	CurrentTrailing CurrentMode = iota
	// CurrentRequireToday reports 0 until today's check-in exists.
	CurrentRequireToday
)

// MissedMode decides how a gap of more than one day since the last check-in is
// turned into a missed-day count.
type MissedMode int

const (
	// MissedGrace does not count today: gap-1.
	MissedGrace MissedMode = iota
	// MissedStrict counts every day since the last check-in: gap.
	MissedStrict
)

const DefaultNotifyThreshold = 2

type Policy struct {
	Current         CurrentMode
	Missed          MissedMode
	NotifyThreshold int
}

func DefaultPolicy() Policy {
	return Policy{
		Current:         CurrentTrailing,
		Missed:          MissedGrace,
		NotifyThreshold: DefaultNotifyThreshold,
	}
}

// ShouldNotify is the reminder rule: two or more consecutive missed days.
func ShouldNotify(consecutiveMissed int) bool {
	return consecutiveMissed >= DefaultNotifyThreshold
}

func (p Policy) ShouldNotify(consecutiveMissed int) bool {
	threshold := p.NotifyThreshold
	if threshold <= 0 {
		threshold = DefaultNotifyThreshold
	}
	return consecutiveMissed >= threshold
}

func ParseCurrentMode(s string) (CurrentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trailing":
		return CurrentTrailing, nil
	case "require_today", "require-today":
		return CurrentRequireToday, nil
	}
	return CurrentTrailing, fmt.Errorf("unknown current streak mode %q", s)
}

func ParseMissedMode(s string) (MissedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grace":
		return MissedGrace, nil
	case "strict":
		return MissedStrict, nil
	}
	return MissedGrace, fmt.Errorf("unknown missed days mode %q", s)
}

func (m CurrentMode) String() string {
	if m == CurrentRequireToday {
		return "require_today"
	}
	return "trailing"
}

func (m MissedMode) String() string {
	if m == MissedStrict {
		return "strict"
	}
	return "grace"
}
