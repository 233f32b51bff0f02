package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactKind string

const (
	ContactEmail ContactKind = "email"
	ContactPhone ContactKind = "sms"
)

type Contact struct {
	Kind    ContactKind
	Address string
}

// Contacts lists the non-empty contact addresses of the user, email first.
func (u *User) Contacts() []Contact {
	out := make([]Contact, 0, 2)
	if u.Email != "" {
		out = append(out, Contact{Kind: ContactEmail, Address: u.Email})
	}
	if u.Phone != "" {
		out = append(out, Contact{Kind: ContactPhone, Address: u.Phone})
	}
	return out
}

type CheckInRecord struct {
	ID                int64     `json:"id"`
	UserID            uuid.UUID `json:"uid"`
	CheckDate         time.Time `json:"check_date"`
	ConsecutiveMissed int       `json:"consecutive_missed"`
	CreatedAt         time.Time `json:"created_at"`
}

type CheckInStats struct {
	UserID            uuid.UUID  `json:"uid"`
	TotalDays         int        `json:"total_days"`
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	ConsecutiveMissed int        `json:"consecutive_missed"`
	CheckedInToday    bool       `json:"checked_in_today"`
	LastCheckIn       *time.Time `json:"last_check_in,omitempty"`
	NeedsReminder     bool       `json:"needs_reminder"`
}

type RecordStatus string

const (
	StatusRecorded        RecordStatus = "recorded"
	StatusAlreadyRecorded RecordStatus = "already_recorded"
)

// RecordOutcome is the result of a check-in attempt. Streak values are filled
// for both statuses and reflect the history after the attempt.
type RecordOutcome struct {
	Status            RecordStatus `json:"status"`
	Date              time.Time    `json:"date"`
	CurrentStreak     int          `json:"current_streak"`
	LongestStreak     int          `json:"longest_streak"`
	ConsecutiveMissed int          `json:"missed_before"`
}

func (o *RecordOutcome) Recorded() bool {
	return o.Status == StatusRecorded
}

type ReminderVerdict struct {
	Missed int
	Notify bool
}
