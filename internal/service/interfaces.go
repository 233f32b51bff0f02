package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/checkin/internal/streak"
	"github.com/limbo/checkin/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type SaveUserRequest struct {
	Name  string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email string `validate:"omitempty,email,max=254"`
	Phone string `validate:"omitempty,phone"`
}

type ContactsRequest struct {
	Email string `validate:"omitempty,email,max=254"`
	Phone string `validate:"omitempty,phone"`
}

type UserServiceI interface {
	// Creates the user or, when the name is taken, updates its contacts. Returns user's data with ID
	Save(ctx context.Context, req *SaveUserRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	UpdateContacts(ctx context.Context, id uuid.UUID, req *ContactsRequest) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context) ([]*entity.User, error)
}

type CheckInServiceI interface {
	// Records today's check-in. A repeated call for the same day reports already_recorded
	RecordCheckIn(ctx context.Context, uid uuid.UUID, today streak.Date) (*entity.RecordOutcome, error)
	GetCurrentStreak(ctx context.Context, uid uuid.UUID, today streak.Date) (int, error)
	GetLongestStreak(ctx context.Context, uid uuid.UUID) (int, error)
	GetConsecutiveMissed(ctx context.Context, uid uuid.UUID, today streak.Date) (int, error)
	// Tells if the user's emergency contact must be notified today
	EvaluateReminder(ctx context.Context, uid uuid.UUID, today streak.Date) (bool, error)
	CheckReminder(ctx context.Context, uid uuid.UUID, today streak.Date) (entity.ReminderVerdict, error)
	GetStats(ctx context.Context, uid uuid.UUID, today streak.Date) (*entity.CheckInStats, error)
	// Lists latest check-ins, newest first
	GetHistory(ctx context.Context, uid uuid.UUID, limit int) ([]entity.CheckInRecord, error)
}

type AuthServiceI interface {
	// Compares the shared access code with the configured hash
	Authorize(code string) error
}
