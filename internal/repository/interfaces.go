package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/checkin/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database and returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's name and contacts
	Update(ctx context.Context, user *entity.User) error
	// Deletes user together with its check-ins
	Delete(ctx context.Context, uid uuid.UUID) error
	// Lists every user ordered by creation time
	List(ctx context.Context) ([]*entity.User, error)
}

type InsertResult int

const (
	Inserted InsertResult = iota
	AlreadyExists
)

func (r InsertResult) String() string {
	if r == AlreadyExists {
		return "already_exists"
	}
	return "inserted"
}

type CheckInsRepositoryI interface {
	// Inserts the check-in unless one exists for (uid, date). Never fails on a duplicate
	InsertIfAbsent(ctx context.Context, uid uuid.UUID, date time.Time, missed int) (InsertResult, error)
	// Provides all check-in dates of uid in ascending order
	ListDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Returns date of the last check-in, nil if there are none
	LatestDate(ctx context.Context, uid uuid.UUID) (*time.Time, error)
	// Inspects if check-in exists
	Exists(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error)
	// Provides up to limit latest check-ins, newest first
	History(ctx context.Context, uid uuid.UUID, limit int) ([]entity.CheckInRecord, error)
	// Returns count of check-ins of uid
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	s := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		s += "?sslmode=" + pgcfg.SSLMode
	}
	return s
}

// ConnStr is a DBConfig holding a ready connection string.
type ConnStr string

func (c ConnStr) ConnString() string {
	return string(c)
}
