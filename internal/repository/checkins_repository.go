package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/pkg/entity"
)

type CheckInsRepository struct {
	conn PgConnection
}

func NewCheckInsRepoWithConn(conn PgConnection) *CheckInsRepository {
	return &CheckInsRepository{
		conn: conn,
	}
}

// InsertIfAbsent relies on the (user_id, check_date) unique constraint, so the
// existence check and the insert are a single statement.
func (cr *CheckInsRepository) InsertIfAbsent(ctx context.Context, uid uuid.UUID, date time.Time, missed int) (InsertResult, error) {
	ct, err := cr.conn.Exec(
		ctx,
		`INSERT INTO check_ins (user_id, check_date, consecutive_missed) VALUES ($1, $2, $3) ON CONFLICT (user_id, check_date) DO NOTHING;`,
		uid,
		date,
		missed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return Inserted, errorvalues.ErrUserNotFound
			}
		}
		return Inserted, errorvalues.NewStorageError("creating check-in", err)
	}
	if ct.RowsAffected() == 0 {
		return AlreadyExists, nil
	}
	return Inserted, nil
}

func (cr *CheckInsRepository) ListDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT check_date FROM check_ins WHERE user_id = $1 ORDER BY check_date;`,
		uid,
	)
	if err != nil {
		return nil, errorvalues.NewStorageError("listing check-in dates", err)
	}
	defer rows.Close()
	result := make([]time.Time, 0, 16)
	for rows.Next() {
		var date time.Time
		if err = rows.Scan(&date); err != nil {
			return nil, errorvalues.NewStorageError("check-in date parsing", err)
		}
		result = append(result, date)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.NewStorageError("unexpected check-in rows", err)
	}
	return result, nil
}

func (cr *CheckInsRepository) LatestDate(ctx context.Context, uid uuid.UUID) (*time.Time, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT check_date FROM check_ins WHERE user_id = $1 ORDER BY check_date DESC LIMIT 1;`,
		uid,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errorvalues.NewStorageError("getting last check-in date", err)
	}
	return &date, nil
}

func (cr *CheckInsRepository) Exists(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	row := cr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM check_ins WHERE user_id = $1 AND check_date = $2);`,
		uid,
		date,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errorvalues.NewStorageError("inspecting if check-in exists", err)
	}
	return exists, nil
}

func (cr *CheckInsRepository) History(ctx context.Context, uid uuid.UUID, limit int) ([]entity.CheckInRecord, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, user_id, check_date, consecutive_missed, created_at FROM check_ins WHERE user_id = $1 ORDER BY check_date DESC LIMIT $2;`,
		uid,
		limit,
	)
	if err != nil {
		return nil, errorvalues.NewStorageError("getting check-in history", err)
	}
	defer rows.Close()
	result := make([]entity.CheckInRecord, 0, limit)
	for rows.Next() {
		rec := entity.CheckInRecord{}
		if err = rows.Scan(&rec.ID, &rec.UserID, &rec.CheckDate, &rec.ConsecutiveMissed, &rec.CreatedAt); err != nil {
			return nil, errorvalues.NewStorageError("check-in row parsing", err)
		}
		result = append(result, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.NewStorageError("unexpected check-in rows", err)
	}
	return result, nil
}

func (cr *CheckInsRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM check_ins WHERE user_id = $1;`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errorvalues.NewStorageError("counting check-ins", err)
	}
	return count, nil
}
