package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/limbo/checkin/pkg/cleanup"
	"github.com/pressly/goose"
)

// Connect opens a pool shared by all repositories. Closing it is registered
// as a cleanup job.
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging pgxpool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// Migrate applies goose migrations from dir.
func Migrate(cfg DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = goose.Up(conn, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
