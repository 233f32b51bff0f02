package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.Nil, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, email, phone) VALUES ($1, $2, $3) RETURNING id;`,
		user.Name,
		user.Email,
		user.Phone,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.Nil, errorvalues.ErrUserExists
			}
		}
		return uuid.Nil, errorvalues.NewStorageError("creating user", err)
	}
	return id, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, email, phone, created_at, updated_at FROM users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errorvalues.NewStorageError("searching user by name", err)
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, email, phone, created_at, updated_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errorvalues.NewStorageError("searching user by id", err)
	}
	return &user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET name = $1, email = $2, phone = $3, updated_at = now() WHERE id = $4;`,
		user.Name,
		user.Email,
		user.Phone,
		user.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrUserExists
		}
		return errorvalues.NewStorageError("updating user", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errorvalues.NewStorageError("deleting user", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, name, email, phone, created_at, updated_at FROM users ORDER BY created_at, name;`)
	if err != nil {
		return nil, errorvalues.NewStorageError("listing users", err)
	}
	defer rows.Close()
	result := make([]*entity.User, 0, 8)
	for rows.Next() {
		user := &entity.User{}
		if err = rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, errorvalues.NewStorageError("user row parsing", err)
		}
		result = append(result, user)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.NewStorageError("unexpected user rows", err)
	}
	return result, nil
}
