package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/internal/repository"
	"github.com/limbo/checkin/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Save(ctx context.Context, req *SaveUserRequest) (*entity.User, error) {
	if req == nil {
		return nil, errors.New("request is nil")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validateStruct(*req); err != nil {
		return nil, err
	}

	existing, err := us.repo.FindByName(ctx, req.Name)
	switch {
	case err == nil:
		existing.Email = req.Email
		existing.Phone = req.Phone
		if err = us.repo.Update(ctx, existing); err != nil {
			return nil, repoError("repository updating", err)
		}
		return us.repo.FindByID(ctx, existing.ID)
	case !errors.Is(err, errorvalues.ErrUserNotFound):
		return nil, repoError("repository searching", err)
	}

	id, err := us.repo.Create(ctx, &entity.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return nil, repoError("repository creating", err)
	}
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError("repository searching", err)
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError("repository searching", err)
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, repoError("repository searching", err)
	}
	return user, nil
}

func (us *UserService) UpdateContacts(ctx context.Context, id uuid.UUID, req *ContactsRequest) (*entity.User, error) {
	if req == nil {
		return nil, errors.New("request is nil")
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError("repository searching", err)
	}
	user.Email = req.Email
	user.Phone = req.Phone
	if err = us.repo.Update(ctx, user); err != nil {
		return nil, repoError("repository updating", err)
	}
	return us.repo.FindByID(ctx, id)
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := us.repo.Delete(ctx, id); err != nil {
		return repoError("repository deletion", err)
	}
	return nil
}

func (us *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := us.repo.List(ctx)
	if err != nil {
		return nil, repoError("repository listing", err)
	}
	return users, nil
}

// repoError keeps domain sentinels and storage errors as they are so callers
// can branch on them, anything else becomes a StorageError.
func repoError(op string, err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrUserNotFound),
		errors.Is(err, errorvalues.ErrUserExists),
		errors.Is(err, errorvalues.ErrStorage):
		return err
	}
	return errorvalues.NewStorageError(op, err)
}
