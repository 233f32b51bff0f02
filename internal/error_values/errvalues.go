package errorvalues

import "errors"

var (
	ErrUserExists      = errors.New("such user already exists")
	ErrUserNotFound    = errors.New("user doesn't exists")
	ErrWrongAccessCode = errors.New("wrong access code")
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidDate     = errors.New("invalid date")
	ErrValidation      = errors.New("validation error")
	ErrStorage         = errors.New("storage error")
	ErrNoAddress       = errors.New("contact has no address for this channel")
)

// ErrUnknownUser is returned when a check-in references a user that doesn't exist.
var ErrUnknownUser = ErrUserNotFound

// StorageError wraps a failure of the underlying store. It matches ErrStorage
// with errors.Is and keeps the driver error reachable through Unwrap.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return e.Op + " error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
