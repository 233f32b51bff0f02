package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/internal/service"
	"github.com/limbo/checkin/pkg/httputil"
	"go.uber.org/zap"
)

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type LoginRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type UpdateContactsRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Warn("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err = s.authService.Authorize(req.Code); err != nil {
		logger.Warn("registering error: wrong access code")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong access code", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Save(ctx, &service.SaveUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		s.writeServiceError(w, logger, "registering error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("user saved", zap.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Warn("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err = s.authService.Authorize(req.Code); err != nil {
		logger.Warn("login error: wrong access code")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong access code", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetByName(ctx, req.Name)
	if err != nil {
		s.writeServiceError(w, logger, "login error", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "get user error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) UpdateMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateContactsRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("update contacts error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.UpdateContacts(ctx, uid, &service.ContactsRequest{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		s.writeServiceError(w, logger, "update contacts error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("contacts updated")
}

func (s *Server) DeleteMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.userService.DeleteAccount(ctx, uid); err != nil {
		s.writeServiceError(w, logger, "account deletion error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("account deleted")
}

// writeServiceError maps service errors onto status codes. Storage faults are
// reported as 503 so clients can tell them apart from bugs.
func (s *Server) writeServiceError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Warn(op+": validation failed", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", err)
	case errors.Is(err, errorvalues.ErrInvalidDate):
		logger.Warn(op+": invalid date", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Warn(op + ": existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Warn(op + ": unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrStorage):
		logger.Error(op+": storage error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable", nil)
	default:
		logger.Error(op+": service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
