package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/checkin/pkg/entity"
	"github.com/limbo/checkin/pkg/httputil"
	"go.uber.org/zap"
)

type HistoryResponse struct {
	UserID  string                 `json:"uid"`
	Limit   int                    `json:"limit"`
	Records []entity.CheckInRecord `json:"records"`
}

// CheckIn records today's check-in: 201 on a new record, 200 when the day was
// already recorded.
func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Warn("check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	outcome, err := s.checkInService.RecordCheckIn(ctx, uid, s.clock.Today())
	if err != nil {
		s.writeServiceError(w, logger, "check-in error", err)
		return
	}
	status := http.StatusOK
	if outcome.Recorded() {
		status = http.StatusCreated
	}
	httputil.WriteJSONResponse(w, status, outcome)
	logger.Info("check-in handled",
		zap.String("status", string(outcome.Status)),
		zap.Int("current_streak", outcome.CurrentStreak),
	)
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stats, err := s.checkInService.GetStats(ctx, uid, s.clock.Today())
	if err != nil {
		s.writeServiceError(w, logger, "stats error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	records, err := s.checkInService.GetHistory(ctx, uid, limit)
	if err != nil {
		s.writeServiceError(w, logger, "history error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HistoryResponse{
		UserID:  uid.String(),
		Limit:   limit,
		Records: records,
	})
}
