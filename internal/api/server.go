package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/checkin/internal/service"
	"github.com/limbo/checkin/internal/streak"
	"go.uber.org/zap"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	checkInService service.CheckInServiceI
	authService    service.AuthServiceI
	jwtService     JWTServiceI
	clock          streak.Clock
	logger         *zap.Logger
	limiters       *clientLimiters
}

type ServicesList struct {
	UserService    service.UserServiceI
	CheckInService service.CheckInServiceI
	AuthService    service.AuthServiceI
	JWTService     JWTServiceI
	// Clock decides what "today" is for check-ins, system clock when nil
	Clock  streak.Clock
	Logger *zap.Logger
	// CheckInsPerMinute limits check-in attempts per client, 30 when zero
	CheckInsPerMinute int
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		checkInService: servicesOptions.CheckInService,
		authService:    servicesOptions.AuthService,
		jwtService:     servicesOptions.JWTService,
		clock:          servicesOptions.Clock,
		logger:         servicesOptions.Logger,
		limiters:       newClientLimiters(servicesOptions.CheckInsPerMinute),
	}
	if s.clock == nil {
		s.clock = streak.SystemClock{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.MountRoutes()
	return s
}

func (s *Server) MountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/me", s.GetMe)
			r.Put("/me", s.UpdateMe)
			r.Delete("/me", s.DeleteMe)
			r.With(s.RateLimitMiddleware).Post("/checkins", s.CheckIn)
			r.Get("/checkins/stats", s.GetStats)
			r.Get("/checkins/history", s.GetHistory)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return errors.New("http server error: " + err.Error())
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("http server shutdown error: " + err.Error())
	}
	s.logger.Info("http server stopped")
	return nil
}
