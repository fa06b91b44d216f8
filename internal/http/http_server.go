package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codeprep.net/internal/config"
	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	auth2 "gitlab.com/codeprep.net/internal/core/services/auth"
	"gitlab.com/codeprep.net/internal/core/services/coding"
	"gitlab.com/codeprep.net/internal/core/services/contribution"
	interview2 "gitlab.com/codeprep.net/internal/core/services/interview"
	"gitlab.com/codeprep.net/internal/core/services/problem"
	"gitlab.com/codeprep.net/internal/handlers"
	"gitlab.com/codeprep.net/internal/handlers/auth"
	codinghandler "gitlab.com/codeprep.net/internal/handlers/coding"
	"gitlab.com/codeprep.net/internal/handlers/contributions"
	"gitlab.com/codeprep.net/internal/handlers/interview"
	"gitlab.com/codeprep.net/internal/handlers/problems"
)

type ServiceProvider struct {
	codingService    coding.ICodingService
	problemService   problem.IProblemService
	interviewService interview2.IInterviewService
	contributions    contribution.IContributionService

	ggAuth    auth2.IAuthService
	localAuth auth2.ILocalAuthService
	identity  secondary.IdentityProvider
	ggConfig  *config.GGAuthConfig

	jwtProvider primary.JWTService
}

func NewServiceProvider(
	codingService coding.ICodingService,
	problemService problem.IProblemService,
	interviewService interview2.IInterviewService,
	contributionService contribution.IContributionService,
	ggAuth auth2.IAuthService,
	localAuth auth2.ILocalAuthService,
	identity secondary.IdentityProvider,
	ggConfig *config.GGAuthConfig,
	jwtProvider primary.JWTService,
) *ServiceProvider {
	return &ServiceProvider{
		codingService:    codingService,
		problemService:   problemService,
		interviewService: interviewService,
		contributions:    contributionService,
		ggAuth:           ggAuth,
		localAuth:        localAuth,
		identity:         identity,
		ggConfig:         ggConfig,
		jwtProvider:      jwtProvider,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            string
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
	writeTimeout    time.Duration
}

const defaultWriteTimeout = 120 * time.Second

func NewServer(port string, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	sp := s.ServiceProvider
	if sp.jwtProvider == nil {
		return errors.New("jwt provider is required")
	}

	r := mux.NewRouter()
	mw := handlers.New(sp.jwtProvider, s.logger)
	r.Use(mw.Recover, mw.Logging)

	handlers.NewHealthHandler().RegisterRoutes(r)
	auth.NewHandler(&auth.ServiceDependencies{
		GGAuthService:    sp.ggAuth,
		LocalAuthService: sp.localAuth,
		Identity:         sp.identity,
		GGConfig:         sp.ggConfig,
	}, s.logger).RegisterRoutes(r, mw)
	codinghandler.NewHandler(sp.codingService, s.logger).RegisterRoutes(r, mw)
	problems.NewHandler(sp.problemService, s.logger).RegisterRoutes(r, mw)
	interview.NewHandler(sp.interviewService, s.logger).RegisterRoutes(r, mw)
	contributions.NewHandler(sp.contributions, s.logger).RegisterRoutes(r, mw)

	s.router = r
	return nil
}

// SetWriteTimeout sets how long a response may take. Graded submissions
// wait on the sandbox, so this must exceed the grading deadline.
func (s *Server) SetWriteTimeout(d time.Duration) {
	s.writeTimeout = d
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves in the background. errCh receives a listener failure.
func (s *Server) Start(ctx context.Context) <-chan error {
	errCh := make(chan error, 1)
	writeTimeout := s.writeTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		s.logger.Info("Server listening", "service", s.ServiceName, "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
