package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	animeRepository "anime-catalog/internal/anime/repository"
	"anime-catalog/internal/middleware"
	"anime-catalog/internal/user"
	"anime-catalog/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	// Security
	mw     middleware.Middleware
	userUC user.UseCase

	// Anime domain
	animeRepo  animeRepository.Repository
	pagination PaginationConfig

	// Readiness probe for the backing store; nil means always ready.
	ready func(ctx context.Context) error
}

// PaginationConfig carries listing defaults into the anime handler.
type PaginationConfig struct {
	DefaultPage int
	DefaultSize int
	MaxSize     int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	Middleware  middleware.Middleware
	UserUseCase user.UseCase

	AnimeRepository animeRepository.Repository
	Pagination      PaginationConfig

	Ready func(ctx context.Context) error
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		userUC:          cfg.UserUseCase,
		animeRepo:       cfg.AnimeRepository,
		pagination:      cfg.Pagination,
		ready:           cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.userUC == nil {
		return errors.New("user usecase is required")
	}
	if srv.animeRepo == nil {
		return errors.New("anime repository is required")
	}
	if srv.pagination.DefaultSize <= 0 {
		return errors.New("pagination default size must be positive")
	}
	return nil
}
