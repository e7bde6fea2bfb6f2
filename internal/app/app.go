package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ctl "github.com/dajor/bewirtungsbeleg-sub002/internal/controller"
	authRepo "github.com/dajor/bewirtungsbeleg-sub002/internal/repository/auth"
	tokenRepo "github.com/dajor/bewirtungsbeleg-sub002/internal/repository/token"
	userRepo "github.com/dajor/bewirtungsbeleg-sub002/internal/repository/user"
	authService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/auth"
	tokenService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/token"
	userService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/user"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/database"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/email"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/ratelimit"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/redis"
)

type appServer struct {
	config      *config.Config
	controller  ctl.ControllerProvider
	rateLimiter ratelimit.Limiter
	tokenStore  tokenRepo.Store
}

// NewAppServer creates a new instance of appServer with the provided configuration.
func NewAppServer(cfg *config.Config) *appServer {
	// initialize database
	db, err := database.NewPgDB(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	// Redis is optional; without it the token store falls back to the file
	// backend and the rate limiter to process memory
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = redis.NewClient(cfg)
		if err != nil {
			logger.Fatalf("failed to initialize redis: %v", err)
		}
	}

	tokenStore, err := tokenRepo.NewStore(cfg, redisClient)
	if err != nil {
		logger.Fatalf("failed to initialize token store: %v", err)
	}

	// initialize repositories
	userRepository := userRepo.NewRepository(db)
	authRepository := authRepo.NewRepository(db)

	// shared pkgs
	emailProvider, err := email.NewEmailProvider(context.Background(), &cfg.Email)
	if err != nil {
		logger.Fatalf("failed to initialize email provider: %v", err)
	}

	// initialize services
	userSvc := userService.NewUserService(userRepository)
	authSvc := authService.NewAuthService(cfg, userSvc, authRepository)
	tokenSvc := tokenService.NewTokenService(tokenStore)

	// initialize controller
	controller := ctl.NewController(cfg, authSvc, userSvc, tokenSvc, emailProvider)

	// initialize rate limiter
	var rateLimiter ratelimit.Limiter
	if redisClient != nil {
		rateLimiter = ratelimit.NewRedisLimiter(redisClient, "rate:email:")
	} else {
		rateLimiter = ratelimit.NewMemoryLimiter()
	}

	return &appServer{
		config:      cfg,
		controller:  controller,
		rateLimiter: rateLimiter,
		tokenStore:  tokenStore,
	}
}

func (a *appServer) Serve() {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.Port),
		Handler: a.RegisterHandlers(),
	}

	// serve the server
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	logger.Infof("server started on port %s", a.config.Port)

	a.gracefulShutdown(server)

	err := a.tokenStore.Close()
	if err != nil {
		logger.Error(err, "token store close error")
	}

	logger.Info("server shutdown complete")
}

func (a *appServer) gracefulShutdown(server *http.Server) {
	ctx, stopCtx := context.WithCancel(context.Background())

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP) // wait for the sigterm
		<-signals

		// we received an os signal, shut down.
		err := server.Shutdown(ctx)
		if err != nil {
			logger.Error(err, "server shutdown error")
		} else {
			logger.Info("server graceful shutdown")
		}

		stopCtx()
	}()

	<-ctx.Done()
}
