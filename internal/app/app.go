package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mluksch/personboard/internal/config"
	"github.com/mluksch/personboard/internal/database"
	"github.com/mluksch/personboard/internal/repository"
	"github.com/mluksch/personboard/internal/server/rest"
	"github.com/mluksch/personboard/internal/service"
	"github.com/mluksch/personboard/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run loads the configuration, connects to the database and runs the REST
// server until an interrupt or termination signal arrives.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg.DatabaseType, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error(fmt.Sprintf("Failed to close database: %s", err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	personRepository := repository.NewPersonRepository(db)
	postRepository := repository.NewPostRepository(db)
	userRepository := repository.NewUserRepository(db)

	tokenService := service.NewUserTokenService(cfg.Secret, cfg.TokenDuration)
	personService := service.NewPersonService(personRepository)
	postService := service.NewPostService(postRepository, personRepository)
	userService := service.NewUserService(tokenService, userRepository)

	server := rest.NewServer(
		personService,
		postService,
		userService,
		tokenService,
		rest.WithAddress(fmt.Sprintf("%s:%d", cfg.ServerAddress, cfg.ServerPort)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("Server listening on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	return nil
}
