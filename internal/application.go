package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
	"golang.org/x/sync/errgroup"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// ServeOptions - switches of the serve command.
type ServeOptions struct {
	// InMemory - keep sessions in the process instead of Redis.
	InMemory bool
}

// PlayOptions - game settings of the play command.
type PlayOptions struct {
	Mode     string
	First    tictactoe.Mark
	Computer tictactoe.Mark
}

// RunApp - runs the HTTP and WebSocket servers until SIGINT, SIGTERM or a server failure.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, opts ServeOptions) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf, opts)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, gameRepo, service.NewBotService())
	computerMark := conf.Bot.ComputerMark()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)

		if httpErr := rest.New(logger, gameManager, computerMark).Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)

		if wsErr := websocket.New(logger, gameManager, computerMark).Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Application context canceled, shutting down")

		return nil
	})

	return group.Wait()
}

// PlayConsole - one terminal session against the computer or in hot seat mode.
func PlayConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, opts PlayOptions, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	computer := opts.Computer
	if computer == tictactoe.Empty {
		computer = conf.Bot.ComputerMark()
	}

	game, err := entity.NewGame(pkg.GenerateGameID(), opts.Mode, opts.First, computer)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	cons := console.New(logger, in, out, service.NewBotService(), game, conf.Bot.MoveDelay)

	if err = cons.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("console failed: %w", err)
	}

	return nil
}

func newGameRepository(ctx context.Context, conf *config.Config, opts ServeOptions) (repository.GameRepository, func() error, error) {
	if opts.InMemory {
		return repository.NewMemoryGameRepository(conf.Session.TTL), func() error { return nil }, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage, conf.Session.TTL), redisStorage.Close, nil
}
