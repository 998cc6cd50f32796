package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/spf13/cobra"
)

var (
	configPath string

	serveOpts app.ServeOptions

	playMode     string
	playFirst    string
	playComputer string
)

// main - is the entry point of the application. Without a subcommand it serves.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST and WebSocket servers",
		RunE:  runServe,
	}
	serveCmd.Flags().BoolVar(&serveOpts.InMemory, "memory", false, "keep sessions in memory instead of Redis")

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Tic-tac-toe with a computer that never loses",
		RunE:         runServe,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to config.yml")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal: 1-9 plays a cell, n starts a new round, q quits",
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&playMode, "mode", entity.HumanVsComputerMode, "pvc (against the computer) or pvp (hot seat)")
	playCmd.Flags().StringVar(&playFirst, "first", string(tictactoe.X), "mark that opens every round")
	playCmd.Flags().StringVar(&playComputer, "computer", "", "computer's mark, bot.mark from config when empty")

	rootCmd.AddCommand(serveCmd, playCmd)

	return rootCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	conf := config.MustLoad(configPath)
	logger := initLogger(conf, os.Stdout)

	if err := app.RunApp(cmd.Context(), logger, conf, serveOpts); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	conf := config.MustLoad(configPath)
	logger := initLogger(conf, cmd.ErrOrStderr())

	opts := app.PlayOptions{
		Mode:     playMode,
		First:    tictactoe.Mark(playFirst),
		Computer: tictactoe.Mark(playComputer),
	}

	return app.PlayConsole(cmd.Context(), logger, conf, opts, cmd.InOrStdin(), cmd.OutOrStdout())
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, "config.yml")
}

// initialize logger.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
