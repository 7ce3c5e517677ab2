package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/puissance4/backend/internal/config"
	"github.com/puissance4/backend/internal/repository/redis"
	"github.com/puissance4/backend/internal/service/bot"
	"github.com/puissance4/backend/pkg/logger"
)

const usage = `usage: puissance4 <command> [flags]

commands:
  play      play a game on the terminal
  move      print the engine's column for a position
  selfplay  run computer-vs-computer games
`

type command func(ctx context.Context, args []string) error

var commands = map[string]command{
	"play":     runPlay,
	"move":     runMove,
	"selfplay": runSelfPlay,
}

// app carries what every command needs once flags and config are read.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	engine *bot.Engine
	close  func()
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd(ctx, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// commonFlags registers the settings shared by all commands.
func commonFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("difficulty", "medium", "easy, medium or hard")
	fs.Duration("search-timeout", 0, "upper bound for one computer move (0 = none)")
	fs.Int("parallel-workers", 0, "goroutines used to split the root of the search")
	fs.String("redis-url", "", "redis address used to cache computed moves")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.Bool("log-development", false, "human readable logs")
	fs.String("env-file", ".env", "dotenv file loaded before reading P4_* variables")
	return fs
}

// setup loads the env file, binds parsed flags into viper and builds the
// logger and engine.
func setup(ctx context.Context, fs *pflag.FlagSet) (*app, error) {
	envFile, _ := fs.GetString("env-file")
	if err := config.LoadEnvFiles(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, flag := range map[string]string{
		"difficulty":       "difficulty",
		"search_timeout":   "search-timeout",
		"parallel_workers": "parallel-workers",
		"redis_url":        "redis-url",
		"log_level":        "log-level",
		"log_development":  "log-development",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg, err := config.LoadConfig(v)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, err
	}

	closers := []func(){func() { _ = log.Sync() }}

	var cache bot.MoveCache = bot.NewMemoryCache(cfg.CacheSize)
	if cfg.RedisURL != "" {
		if client := redis.InitRedis(ctx, cfg.RedisURL, cfg.RedisPassword, log); client != nil {
			cache = redis.NewMoveCache(client, cfg.RedisTTL)
			closers = append(closers, func() { _ = client.Close() })
		}
	}

	engine := bot.NewEngine(
		bot.WithLogger(log),
		bot.WithParallelRoot(cfg.ParallelWorkers),
		bot.WithTimeout(cfg.SearchTimeout),
		bot.WithCache(cache),
	)

	return &app{
		cfg:    cfg,
		logger: log,
		engine: engine,
		close: func() {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		},
	}, nil
}
