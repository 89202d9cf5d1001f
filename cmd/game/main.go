package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/dodgebullets/internal/config"
	"github.com/tomz197/dodgebullets/internal/loop/client"
	"github.com/tomz197/dodgebullets/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so the terminal is restored and the log
// file closed before main exits.
func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// The terminal belongs to the game, so logs only go to LOG_FILE.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLoggerTo(logOut, "game")

	scores := store.NewManager(config.GetEnv("DODGE_DATA_DIR", defaultDataDir()))

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Store:  scores,
		Logger: logger,
	})
	if err := c.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// defaultDataDir is where scores live when DODGE_DATA_DIR is unset.
func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(dir, "dodgebullets")
}
