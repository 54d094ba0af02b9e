package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/rolodex/internal/book"
	"github.com/mmynk/rolodex/internal/config"
	"github.com/mmynk/rolodex/internal/repl"
	"github.com/mmynk/rolodex/internal/service"
	"github.com/mmynk/rolodex/internal/storage"
	"github.com/mmynk/rolodex/internal/storage/snapshot"
	"github.com/mmynk/rolodex/internal/storage/sqlite"
	"github.com/mmynk/rolodex/pkg/logging"
)

var (
	configPath string
	bookPath   string
	backend    string
	logLevel   string
)

// rootCmd starts the interactive session. There are no subcommands; the
// assistant itself is the interface.
var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "An assistant bot that keeps contacts, phones, and birthdays",
	Long: `Rolodex is an interactive assistant for a personal address book.

It stores contact names, ten-digit phone numbers, and birthdays, and can
tell you whose birthday is coming up in the next week (weekend birthdays
are celebrated the following Monday). The book is loaded when the session
starts and saved when it ends.

Type "help" inside the session for the command list.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "rolodex.yaml", "Path to the YAML config file")
	rootCmd.Flags().StringVar(&bookPath, "book", "", "Address book file (overrides config)")
	rootCmd.Flags().StringVar(&backend, "storage", "", "Storage backend: snapshot or sqlite (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.Logging.Level))

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.Storage.Backend, "book", cfg.BookPath())

	ctx := context.Background()
	b, err := store.Load(ctx)
	if err != nil {
		// A damaged book on disk must not lock the user out; the session
		// starts empty and the save on exit replaces the broken state.
		slog.Error("Failed to load address book, starting empty", "error", err)
		b = book.New()
	} else {
		slog.Info("Address book loaded", "contacts", b.Len())
	}

	loop := repl.New(service.NewContactService(b), os.Stdin, os.Stdout)

	// SIGINT and SIGTERM leave through the same save-then-exit path as the
	// exit command.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if err := runLoop(loop, os.Stdin, sigCh); err != nil {
		slog.Error("Session ended abnormally", "error", err)
	}

	if err := store.Save(ctx, b); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	slog.Info("Address book saved", "contacts", b.Len())
	return nil
}

// runLoop runs the session and waits for it to end. On SIGINT or SIGTERM it
// closes the loop's input, which stops the loop at its next read, and then
// waits for the loop to return. The caller saves the book only after
// runLoop comes back, so an interrupt can never overlap the save with a
// command still mutating the book.
func runLoop(loop *repl.Loop, in io.Closer, sigCh <-chan os.Signal) error {
	done := make(chan error, 1)
	go func() { done <- loop.Run() }()

	select {
	case err := <-done:
		return err
	case sig := <-sigCh:
		slog.Info("Interrupted, saving before exit", "signal", sig)
		in.Close()
		// The read error from the forced close is not a session fault.
		<-done
		return nil
	}
}

// applyFlags lays the command-line flags over the loaded config. Flags win
// over both the file and the environment.
func applyFlags(cfg *config.Config) {
	if backend != "" {
		cfg.Storage.Backend = backend
	}
	if bookPath != "" {
		cfg.Storage.Path = bookPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
}

// openStore builds the storage backend the config selects. Validate has
// already rejected anything but the two known backends.
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Storage.Backend == config.BackendSQLite {
		return sqlite.New(cfg.BookPath())
	}
	return snapshot.New(cfg.BookPath())
}
