package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/bestnotes/internal/app"
	"github.com/jask/bestnotes/internal/config"
	"github.com/jask/bestnotes/internal/database"
	"github.com/jask/bestnotes/internal/database/repository"
	"github.com/jask/bestnotes/internal/feedback"
	"github.com/jask/bestnotes/internal/logger"
	"github.com/jask/bestnotes/internal/notes"
	"github.com/jask/bestnotes/internal/onboarding"
	"github.com/jask/bestnotes/internal/tui"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "bestnotes",
		Short:         "The Best Notes App, in your terminal",
		Long:          "Capture ideas. Grow streaks. Notes live for the session unless the sqlite store is given a file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/bestnotes/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	cmd.AddCommand(newCardsCmd(), newValidateCmd(), newVersionCmd())
	return cmd
}

func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("config: %w", err)
		}
	}
	return cfg, nil
}

func run(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	ctx = logger.NewContext(ctx, log)

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	cards, err := onboarding.Load()
	if err != nil {
		return fmt.Errorf("onboarding: %w", err)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Warn("using local timezone", zap.String("timezone", cfg.UI.Timezone), zap.Error(err))
		loc = time.Local
	}

	ctrl := app.New(store, buildFeedback(cfg.Feedback, log), cards)
	log.Info("starting", zap.String("store", cfg.Store.Driver))

	p := tea.NewProgram(
		tui.New(ctx, ctrl, tui.Options{DateFormat: cfg.UI.DateFormat, Location: loc}),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// openStore returns the configured note store and its release function.
func openStore(cfg config.StoreConfig) (notes.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.Open(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return repository.NewNoteRepo(db), func() { _ = db.Close() }, nil
	default:
		return notes.NewMemoryStore(), func() {}, nil
	}
}

func buildFeedback(cfg config.FeedbackConfig, log *zap.Logger) feedback.Multi {
	fb := feedback.Multi{feedback.NewLog(log)}
	if cfg.Bell {
		fb = append(fb, feedback.NewBell(os.Stderr))
	}
	return fb
}
