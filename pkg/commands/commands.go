package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/store"
)

var (
	output    = &options.OutputOptions{}
	ephemeral bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: base.Wrap80("Browse and edit a personal timeline of dated entries."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false,
		base.Wrap80("Keep entries in memory only; nothing is read from or written to disk."))

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addFacets(topLevel)
	addRename(topLevel)
	addImport(topLevel)
	addExport(topLevel)
	addBrowse(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newLogger builds a stderr logger at the configured level.
func newLogger(level string) *zap.SugaredLogger {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}

// loadService reads the config, opens the slot and loads the entries.
func loadService(ctx context.Context) (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := newLogger(cfg.LogLevel())

	var p store.Persistence
	if ephemeral {
		p = store.NewMemory(nil)
	} else if p, err = store.Open(cfg, log); err != nil {
		return nil, nil, err
	}

	svc := app.New(p, cfg, log)
	if err := svc.Load(ctx); err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
