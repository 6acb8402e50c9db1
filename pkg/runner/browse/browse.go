// Package browse is the terminal browser: one entry at a time, stepping
// through the filtered view.
package browse

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/timeline/pkg/app"
)

// Browse runs the interactive browser over Service.
type Browse struct {
	Service *app.Service
	Logger  *zap.SugaredLogger
	// Watch reloads the view when the slot changes on disk.
	Watch bool
	// NoColor renders without styling.
	NoColor bool
}

func (b *Browse) Do(ctx context.Context) error {
	if b.Service == nil {
		return errors.New("can not browse, no service")
	}
	log := b.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, b.Service, NewTheme(b.NoColor, b.Service.Criteria.StartYear, b.Service.Criteria.YearTo))
	if b.Watch {
		events, err := b.Service.Watch(ctx)
		if err != nil {
			log.Warnw("watching the slot failed, reload with r", "error", err)
		} else {
			m.events = events
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}
