// Package app runs the calculator's single-threaded event loop: it draws the
// keypad and panel, turns input events into tags, and feeds them to the
// backend.
package app

import (
	"errors"
	"log/slog"

	"github.com/1broseidon/gridcalc/internal/calc"
	"github.com/1broseidon/gridcalc/internal/config"
	"github.com/1broseidon/gridcalc/internal/layout"
	"github.com/1broseidon/gridcalc/internal/widget"
	"github.com/1broseidon/gridcalc/internal/x11"
)

// Screen is a drawing surface that also delivers input events.
type Screen interface {
	widget.Surface
	NextEvent() (x11.Event, error)
}

// App owns the backend and widgets for one window.
type App struct {
	screen   Screen
	backend  *calc.Backend
	buttons  []widget.Button[calc.Tag]
	panel    *widget.Panel
	quitKey  string
	keyboard bool
	logger   *slog.Logger
}

// New lays out the keypad for cfg and returns an app drawing on screen.
func New(screen Screen, cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	buttons, panel := layout.Build(cfg.Scale, cfg.Thickness)
	return &App{
		screen:   screen,
		backend:  calc.NewBackend(),
		buttons:  buttons,
		panel:    panel,
		quitKey:  cfg.QuitKey,
		keyboard: cfg.Keyboard,
		logger:   logger,
	}
}

// Backend exposes the calculator state.
func (a *App) Backend() *calc.Backend {
	return a.backend
}

// Run draws the first frame and processes events until the quit key or a
// window close. Surface and connection failures end the loop and are
// returned; arithmetic errors only show on the panel.
func (a *App) Run() error {
	if err := a.drawFrame(); err != nil {
		return err
	}

	for {
		ev, err := a.screen.NextEvent()
		if err != nil {
			return err
		}

		switch ev.Kind {
		case x11.EventClose:
			a.logger.Info("window closed")
			return nil

		case x11.EventKeyPress:
			if ev.Key == a.quitKey {
				a.logger.Info("quit key pressed", "key", ev.Key)
				return nil
			}
			if a.keyboard {
				if tag, ok := layout.KeyTag(ev.Key); ok {
					a.dispatch(tag)
					if err := a.drawFrame(); err != nil {
						return err
					}
					continue
				}
			}
			if err := a.press(); err != nil {
				return err
			}

		case x11.EventButtonPress:
			if err := a.press(); err != nil {
				return err
			}

		case x11.EventExpose:
			if err := a.drawFrame(); err != nil {
				return err
			}
		}
	}
}

// press hit-tests the pointer against every button, applies the tags of all
// hits in order, and redraws.
func (a *App) press() error {
	tags, err := widget.Update(a.screen, a.buttons)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		a.dispatch(tag)
	}
	return a.drawFrame()
}

func (a *App) dispatch(tag calc.Tag) {
	err := a.backend.Apply(tag)
	if err == nil {
		a.logger.Debug("applied tag", "tag", tag.String(), "display", a.backend.String())
		return
	}

	var arith *calc.ArithmeticError
	if errors.As(err, &arith) {
		a.logger.Warn("arithmetic error", "tag", tag.String(), "op", arith.Op.String(), "error", arith.Err)
		return
	}
	a.logger.Warn("tag rejected", "tag", tag.String(), "error", err)
}

func (a *App) drawFrame() error {
	a.panel.Update(a.backend)
	if err := a.panel.Draw(a.screen); err != nil {
		return err
	}
	for _, b := range a.buttons {
		if err := b.Draw(a.screen); err != nil {
			return err
		}
	}
	return nil
}
