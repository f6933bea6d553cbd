package app

import (
	"errors"

	"github.com/dshills/whiskey/internal/engine/linebuf"
	"github.com/dshills/whiskey/internal/input/key"
	"github.com/dshills/whiskey/internal/input/mode"
	"github.com/dshills/whiskey/internal/renderer/backend"
)

// eventLoop is the main application loop. Each event is handled to
// completion and followed by a redraw.
func (app *Application) eventLoop() error {
	for {
		ev := app.backend.PollEvent()
		if err := app.HandleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("exiting with status %d", app.exitStatus)
			}
			return err
		}
		app.Render()
	}
}

// HandleEvent processes a backend event. It returns ErrQuit when the
// application should exit.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev.Key)
	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
		return nil
	case backend.EventInterrupt:
		app.logger.Info("interrupted")
		return ErrQuit
	default:
		return nil
	}
}

// handleKeyEvent applies the global bindings, then routes the key to the
// current mode.
func (app *Application) handleKeyEvent(ev key.Event) error {
	switch {
	case matchesAny(ev, app.bindings.toggle):
		app.modes.Toggle()
		return nil
	case matchesAny(ev, app.bindings.save):
		if err := app.Save(); err != nil {
			app.reportError(err)
		}
		return nil
	}

	if app.modes.Is(mode.Command) {
		return app.handleCommandKey(ev)
	}
	app.handleEditKey(ev)
	return nil
}

// handleEditKey edits the document.
func (app *Application) handleEditKey(ev key.Event) {
	if ev.IsChar() {
		app.buffer.InsertChar(ev.Rune)
		return
	}
	if ev.IsModified() {
		return
	}
	if ev.Key.IsArrowKey() {
		app.buffer.MoveCursor(arrowDirections[ev.Key])
		return
	}

	switch ev.Key {
	case key.KeyTab:
		app.buffer.InsertTab()
	case key.KeyBackspace:
		app.buffer.Backspace()
	case key.KeyEnter:
		app.buffer.NewLine()
	}
}

var arrowDirections = map[key.Key]linebuf.Direction{
	key.KeyUp:    linebuf.Up,
	key.KeyDown:  linebuf.Down,
	key.KeyLeft:  linebuf.Left,
	key.KeyRight: linebuf.Right,
}

// handleCommandKey edits the console line and executes it on Enter.
func (app *Application) handleCommandKey(ev key.Event) error {
	if matchesAny(ev, app.bindings.leave) {
		app.modes.Switch(mode.Edit)
		return nil
	}
	if ev.IsChar() {
		app.interpreter.InsertChar(ev.Rune)
		return nil
	}
	if ev.IsModified() {
		return nil
	}

	switch ev.Key {
	case key.KeyBackspace:
		app.interpreter.Backspace()
	case key.KeyLeft:
		app.interpreter.MoveLeft()
	case key.KeyRight:
		app.interpreter.MoveRight()
	case key.KeyUp:
		app.interpreter.HistoryPrev()
	case key.KeyDown:
		app.interpreter.HistoryNext()
	case key.KeyEnter:
		return app.execute()
	}
	return nil
}

// execute runs the console line. Dispatch errors are shown in the status
// line; only ErrQuit is returned.
func (app *Application) execute() error {
	d := app.interpreter.Execute()
	app.logger.Debug("execute %q -> %s", d.Raw, d.Code)

	err := app.Dispatch(d)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrQuit):
		return err
	default:
		app.reportError(err)
		return nil
	}
}

func matchesAny(ev key.Event, bindings []key.Event) bool {
	for _, b := range bindings {
		if ev.Matches(b) {
			return true
		}
	}
	return false
}
