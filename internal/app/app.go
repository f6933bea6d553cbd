// Package app wires the line buffer, the command interpreter, the file
// store and the view into the editor's event loop.
package app

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/dshills/whiskey/internal/command"
	"github.com/dshills/whiskey/internal/config"
	"github.com/dshills/whiskey/internal/engine/linebuf"
	"github.com/dshills/whiskey/internal/files"
	"github.com/dshills/whiskey/internal/files/vfs"
	"github.com/dshills/whiskey/internal/input/key"
	"github.com/dshills/whiskey/internal/input/mode"
	"github.com/dshills/whiskey/internal/renderer"
	"github.com/dshills/whiskey/internal/renderer/backend"
)

// Application is the editor: one document, one console and one view.
// All methods except Shutdown must be called from the goroutine running
// the event loop.
type Application struct {
	config  *config.Config
	logger  *Logger
	backend backend.Backend
	view    *renderer.View

	buffer      *linebuf.Buffer
	interpreter *command.Interpreter
	modes       *mode.Manager
	store       *files.Store
	doc         *files.Document
	palettes    map[string]renderer.Palette
	bindings    bindings

	homeDir    string
	status     string
	exitStatus int

	running atomic.Bool
}

// bindings holds the parsed key bindings.
type bindings struct {
	toggle []key.Event
	save   []key.Event
	leave  []key.Event
}

// Options configures the application.
type Options struct {
	// Config holds the settings. Defaults to config.Default().
	Config *config.Config

	// Backend is the display. Required.
	Backend backend.Backend

	// FS is the file system documents are read from. Defaults to the OS.
	FS vfs.VFS

	// Logger receives diagnostics. Defaults to NullLogger.
	Logger *Logger

	// HomeDir is the target of a bare change-directory verb. Defaults to
	// the user's home directory.
	HomeDir string
}

// New creates an Application with an empty scratch document.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: ErrNoBackend}
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.FS == nil {
		opts.FS = vfs.NewOSFS()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.HomeDir == "" {
		opts.HomeDir, _ = os.UserHomeDir()
	}

	cfg := opts.Config
	app := &Application{
		config:  cfg,
		logger:  opts.Logger.WithComponent("app"),
		backend: opts.Backend,
		buffer:  linebuf.New(cfg.Editor.BufferOptions()...),
		modes:   mode.NewManager(),
		store:   files.NewStore(opts.FS),
		doc:     files.NewDocument(""),
		homeDir: opts.HomeDir,
	}

	parser, err := cfg.Command.Parser()
	if err != nil {
		return nil, &InitError{Component: "command", Err: err}
	}
	app.interpreter = command.NewInterpreter(
		command.WithParser(parser),
		command.WithExitFunc(app.requestExit),
	)
	for _, w := range cfg.Warnings() {
		app.logger.Warn("%s", w)
	}

	if err := app.loadBindings(); err != nil {
		return nil, &InitError{Component: "keys", Err: err}
	}
	if err := app.loadPalettes(); err != nil {
		return nil, &InitError{Component: "palette", Err: err}
	}

	app.view = renderer.NewView(opts.Backend, renderer.Options{
		LineNumbers: cfg.Editor.LineNumbers,
		TabWidth:    cfg.Editor.TabWidth,
		ScrollOff:   renderer.DefaultOptions().ScrollOff,
	})
	if p, ok := app.palettes[cfg.UI.Palette]; ok {
		app.view.SetPalette(p)
	}

	app.modes.OnEnter(mode.Command, app.interpreter.Reset)
	app.modes.OnExit(mode.Command, app.interpreter.Reset)
	app.modes.OnChange(func(from, to mode.Mode) {
		app.logger.Debug("mode %s -> %s", from, to)
	})

	return app, nil
}

func (app *Application) loadBindings() error {
	var err error
	if app.bindings.toggle, err = config.Bindings(app.config.Keys.Toggle); err != nil {
		return err
	}
	if app.bindings.save, err = config.Bindings(app.config.Keys.Save); err != nil {
		return err
	}
	app.bindings.leave, err = config.Bindings(app.config.Keys.Leave)
	return err
}

func (app *Application) loadPalettes() error {
	app.palettes = make(map[string]renderer.Palette, len(app.config.UI.Palettes))
	for name, pc := range app.config.UI.Palettes {
		p, err := renderer.ParsePalette(name, pc.Foreground, pc.Background, pc.Gutter, pc.Accent)
		if err != nil {
			return err
		}
		app.palettes[name] = p
	}
	return nil
}

// Open loads name as the current document, replacing the buffer.
func (app *Application) Open(name string) error {
	doc, err := app.store.Open(name)
	if err != nil {
		return NewOperationError("open", name, err)
	}
	app.doc = doc
	app.buffer.Replace(doc.Lines)
	if doc.New {
		app.setStatus("%s [new]", doc.Name())
	} else {
		app.setStatus("%s: %d lines", doc.Name(), app.buffer.LineCount())
	}
	app.logger.Info("opened %s (%s, %s)", doc.Path, doc.Encoding, string(doc.LineEnding))
	return nil
}

// Save writes the buffer to the current document's file.
func (app *Application) Save() error {
	return app.saveAs("")
}

func (app *Application) saveAs(name string) error {
	lines := app.buffer.Lines()

	var err error
	if name == "" {
		err = app.store.Save(app.doc, lines)
	} else {
		err = app.store.SaveAs(app.doc, name, lines)
	}
	if err != nil {
		if errors.Is(err, files.ErrNoName) {
			return NewOperationError("save", "", fmt.Errorf("%w: use %cwf <name>", files.ErrNoName, app.interpreter.Parser().Sentinel()))
		}
		return NewOperationError("save", app.doc.Name(), err)
	}

	app.buffer.MarkClean()
	app.setStatus("wrote %s", app.doc.Name())
	app.logger.Info("saved %s", app.doc.Path)
	return nil
}

// Run initializes the backend and processes events until the exit verb
// or an interrupt. It returns ErrQuit on a normal exit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.logger.Info("started")
	app.Render()
	return app.eventLoop()
}

// Shutdown asks a running event loop to exit. It is safe to call from
// any goroutine.
func (app *Application) Shutdown() {
	if app.running.Load() {
		app.backend.Interrupt()
	}
}

// IsRunning reports whether the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// ExitStatus returns the status requested by the exit verb.
func (app *Application) ExitStatus() int {
	return app.exitStatus
}

// Mode returns the current input mode.
func (app *Application) Mode() mode.Mode {
	return app.modes.Current()
}

// Buffer returns the document buffer.
func (app *Application) Buffer() *linebuf.Buffer {
	return app.buffer
}

// Interpreter returns the console interpreter.
func (app *Application) Interpreter() *command.Interpreter {
	return app.interpreter
}

// Document returns the current document.
func (app *Application) Document() *files.Document {
	return app.doc
}

// Status returns the status message.
func (app *Application) Status() string {
	return app.status
}

// Palette returns the name of the active palette.
func (app *Application) Palette() string {
	return app.view.Palette().Name
}

// Render draws the current state.
func (app *Application) Render() {
	snap := app.buffer.Snapshot()
	lines := make([][]rune, len(snap.Lines))
	for i, l := range snap.Lines {
		lines[i] = []rune(l)
	}

	name := ""
	if app.doc.Path != "" {
		name = app.doc.Name()
	}

	app.view.Render(renderer.State{
		Lines:         lines,
		Cursor:        snap.Cursor,
		Mode:          app.modes.Current(),
		Console:       app.interpreter.Text(),
		ConsoleCursor: app.interpreter.Cursor(),
		Status:        app.status,
		FileName:      name,
		Modified:      snap.Modified,
	})
}

// requestExit is the interpreter's exit function. It records the status
// and leaves terminating to the event loop, which sees ErrQuit from
// Dispatch.
func (app *Application) requestExit(status int) {
	app.exitStatus = status
}

func (app *Application) setStatus(format string, args ...any) {
	app.status = fmt.Sprintf(format, args...)
}

// reportError shows err in the status line and logs it.
func (app *Application) reportError(err error) {
	app.status = err.Error()
	app.logger.Warn("%v", err)
}
