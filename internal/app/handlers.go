package app

import (
	"strconv"

	"github.com/dshills/whiskey/internal/command"
	"github.com/dshills/whiskey/internal/files"
)

// Dispatch performs the action a directive resolved to. It returns
// ErrQuit for the exit verb; any other error describes a failed action.
func (app *Application) Dispatch(d command.Directive) error {
	switch d.Code {
	case command.CodeChangeDir:
		return app.changeDir(d.Arg)
	case command.CodeWriteFile:
		return app.saveAs(d.Arg)
	case command.CodeDeleteFile:
		return app.deleteFile(d.Arg)
	case command.CodeExit:
		return ErrQuit
	case command.CodePalette:
		return app.switchPalette(d.Arg)
	case command.CodeGoToLine:
		return app.goToLine(d.Arg)
	case command.CodeFileHandle:
		return app.handleFile(d.Arg)
	case command.CodeUnknown:
		return NewOperationError("run", d.Raw, ErrUnknownCommand)
	default:
		if !d.Code.IsVerb() {
			return NewOperationError("run", d.Code.String(), ErrUnknownCommand)
		}
		app.logger.Warn("unhandled verb %q (code %d)", d.Verb, d.Code)
		return NewOperationError("run", d.Verb, ErrUnknownCommand)
	}
}

func (app *Application) changeDir(dir string) error {
	if dir == "" {
		dir = app.homeDir
	}
	if err := app.store.Chdir(dir); err != nil {
		return NewOperationError("cd", dir, err)
	}
	wd, err := app.store.Getwd()
	if err != nil {
		wd = dir
	}
	app.setStatus("%s", wd)
	return nil
}

func (app *Application) deleteFile(name string) error {
	if name == "" {
		return NewOperationError("delete", "", ErrMissingArgument)
	}
	if err := app.store.Delete(name); err != nil {
		return NewOperationError("delete", name, err)
	}
	app.setStatus("deleted %s", name)
	app.logger.Info("deleted %s", name)
	return nil
}

func (app *Application) switchPalette(name string) error {
	if name == "" {
		return NewOperationError("palette", "", ErrMissingArgument)
	}
	p, ok := app.palettes[name]
	if !ok {
		return NewOperationError("palette", name, ErrUnknownPalette)
	}
	app.view.SetPalette(p)
	app.setStatus("palette %s", name)
	return nil
}

func (app *Application) goToLine(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return NewOperationError("line", arg, ErrInvalidLine)
	}
	row := app.buffer.GoToLine(n)
	app.setStatus("line %d", row+1)
	return nil
}

// handleFile interprets console text without a sentinel as a file to
// switch to, saving the current one first when the save flag is given.
func (app *Application) handleFile(text string) error {
	name, code := files.ParseSwitch(text)
	switch code {
	case command.CodeSwitchAndSave:
		if err := app.Save(); err != nil {
			return err
		}
	case command.CodeSwitchFile:
		if app.buffer.Modified() {
			app.logger.Warn("discarding changes to %s", app.doc.Name())
		}
	default:
		return NewOperationError("open", text, ErrUnknownCommand)
	}
	return app.Open(name)
}
