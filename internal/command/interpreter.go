package command

import (
	"os"
	"unicode"
)

// ExitFunc terminates the process. It receives the exit status.
type ExitFunc func(status int)

// Interpreter owns the console text, its cursor, and the command history.
type Interpreter struct {
	parser *Parser
	exit   ExitFunc

	// text holds the directive being typed.
	text []rune

	// cursor is the column within text. It is unrelated to the document cursor.
	cursor int

	// history holds executed directives, oldest first.
	history []string

	// historyIndex is the current position in history (-1 = current input).
	historyIndex int

	// saved holds the in-progress text while browsing history.
	saved []rune
}

// InterpreterOption configures an Interpreter.
type InterpreterOption func(*Interpreter)

// WithParser sets the parser used to resolve directives.
func WithParser(p *Parser) InterpreterOption {
	return func(in *Interpreter) {
		if p != nil {
			in.parser = p
		}
	}
}

// WithExitFunc replaces os.Exit as the action of the exit verb.
func WithExitFunc(fn ExitFunc) InterpreterOption {
	return func(in *Interpreter) {
		if fn != nil {
			in.exit = fn
		}
	}
}

// NewInterpreter creates an interpreter with an empty command line.
func NewInterpreter(opts ...InterpreterOption) *Interpreter {
	in := &Interpreter{
		parser:       NewParser(nil, 0),
		exit:         os.Exit,
		text:         make([]rune, 0, 64),
		history:      make([]string, 0, 100),
		historyIndex: -1,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Parser returns the interpreter's parser.
func (in *Interpreter) Parser() *Parser {
	return in.parser
}

// Text returns the pending command text.
func (in *Interpreter) Text() string {
	return string(in.text)
}

// Cursor returns the column of the command cursor.
func (in *Interpreter) Cursor() int {
	return in.cursor
}

// Reset clears the command text and moves the cursor to column 0.
func (in *Interpreter) Reset() {
	in.text = in.text[:0]
	in.cursor = 0
	in.historyIndex = -1
	in.saved = nil
}

// InsertChar inserts a printable rune at the cursor.
// Control characters are ignored.
func (in *Interpreter) InsertChar(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	in.text = append(in.text, 0)
	copy(in.text[in.cursor+1:], in.text[in.cursor:])
	in.text[in.cursor] = r
	in.cursor++
}

// Backspace deletes the rune before the cursor.
// It returns false when the cursor is at column 0.
func (in *Interpreter) Backspace() bool {
	if in.cursor == 0 {
		return false
	}
	in.text = append(in.text[:in.cursor-1], in.text[in.cursor:]...)
	in.cursor--
	return true
}

// MoveLeft moves the cursor one rune left.
func (in *Interpreter) MoveLeft() bool {
	if in.cursor == 0 {
		return false
	}
	in.cursor--
	return true
}

// MoveRight moves the cursor one rune right.
func (in *Interpreter) MoveRight() bool {
	if in.cursor >= len(in.text) {
		return false
	}
	in.cursor++
	return true
}

// Resolve returns the dispatch code of the pending text without executing it.
func (in *Interpreter) Resolve() Code {
	return in.parser.Resolve(in.Text())
}

// Execute resolves the pending text, records it in history and clears the
// command line. The exit verb calls the exit function before returning;
// every other directive is returned for the host to dispatch.
func (in *Interpreter) Execute() Directive {
	d := in.parser.Parse(in.Text())
	in.addToHistory(d.Raw)
	in.Reset()

	if d.Code == CodeExit {
		in.exit(0)
	}
	return d
}

// HistoryPrev replaces the text with the previous history entry.
func (in *Interpreter) HistoryPrev() bool {
	if len(in.history) == 0 {
		return false
	}

	switch {
	case in.historyIndex == -1:
		in.saved = append([]rune(nil), in.text...)
		in.historyIndex = len(in.history) - 1
	case in.historyIndex > 0:
		in.historyIndex--
	default:
		return false
	}

	in.setText(in.history[in.historyIndex])
	return true
}

// HistoryNext moves toward newer entries, restoring the in-progress text
// after the newest one.
func (in *Interpreter) HistoryNext() bool {
	if in.historyIndex == -1 {
		return false
	}

	in.historyIndex++
	if in.historyIndex >= len(in.history) {
		in.historyIndex = -1
		in.text = append(in.text[:0], in.saved...)
		in.cursor = len(in.text)
		in.saved = nil
		return true
	}

	in.setText(in.history[in.historyIndex])
	return true
}

func (in *Interpreter) setText(s string) {
	in.text = append(in.text[:0], []rune(s)...)
	in.cursor = len(in.text)
}

func (in *Interpreter) addToHistory(cmd string) {
	if cmd == "" {
		return
	}
	// Don't add duplicates of the last command
	if n := len(in.history); n > 0 && in.history[n-1] == cmd {
		return
	}
	in.history = append(in.history, cmd)
}
