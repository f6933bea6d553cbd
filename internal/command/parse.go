package command

import "strings"

// DefaultSentinel marks console text as a directive.
const DefaultSentinel = '?'

// Directive is a resolved console line.
type Directive struct {
	// Code is the dispatch code.
	Code Code

	// Verb is the matched verb, empty unless Code is a verb code.
	Verb string

	// Arg is the text following the verb with surrounding spaces trimmed.
	// For CodeFileHandle it is the whole raw text.
	Arg string

	// Raw is the text as typed.
	Raw string
}

// Parser resolves console text against a verb table.
type Parser struct {
	table    *Table
	sentinel rune
}

// NewParser creates a parser. A nil table selects DefaultTable and a zero
// sentinel selects DefaultSentinel.
func NewParser(table *Table, sentinel rune) *Parser {
	if table == nil {
		table = DefaultTable()
	}
	if sentinel == 0 {
		sentinel = DefaultSentinel
	}
	return &Parser{table: table, sentinel: sentinel}
}

// Table returns the parser's verb table.
func (p *Parser) Table() *Table {
	return p.table
}

// Sentinel returns the directive sentinel.
func (p *Parser) Sentinel() rune {
	return p.sentinel
}

// Resolve returns the dispatch code for text.
func (p *Parser) Resolve(text string) Code {
	return p.Parse(text).Code
}

// Parse classifies text and splits off the verb argument.
func (p *Parser) Parse(text string) Directive {
	d := Directive{Raw: text}

	if !strings.HasPrefix(text, string(p.sentinel)) {
		d.Code = CodeFileHandle
		d.Arg = text
		return d
	}

	// A run of sentinels counts as one.
	rest := strings.TrimLeft(text, string(p.sentinel))

	verb, ok := p.table.Lookup(rest)
	if !ok {
		d.Code = CodeUnknown
		return d
	}

	d.Code = verb.Code
	d.Verb = verb.Name
	d.Arg = strings.TrimSpace(rest[len(verb.Name):])
	return d
}
