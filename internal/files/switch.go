package files

import (
	"strings"

	"github.com/dshills/whiskey/internal/command"
)

// SaveFlag, appended to a file name, saves the current file before
// switching.
const SaveFlag = "-w"

// ParseSwitch interprets console text handed to the file handler.
//
//	"notes.txt"     → "notes.txt", command.CodeSwitchFile
//	"notes.txt -w"  → "notes.txt", command.CodeSwitchAndSave
//	"" or "-w"      → "", command.CodeUnknown
func ParseSwitch(text string) (string, command.Code) {
	name := strings.TrimSpace(text)
	code := command.CodeSwitchFile

	if before, ok := strings.CutSuffix(name, SaveFlag); ok && (before == "" || endsWithSpace(before)) {
		name = strings.TrimSpace(before)
		code = command.CodeSwitchAndSave
	}
	if name == "" {
		return "", command.CodeUnknown
	}
	return name, code
}

func endsWithSpace(s string) bool {
	return strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\t")
}
