package command

import "strconv"

// Code is the dispatch code a directive resolves to.
// Non-negative codes are indexes into the verb table.
type Code int

// Reserved codes.
const (
	// CodeUnknown means the sentinel was present but no verb matched.
	CodeUnknown Code = -4

	// CodeSwitchAndSave asks the file subsystem to save the current file
	// and then switch to the named one ("name -w").
	CodeSwitchAndSave Code = -3

	// CodeSwitchFile asks the file subsystem to switch to the named file
	// without saving.
	CodeSwitchFile Code = -2

	// CodeFileHandle delegates the raw text to the file subsystem.
	CodeFileHandle Code = -1
)

// Verb codes of the default table.
const (
	CodeChangeDir Code = iota
	CodeWriteFile
	CodeDeleteFile
	CodeExit
	CodePalette
	CodeGoToLine
)

// String returns a human-readable code name.
func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeSwitchAndSave:
		return "switch-and-save"
	case CodeSwitchFile:
		return "switch-file"
	case CodeFileHandle:
		return "file-handle"
	case CodeChangeDir:
		return "change-dir"
	case CodeWriteFile:
		return "write-file"
	case CodeDeleteFile:
		return "delete-file"
	case CodeExit:
		return "exit"
	case CodePalette:
		return "palette"
	case CodeGoToLine:
		return "go-to-line"
	default:
		return "verb-" + strconv.Itoa(int(c))
	}
}

// IsVerb returns true if the code indexes the verb table.
func (c Code) IsVerb() bool {
	return c >= 0
}
