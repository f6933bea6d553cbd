// Package command implements the console directive language.
//
// Text typed into the console is classified before it is tokenized:
//
//   - text that does not start with the sentinel (default '?') is a file
//     name and is delegated to the file subsystem with CodeFileHandle
//   - text that starts with the sentinel is matched against the verb table;
//     the first verb, in table order, that is a prefix of the remainder wins
//
// Because matching is first-prefix-wins, table order matters: a verb that is
// a prefix of a later verb makes the later verb unreachable. Table.Shadowed
// reports such verbs. Codes are table positions, so a host that binds the
// built-in codes to actions accepts only tables that append to the default
// one; Table.CheckBuiltins enforces that.
//
// The default table is:
//
//	?cd [dir]    change the working directory
//	?wf [name]   write the current file
//	?rf name     delete a file
//	?e           exit the editor
//	?p name      switch the color palette
//	?l n         go to line n
//
// An Interpreter owns the console text and its cursor. Execute resolves the
// text and returns a Directive for the host to dispatch; the exit verb also
// invokes the interpreter's exit function.
package command
