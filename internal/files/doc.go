// Package files opens, saves and deletes the documents the editor works on.
//
// A Store reads through a vfs.VFS, decodes content to UTF-8 lines and
// remembers the encoding and line ending so a save writes the file back in
// the form it was read. ParseSwitch interprets console text that is not a
// directive as a request to switch files.
package files
