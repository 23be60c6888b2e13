// Package fsutil provides file system helpers shared by the config layer and
// the CLI.
package fsutil

// File and directory permission constants.
const (
	FileModeDefault = 0o644 // -rw-r--r--
	FileModeSecure  = 0o600 // -rw-------: token files and other credentials

	DirModeDefault = 0o755 // drwxr-xr-x
)
