package updater

import "errors"

// ErrNotFound is returned by ReadVersion when no line starts with Prefix.
var ErrNotFound = errors.New("version not found")
