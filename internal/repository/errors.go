package repository

import "errors"

// ErrNotFound is returned when a lookup for a single chat or profile matches
// no rows. Services translate it into app_errors.ErrNotFound or into a
// fallback, so sql.ErrNoRows never leaves this package.
var ErrNotFound = errors.New("repository: not found")
