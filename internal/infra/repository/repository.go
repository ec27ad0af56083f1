package repository

import "errors"

// errNoRowsUpdated marks a write that matched no row. Callers see it through
// the NOT_FOUND repository error kind.
var errNoRowsUpdated = errors.New("no rows updated")
