// Package errs is a thin facade over cockroachdb/errors so the rest of
// the codebase never imports it directly.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark stamps err with a sentinel so the standard errors.Is matches both
// the sentinel and the original cause chain. Built on Join rather than
// cockroach's Mark: marks attached with Mark are only visible to
// cockroach's own Is, not the stdlib one the handlers use.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Join(err, markErr)
}

// ExtractStackLines flattens the verbose %+v rendering for structured
// log output. maxLines <= 0 keeps everything.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
