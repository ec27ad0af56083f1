//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("not in the right state")

	t.Run("stdlib errors.Is sees the sentinel", func(t *testing.T) {
		err := errs.Mark(errs.New("phone too short"), sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("stdlib errors.Is still sees the cause", func(t *testing.T) {
		cause := errors.New("row not found")
		err := errs.Mark(errs.Wrap(cause, "load session"), sentinel)
		require.ErrorIs(t, err, cause)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("nil cause collapses to the sentinel", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("wrapped error keeps its identity", func(t *testing.T) {
		cause := errors.New("boom")
		require.ErrorIs(t, errs.Wrap(cause, "context"), cause)
	})
}
