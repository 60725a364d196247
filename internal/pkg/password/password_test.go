//go:build unit

package password_test

import (
	"testing"

	"slotbook/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hash, err := password.Hash("hunter2hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2hunter2", hash)

	require.NoError(t, password.Compare(hash, "hunter2hunter2"))
	require.ErrorIs(t, password.Compare(hash, "wrong"), password.ErrMismatch)
}

func TestEmptyInputs(t *testing.T) {
	t.Parallel()

	_, err := password.Hash("")
	require.ErrorIs(t, err, password.ErrEmptyInput)

	require.ErrorIs(t, password.Compare("", "x"), password.ErrEmptyInput)
	require.ErrorIs(t, password.Compare("hash", ""), password.ErrEmptyInput)
}
