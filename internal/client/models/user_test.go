package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("Admin")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, r)

	r, err = ParseRole("User")
	require.NoError(t, err)
	require.Equal(t, RoleUser, r)

	_, err = ParseRole("")
	require.Error(t, err)

	_, err = ParseRole("Superuser")
	require.Error(t, err)
}
