package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("Manager")
	require.NoError(t, err)
	assert.Equal(t, RoleManager, role)

	_, err = ParseRole("janitor")
	assert.Error(t, err)
}
