package staff_test

import (
	"testing"

	"resty/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		chef, err := staff.RoleFromString("Chef")
		require.NoError(t, err)
		assert.Equal(t, staff.Chef, chef)

		server, err := staff.RoleFromString("Server")
		require.NoError(t, err)
		assert.Equal(t, staff.Server, server)
	})

	t.Run("should return error for invalid input", func(t *testing.T) {
		for _, input := range []string{"", "chef", "Manager"} {
			role, err := staff.RoleFromString(input)

			require.Error(t, err)
			assert.Equal(t, staff.UnknownRole, role)
		}
	})
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "Chef", staff.Chef.String())
	assert.Equal(t, "Server", staff.Server.String())
	assert.Equal(t, "Unknown", staff.UnknownRole.String())
}

func TestNewMember(t *testing.T) {
	t.Run("should create member with valid parameters", func(t *testing.T) {
		member, err := staff.NewMember("chef1", "Chef Maria", staff.Chef)

		require.NoError(t, err)
		require.NoError(t, member.Validate())
		assert.Equal(t, "chef1", member.ID())
		assert.Equal(t, "Chef Maria", member.Name())
		assert.Equal(t, staff.Chef, member.Role())
	})

	t.Run("should return error for empty id", func(t *testing.T) {
		_, err := staff.NewMember("", "Chef Maria", staff.Chef)

		require.Error(t, err)
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := staff.NewMember("chef1", "", staff.Chef)

		require.Error(t, err)
	})

	t.Run("should return error for invalid role", func(t *testing.T) {
		_, err := staff.NewMember("chef1", "Chef Maria", staff.UnknownRole)

		require.Error(t, err)
	})
}

func TestMemberIsEqual(t *testing.T) {
	maria, err := staff.NewMember("chef1", "Chef Maria", staff.Chef)
	require.NoError(t, err)
	sameID, err := staff.NewMember("chef1", "Renamed", staff.Server)
	require.NoError(t, err)
	tom, err := staff.NewMember("server1", "Server Tom", staff.Server)
	require.NoError(t, err)

	assert.True(t, maria.IsEqual(sameID))
	assert.False(t, maria.IsEqual(tom))
}

func TestMemberValidate(t *testing.T) {
	t.Run("should reject zero value member", func(t *testing.T) {
		var member staff.Member
		assert.ErrorIs(t, member.Validate(), staff.ErrMemberIsNotConstructed)
	})
}
