// Package staff provides the read-only staff reference data used for order
// assignment. Staff members have no lifecycle of their own; they exist so an
// order can record who is responsible for it.
package staff

import (
	"errors"
	"fmt"

	"resty/internal/pkg/errs"
	"resty/internal/pkg/guard"
)

var (
	// ErrMemberIsNotConstructed is returned when a Member instance was not created
	// through the NewMember factory method.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")
)

// Role classifies a staff member as kitchen or floor personnel.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Chef works in the kitchen and is typically assigned while an order is
	// being prepared.
	Chef

	// Server works the floor and is typically assigned once an order is ready.
	Server
)

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Chef:   "Chef",
		Server: "Server",
	}
}

// RoleFromString parses a role from its display form ("Chef", "Server").
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the display name of the role, or "Unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Member is an immutable value object describing one staff member.
// Members are reference data supplied by the staff directory; orders hold a
// copy of the assigned member, never a live reference.
type Member struct {
	id   string
	name string
	role Role

	guard guard.ConstructorGuard
}

// NewMember creates a staff member with validation.
// The id and name must be non-empty and the role must be valid.
func NewMember(id, name string, role Role) (Member, error) {
	member := Member{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		member.setID(id),
		member.setName(name),
		member.setRole(role),
	); err != nil {
		return Member{}, err
	}

	return member, nil
}

// Validate ensures the member was created through the constructor.
func (m Member) Validate() error {
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// ID returns the member's unique identifier.
func (m Member) ID() string {
	return m.id
}

// Name returns the member's display name, e.g. "Chef Maria".
func (m Member) Name() string {
	return m.name
}

// Role returns the member's role.
func (m Member) Role() Role {
	return m.role
}

// IsEqual compares two members by their unique identifiers.
func (m Member) IsEqual(other Member) bool {
	return m.id == other.id
}

func (m *Member) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("staff id")
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("staff name")
	}
	m.name = name
	return nil
}

func (m *Member) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	m.role = role
	return nil
}
