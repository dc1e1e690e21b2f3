package staffdir

import (
	"resty/internal/core/domain/model/staff"
	"resty/internal/pkg/errs"
)

// Directory implements the staff roster port with a fixed in-process list.
// The roster is immutable after construction.
type Directory struct {
	members []staff.Member
	byName  map[string]staff.Member
}

// NewDirectory creates a directory over the given members.
func NewDirectory(members []staff.Member) *Directory {
	byName := make(map[string]staff.Member, len(members))
	for _, member := range members {
		byName[member.Name()] = member
	}
	return &Directory{members: members, byName: byName}
}

// NewDefaultDirectory creates a directory seeded with the restaurant's staff.
func NewDefaultDirectory() (*Directory, error) {
	roster := []struct {
		id   string
		name string
		role staff.Role
	}{
		{"chef1", "Chef Maria", staff.Chef},
		{"chef2", "Chef David", staff.Chef},
		{"server1", "Server Tom", staff.Server},
		{"server2", "Server Emma", staff.Server},
		{"server3", "Server Lisa", staff.Server},
	}

	members := make([]staff.Member, 0, len(roster))
	for _, entry := range roster {
		member, err := staff.NewMember(entry.id, entry.name, entry.role)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return NewDirectory(members), nil
}

// List returns every staff member.
func (d *Directory) List() []staff.Member {
	members := make([]staff.Member, len(d.members))
	copy(members, d.members)
	return members
}

// ByName looks a member up by display name.
func (d *Directory) ByName(name string) (staff.Member, error) {
	member, exists := d.byName[name]
	if !exists {
		return staff.Member{}, errs.NewObjectNotFoundError("staff member", name)
	}
	return member, nil
}
