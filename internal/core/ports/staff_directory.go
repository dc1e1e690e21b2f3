package ports

import (
	"resty/internal/core/domain/model/staff"
)

// StaffDirectory is the read-only staff roster consumed by the assignment
// operation. No staff lifecycle is modeled; the directory only answers who
// exists.
type StaffDirectory interface {
	// List returns every staff member.
	List() []staff.Member

	// ByName looks a member up by display name, e.g. "Chef Maria".
	// Returns an ObjectNotFoundError if no member has that name.
	ByName(name string) (staff.Member, error)
}
