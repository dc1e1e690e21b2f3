package ports

import "time"

// Clock is the injectable time source. Order creation and ETA computation go
// through it so lifecycle behavior is deterministic under test — the core has
// no hidden dependency on the system clock.
type Clock interface {
	Now() time.Time
}
