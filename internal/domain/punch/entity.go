package punch

import (
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
)

// Punch is one immutable clock event reported by a terminal. Punches are
// created only by synchronization, never mutated and never deleted by the
// reporting engine. Uniqueness holds over (DeviceID, UID, RecordedAt).
type Punch struct {
	ID         int64
	DeviceID   int64
	UID        employee.CheckerUID
	RecordedAt time.Time
	CreatedAt  time.Time
}
