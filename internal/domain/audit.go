package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeRelocate is the audit event type written for a completed
// membership-type relocation.
const EventTypeRelocate = "relocate"

// RelocationAuditEntry records who moved what, from where, to where, when.
// Appended inside the relocation transaction; never mutated or deleted here.
type RelocationAuditEntry struct {
	ID          uuid.UUID `json:"id"`
	ActorID     string    `json:"actorId"`
	EventType   string    `json:"eventType"`
	OldVariant  string    `json:"oldVariant"`
	NewVariant  string    `json:"newVariant"`
	OldRootID   int64     `json:"oldRootId"`
	NewRootID   int64     `json:"newRootId"`
	TaxID       string    `json:"taxId"`
	CompanyName string    `json:"companyName"`
	CreatedAt   time.Time `json:"createdAt"`
}
