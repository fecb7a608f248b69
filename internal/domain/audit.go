package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an append-only record of an administrative or voting fact.
type AuditEntry struct {
	ID           uuid.UUID
	Action       AuditAction
	ActorID      *uuid.UUID
	SubjectID    *uuid.UUID
	ExternalTxID *string
	Detail       map[string]any
	CreatedAt    time.Time
}
