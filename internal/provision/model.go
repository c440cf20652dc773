package provision

import (
	"context"
	"time"
)

// EventKind is the normalized class of an inbound identity event.
type EventKind string

const (
	KindInsert  EventKind = "insert"
	KindUpdate  EventKind = "update"
	KindUnknown EventKind = "unknown"
)

// Event is the canonical record distilled from the provider's envelope.
// All payload-shape variability is resolved in ParseEvent; nothing past that
// point inspects the raw payload again.
type Event struct {
	Kind      EventKind
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Confirmed bool
	Metadata  map[string]any
}

// ProfileRow is the profiles table write, keyed on the auth user id.
type ProfileRow struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TenantLinkRow maps a user into a tenant, keyed on (user_id, tenant_id).
type TenantLinkRow struct {
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// MembershipRow tracks subscription state within a tenant, keyed on
// (user_id, tenant_id).
type MembershipRow struct {
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditRow is an append-only audit_log entry.
type AuditRow struct {
	TenantID    string         `json:"tenant_id,omitempty"`
	ActorUserID string         `json:"actor_user_id"`
	EventType   string         `json:"event_type"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	Data        map[string]any `json:"data"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Store performs the downstream writes. Every method must be safely
// repeatable: redelivered events run the same writes again.
type Store interface {
	UpsertProfile(ctx context.Context, row ProfileRow) error
	UpsertTenantLink(ctx context.Context, row TenantLinkRow) error
	UpsertMembership(ctx context.Context, row MembershipRow) error
	InsertAuditEntry(ctx context.Context, row AuditRow) error
}

// Outcome is reported back to the webhook transport.
type Outcome struct {
	OK     bool   `json:"ok"`
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

const (
	ActionProvisioned = "provisioned"
	ActionNoop        = "noop"
	ActionSkipped     = "skipped"
)
