package provision

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultRole    = "student"
	trialingStatus = "trialing"
	confirmedEvent = "user_confirmed"
	entityTypeUser = "user"
)

// Service decides which downstream writes an identity event warrants and
// issues them. Writes are independent idempotent upserts, not a transaction:
// partial failures are logged and swallowed so the provider's redelivery
// never turns one slow table into a retry storm. Redelivering an event
// converges on the same rows.
type Service struct {
	store           Store
	defaultTenantID string
	logger          *slog.Logger
	now             func() time.Time
}

// NewService wires a provisioner. defaultTenantID may be empty, in which case
// tenant-scoped writes are skipped entirely.
func NewService(store Store, defaultTenantID string, logger *slog.Logger) *Service {
	return &Service{
		store:           store,
		defaultTenantID: defaultTenantID,
		logger:          logger,
		now:             time.Now,
	}
}

type write struct {
	name string
	run  func(ctx context.Context) error
}

// Process classifies the event and performs the applicable writes.
// The outcome is successful in every case but is labeled so callers can see
// whether anything happened.
func (s *Service) Process(ctx context.Context, event Event) Outcome {
	if event.UserID == "" {
		// Never fail here: an unresolvable record would only make the
		// provider redeliver an event we still could not act on.
		s.logger.Warn("event without user id, skipping", "kind", event.Kind)
		return Outcome{OK: true, Action: ActionSkipped, Reason: "missing_user_id"}
	}

	writes := s.plan(event)
	if len(writes) == 0 {
		reason := "email_not_confirmed"
		if event.Kind == KindUnknown {
			reason = "unhandled_event"
		} else if event.Confirmed && s.defaultTenantID == "" {
			reason = "no_default_tenant"
		}
		return Outcome{OK: true, Action: ActionNoop, Reason: reason}
	}

	now := s.now().UTC()
	var wg sync.WaitGroup
	for _, w := range writes {
		wg.Add(1)
		go func(w write) {
			defer wg.Done()
			if err := w.run(ctx); err != nil {
				s.logger.Error("provisioning write failed",
					"write", w.name,
					"user_id", event.UserID,
					"error", err,
				)
			}
		}(w)
	}
	wg.Wait()

	s.logger.Info("event provisioned",
		"kind", event.Kind,
		"user_id", event.UserID,
		"confirmed", event.Confirmed,
		"writes", len(writes),
		"elapsed", time.Since(now).String(),
	)
	return Outcome{OK: true, Action: ActionProvisioned}
}

// plan translates the classified event into the minimal set of writes.
func (s *Service) plan(event Event) []write {
	now := s.now().UTC()
	tenantID := s.defaultTenantID
	var writes []write

	if event.Kind == KindInsert {
		profile := ProfileRow{
			ID:        event.UserID,
			FirstName: event.FirstName,
			LastName:  event.LastName,
			CreatedAt: now,
		}
		writes = append(writes, write{"profiles", func(ctx context.Context) error {
			return s.store.UpsertProfile(ctx, profile)
		}})

		if tenantID != "" {
			link := TenantLinkRow{UserID: event.UserID, TenantID: tenantID, Role: defaultRole, CreatedAt: now}
			writes = append(writes, write{"user_tenants", func(ctx context.Context) error {
				return s.store.UpsertTenantLink(ctx, link)
			}})
		}
	}

	confirmedNow := (event.Kind == KindInsert && event.Confirmed) ||
		(event.Kind == KindUpdate && event.Confirmed)
	if confirmedNow && tenantID != "" {
		membership := MembershipRow{UserID: event.UserID, TenantID: tenantID, Status: trialingStatus, CreatedAt: now}
		writes = append(writes, write{"memberships", func(ctx context.Context) error {
			return s.store.UpsertMembership(ctx, membership)
		}})

		audit := AuditRow{
			TenantID:    tenantID,
			ActorUserID: event.UserID,
			EventType:   confirmedEvent,
			EntityType:  entityTypeUser,
			EntityID:    event.UserID,
			Data: map[string]any{
				"email":    event.Email,
				"metadata": event.Metadata,
			},
			CreatedAt: now,
		}
		writes = append(writes, write{"audit_log", func(ctx context.Context) error {
			return s.store.InsertAuditEntry(ctx, audit)
		}})
	}

	return writes
}
