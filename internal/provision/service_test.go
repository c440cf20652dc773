package provision

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
)

type fakeStore struct {
	mu          sync.Mutex
	profiles    []ProfileRow
	tenantLinks []TenantLinkRow
	memberships []MembershipRow
	auditRows   []AuditRow

	profileErr    error
	membershipErr error
}

func (f *fakeStore) UpsertProfile(_ context.Context, row ProfileRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profileErr != nil {
		return f.profileErr
	}
	f.profiles = append(f.profiles, row)
	return nil
}

func (f *fakeStore) UpsertTenantLink(_ context.Context, row TenantLinkRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tenantLinks = append(f.tenantLinks, row)
	return nil
}

func (f *fakeStore) UpsertMembership(_ context.Context, row MembershipRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.membershipErr != nil {
		return f.membershipErr
	}
	f.memberships = append(f.memberships, row)
	return nil
}

func (f *fakeStore) InsertAuditEntry(_ context.Context, row AuditRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auditRows = append(f.auditRows, row)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestProcessConfirmedInsertWritesEverything(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "tenant-1", discardLogger())

	event := Event{
		Kind:      KindInsert,
		UserID:    "u1",
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Ortiz",
		Confirmed: true,
	}
	outcome := svc.Process(context.Background(), event)
	if !outcome.OK || outcome.Action != ActionProvisioned {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}

	if len(store.profiles) != 1 || len(store.tenantLinks) != 1 || len(store.memberships) != 1 || len(store.auditRows) != 1 {
		t.Fatalf("expected one write per table, got profiles=%d links=%d memberships=%d audits=%d",
			len(store.profiles), len(store.tenantLinks), len(store.memberships), len(store.auditRows))
	}
	if store.profiles[0].FirstName != "Ana" || store.profiles[0].LastName != "Ortiz" {
		t.Fatalf("profile names not carried: %+v", store.profiles[0])
	}
	if store.tenantLinks[0].Role != "student" {
		t.Fatalf("unexpected role: %q", store.tenantLinks[0].Role)
	}
	if store.memberships[0].Status != "trialing" {
		t.Fatalf("unexpected membership status: %q", store.memberships[0].Status)
	}
	if store.auditRows[0].EventType != "user_confirmed" || store.auditRows[0].EntityID != "u1" {
		t.Fatalf("unexpected audit row: %+v", store.auditRows[0])
	}

	// Redelivery issues the same upserts with the same natural keys; the
	// store-level merge makes the end state identical.
	svc.Process(context.Background(), event)
	if store.profiles[1].ID != store.profiles[0].ID {
		t.Fatalf("redelivered profile upsert changed key: %+v", store.profiles[1])
	}
	if store.memberships[1].UserID != "u1" || store.memberships[1].TenantID != "tenant-1" {
		t.Fatalf("redelivered membership upsert changed key: %+v", store.memberships[1])
	}
}

func TestProcessUnconfirmedInsertSkipsMembership(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "tenant-1", discardLogger())

	outcome := svc.Process(context.Background(), Event{Kind: KindInsert, UserID: "u1"})
	if !outcome.OK || outcome.Action != ActionProvisioned {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if len(store.profiles) != 1 || len(store.tenantLinks) != 1 {
		t.Fatalf("expected profile and tenant link writes, got %d/%d", len(store.profiles), len(store.tenantLinks))
	}
	if len(store.memberships) != 0 || len(store.auditRows) != 0 {
		t.Fatalf("membership/audit must wait for confirmation, got %d/%d", len(store.memberships), len(store.auditRows))
	}
}

func TestProcessConfirmedUpdate(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "tenant-1", discardLogger())

	outcome := svc.Process(context.Background(), Event{Kind: KindUpdate, UserID: "u2", Confirmed: true})
	if outcome.Action != ActionProvisioned {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if len(store.profiles) != 0 {
		t.Fatalf("confirmed update must not touch profiles, got %d", len(store.profiles))
	}
	if len(store.memberships) != 1 || len(store.auditRows) != 1 {
		t.Fatalf("expected membership+audit, got %d/%d", len(store.memberships), len(store.auditRows))
	}
}

func TestProcessUnconfirmedUpdateIsNoop(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "tenant-1", discardLogger())

	outcome := svc.Process(context.Background(), Event{Kind: KindUpdate, UserID: "u3"})
	if !outcome.OK || outcome.Action != ActionNoop || outcome.Reason != "email_not_confirmed" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if len(store.profiles)+len(store.tenantLinks)+len(store.memberships)+len(store.auditRows) != 0 {
		t.Fatal("noop event must not write")
	}
}

func TestProcessMissingUserIDSkips(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "tenant-1", discardLogger())

	outcome := svc.Process(context.Background(), Event{Kind: KindInsert})
	if !outcome.OK || outcome.Action != ActionSkipped || outcome.Reason != "missing_user_id" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if len(store.profiles) != 0 {
		t.Fatal("skip must not write")
	}
}

func TestProcessNoDefaultTenant(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "", discardLogger())

	outcome := svc.Process(context.Background(), Event{Kind: KindInsert, UserID: "u4", Confirmed: true})
	if outcome.Action != ActionProvisioned {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if len(store.profiles) != 1 {
		t.Fatalf("profile write expected, got %d", len(store.profiles))
	}
	if len(store.tenantLinks)+len(store.memberships)+len(store.auditRows) != 0 {
		t.Fatal("tenant-scoped writes must be skipped without a default tenant")
	}

	outcome = svc.Process(context.Background(), Event{Kind: KindUpdate, UserID: "u4", Confirmed: true})
	if outcome.Action != ActionNoop || outcome.Reason != "no_default_tenant" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestProcessSwallowsPartialFailures(t *testing.T) {
	store := &fakeStore{membershipErr: errors.New("memberships table unavailable")}
	svc := NewService(store, "tenant-1", discardLogger())

	outcome := svc.Process(context.Background(), Event{Kind: KindInsert, UserID: "u5", Confirmed: true})
	if !outcome.OK || outcome.Action != ActionProvisioned {
		t.Fatalf("partial write failure must still succeed, got %+v", outcome)
	}
	if len(store.profiles) != 1 || len(store.auditRows) != 1 {
		t.Fatalf("independent writes must proceed, got profiles=%d audits=%d", len(store.profiles), len(store.auditRows))
	}
}
