package provision

import (
	"context"

	"github.com/emmanuel128/repaso-app/pkg/supabase"
)

// SupabaseStore performs the provisioning writes through the PostgREST API
// using a service-role client, bypassing row-level security.
type SupabaseStore struct {
	client *supabase.Client
}

// NewSupabaseStore wraps a service-role supabase client.
func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) UpsertProfile(ctx context.Context, row ProfileRow) error {
	return s.client.From("profiles").Upsert(ctx, row, "id")
}

func (s *SupabaseStore) UpsertTenantLink(ctx context.Context, row TenantLinkRow) error {
	return s.client.From("user_tenants").Upsert(ctx, row, "user_id,tenant_id")
}

func (s *SupabaseStore) UpsertMembership(ctx context.Context, row MembershipRow) error {
	return s.client.From("memberships").Upsert(ctx, row, "user_id,tenant_id")
}

func (s *SupabaseStore) InsertAuditEntry(ctx context.Context, row AuditRow) error {
	return s.client.From("audit_log").Insert(ctx, row)
}
