package service

import (
	"context"
	"sync"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/serverutils"
)

type auditCall struct {
	Action     string
	EntityType string
	EntityId   string
	Details    map[string]interface{}
}

// fakeAudit records calls in memory instead of going through the bus.
type fakeAudit struct {
	mu    sync.Mutex
	calls []auditCall
}

func (f *fakeAudit) Record(_ context.Context, _ dto.Actor, action, entityType, entityId string, details map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, auditCall{Action: action, EntityType: entityType, EntityId: entityId, Details: details})
}

func (f *fakeAudit) GetAuditLogs(context.Context, dto.AuditLogListRequest) (*serverutils.PaginatedData[dto.AuditLogResponse], error) {
	return &serverutils.PaginatedData[dto.AuditLogResponse]{}, nil
}

func (f *fakeAudit) Actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Action)
	}
	return out
}

type fakeGuard struct {
	blocked  bool
	failures int
	resets   int
	revoked  []string
}

func (g *fakeGuard) LoginBlocked(context.Context, string) bool { return g.blocked }
func (g *fakeGuard) RecordFailure(context.Context, string)     { g.failures++ }
func (g *fakeGuard) ResetFailures(context.Context, string)     { g.resets++ }

func (g *fakeGuard) Revoke(_ context.Context, jti string, _ time.Time) error {
	g.revoked = append(g.revoked, jti)
	return nil
}

type fakePolicy struct {
	loads int
	last  []*entity.Role
}

func (p *fakePolicy) Load(roles []*entity.Role) error {
	p.loads++
	p.last = roles
	return nil
}
