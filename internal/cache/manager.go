package cache

import (
	"time"

	"hrdocs/internal/config"
	"hrdocs/internal/model"
)

// Cache scope names, used as metric labels and invalidation targets.
const (
	ScopeCompanies = "companies"
	ScopeEmployees = "employees"
	ScopeRows      = "rows"
	ScopeDocuments = "documents"
	ScopeURLs      = "urls"
)

// CompanyFoldersKey is the single key under which the global company folder
// list is cached.
const CompanyFoldersKey = "all"

// Manager bundles the independent caches of the folder subsystem, each with
// its own TTL. It is constructed once per process and passed by reference;
// there is no package-level cache state.
type Manager struct {
	Companies *Cache[[]model.Folder]      // key: CompanyFoldersKey
	Employees *Cache[[]model.Folder]      // key: company display name
	Rows      *Cache[[]model.DocumentRow] // key: company display name
	Documents *Cache[[]model.DocumentRow] // key: employee id
	URLs      *Cache[string]              // key: document id
}

// ManagerOption configures NewManager.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	now     Clock
	metrics *Metrics
}

// WithManagerClock injects a shared time source into every cache.
func WithManagerClock(now Clock) ManagerOption {
	return func(o *managerOptions) { o.now = now }
}

// WithManagerMetrics attaches the shared cache counters.
func WithManagerMetrics(m *Metrics) ManagerOption {
	return func(o *managerOptions) { o.metrics = m }
}

// NewManager creates the five scoped caches with TTLs from cfg.
func NewManager(cfg config.CacheConfig, opts ...ManagerOption) *Manager {
	o := &managerOptions{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	ttl := func(sec int) time.Duration { return time.Duration(sec) * time.Second }

	return &Manager{
		Companies: New(ttl(cfg.CompanyTTLSec),
			WithClock[[]model.Folder](o.now), WithMetrics[[]model.Folder](o.metrics, ScopeCompanies)),
		Employees: New(ttl(cfg.EmployeeTTLSec),
			WithClock[[]model.Folder](o.now), WithMetrics[[]model.Folder](o.metrics, ScopeEmployees)),
		Rows: New(ttl(cfg.RowsTTLSec),
			WithClock[[]model.DocumentRow](o.now), WithMetrics[[]model.DocumentRow](o.metrics, ScopeRows)),
		Documents: New(ttl(cfg.DocumentTTLSec),
			WithClock[[]model.DocumentRow](o.now), WithMetrics[[]model.DocumentRow](o.metrics, ScopeDocuments)),
		URLs: New(ttl(cfg.URLTTLSec),
			WithClock[string](o.now), WithMetrics[string](o.metrics, ScopeURLs)),
	}
}

// Invalidate removes one key from the named scope, or the whole scope when
// key is empty. Unknown scopes are ignored.
func (m *Manager) Invalidate(scope, key string) {
	switch scope {
	case ScopeCompanies:
		if key == "" {
			m.Companies.InvalidateAll()
		} else {
			m.Companies.Invalidate(key)
		}
	case ScopeEmployees:
		if key == "" {
			m.Employees.InvalidateAll()
		} else {
			m.Employees.Invalidate(key)
		}
	case ScopeRows:
		if key == "" {
			m.Rows.InvalidateAll()
		} else {
			m.Rows.Invalidate(key)
		}
	case ScopeDocuments:
		if key == "" {
			m.Documents.InvalidateAll()
		} else {
			m.Documents.Invalidate(key)
		}
	case ScopeURLs:
		if key == "" {
			m.URLs.InvalidateAll()
		} else {
			m.URLs.Invalidate(key)
		}
	}
}

// InvalidateCompany drops every cached view derived from one company's rows:
// the global folder list, the company's employee folders and raw rows.
// Called after any mutating operation touching that company.
func (m *Manager) InvalidateCompany(companyName string) {
	m.Companies.Invalidate(CompanyFoldersKey)
	m.Employees.Invalidate(companyName)
	m.Rows.Invalidate(companyName)
}

// Reset clears all caches (manual refresh, test reset).
func (m *Manager) Reset() {
	m.Companies.InvalidateAll()
	m.Employees.InvalidateAll()
	m.Rows.InvalidateAll()
	m.Documents.InvalidateAll()
	m.URLs.InvalidateAll()
}
