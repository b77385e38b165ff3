package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boolRef(v bool) *bool { return &v }

func textRef(v string) *string { return &v }

type fakePropertyRepo struct {
	items     map[string]models.Property
	seq       int
	listErr   error
	updateErr error
	deleted   []string
}

func newFakePropertyRepo(properties ...models.Property) *fakePropertyRepo {
	repo := &fakePropertyRepo{items: map[string]models.Property{}}
	for _, p := range properties {
		repo.items[p.ID] = p
	}
	return repo
}

func (f *fakePropertyRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Property, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Property, 0)
	for _, p := range f.items {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id string) (*models.Property, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (f *fakePropertyRepo) Create(_ context.Context, property *models.Property) error {
	f.seq++
	property.ID = fmt.Sprintf("prop-%d", f.seq)
	f.items[property.ID] = *property
	return nil
}

func (f *fakePropertyRepo) UpdateCompliance(_ context.Context, property *models.Property) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.items[property.ID] = *property
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTenancyRepo struct {
	items        map[string]models.Tenancy
	increases    []models.RentIncrease
	seq          int
	beforeRecord func()
}

func newFakeTenancyRepo(tenancies ...models.Tenancy) *fakeTenancyRepo {
	repo := &fakeTenancyRepo{items: map[string]models.Tenancy{}}
	for _, t := range tenancies {
		repo.items[t.ID] = t
	}
	return repo
}

func (f *fakeTenancyRepo) ListByProperty(_ context.Context, propertyID string) ([]models.Tenancy, error) {
	out := make([]models.Tenancy, 0)
	for _, t := range f.items {
		if t.PropertyID == propertyID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTenancyRepo) FindByID(_ context.Context, id string) (*models.Tenancy, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

func (f *fakeTenancyRepo) Create(_ context.Context, tenancy *models.Tenancy) error {
	f.seq++
	tenancy.ID = fmt.Sprintf("ten-%d", f.seq)
	f.items[tenancy.ID] = *tenancy
	return nil
}

func (f *fakeTenancyRepo) UpdateDetails(_ context.Context, tenancy *models.Tenancy) error {
	stored := f.items[tenancy.ID]
	stored.TenantName = tenancy.TenantName
	stored.TenantEmail = tenancy.TenantEmail
	stored.TenantPhone = tenancy.TenantPhone
	stored.DepositAmount = tenancy.DepositAmount
	stored.DepositSchemeRef = tenancy.DepositSchemeRef
	f.items[tenancy.ID] = stored
	return nil
}

func (f *fakeTenancyRepo) End(_ context.Context, id string) error {
	t := f.items[id]
	t.Active = false
	f.items[id] = t
	return nil
}

func (f *fakeTenancyRepo) ListRentIncreases(_ context.Context, tenancyID string) ([]models.RentIncrease, error) {
	out := make([]models.RentIncrease, 0)
	for _, inc := range f.increases {
		if inc.TenancyID == tenancyID {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (f *fakeTenancyRepo) RecordRentIncrease(_ context.Context, increase *models.RentIncrease) error {
	if f.beforeRecord != nil {
		f.beforeRecord()
	}
	if f.items[increase.TenancyID].MonthlyRent != increase.CurrentRent {
		return appErrors.Clone(appErrors.ErrInvalidState, "tenancy rent changed while the increase was being recorded")
	}
	increase.ID = fmt.Sprintf("inc-%d", len(f.increases)+1)
	f.increases = append(f.increases, *increase)
	t := f.items[increase.TenancyID]
	t.MonthlyRent = increase.NewRent
	f.items[increase.TenancyID] = t
	return nil
}

type fakeNoticeRepo struct {
	items map[string]models.LegalNotice
	seq   int
}

func newFakeNoticeRepo(notices ...models.LegalNotice) *fakeNoticeRepo {
	repo := &fakeNoticeRepo{items: map[string]models.LegalNotice{}}
	for _, n := range notices {
		repo.items[n.ID] = n
	}
	return repo
}

func (f *fakeNoticeRepo) ListByTenancy(_ context.Context, tenancyID string) ([]models.LegalNotice, error) {
	out := make([]models.LegalNotice, 0)
	for _, n := range f.items {
		if n.TenancyID == tenancyID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeNoticeRepo) FindByID(_ context.Context, id string) (*models.LegalNotice, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &n, nil
}

func (f *fakeNoticeRepo) Create(_ context.Context, notice *models.LegalNotice) error {
	f.seq++
	notice.ID = fmt.Sprintf("notice-%d", f.seq)
	f.items[notice.ID] = *notice
	return nil
}

func (f *fakeNoticeRepo) UpdateStatus(_ context.Context, id string, status models.NoticeStatus) error {
	n := f.items[id]
	n.Status = status
	f.items[id] = n
	return nil
}

type fakeMaintenanceRepo struct {
	items map[string]models.MaintenanceRequest
	seq   int
}

func newFakeMaintenanceRepo(requests ...models.MaintenanceRequest) *fakeMaintenanceRepo {
	repo := &fakeMaintenanceRepo{items: map[string]models.MaintenanceRequest{}}
	for _, r := range requests {
		repo.items[r.ID] = r
	}
	return repo
}

func (f *fakeMaintenanceRepo) ListByProperty(_ context.Context, propertyID string) ([]models.MaintenanceRequest, error) {
	out := make([]models.MaintenanceRequest, 0)
	for _, r := range f.items {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMaintenanceRepo) FindByID(_ context.Context, id string) (*models.MaintenanceRequest, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &r, nil
}

func (f *fakeMaintenanceRepo) Create(_ context.Context, request *models.MaintenanceRequest) error {
	f.seq++
	request.ID = fmt.Sprintf("req-%d", f.seq)
	f.items[request.ID] = *request
	return nil
}

func (f *fakeMaintenanceRepo) UpdateStatus(_ context.Context, request *models.MaintenanceRequest) error {
	f.items[request.ID] = *request
	return nil
}

type fakeCommunicationRepo struct {
	entries []models.CommunicationLog
}

func (f *fakeCommunicationRepo) ListByProperty(_ context.Context, propertyID string) ([]models.CommunicationLog, error) {
	out := make([]models.CommunicationLog, 0)
	for _, e := range f.entries {
		if e.PropertyID == propertyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCommunicationRepo) Append(_ context.Context, entry *models.CommunicationLog) error {
	entry.ID = fmt.Sprintf("log-%d", len(f.entries)+1)
	f.entries = append(f.entries, *entry)
	return nil
}

type fakeDocumentRepo struct {
	items map[string]models.Document
	seq   int
}

func newFakeDocumentRepo(docs ...models.Document) *fakeDocumentRepo {
	repo := &fakeDocumentRepo{items: map[string]models.Document{}}
	for _, d := range docs {
		repo.items[d.ID] = d
	}
	return repo
}

func (f *fakeDocumentRepo) ListByProperty(_ context.Context, propertyID string) ([]models.Document, error) {
	out := make([]models.Document, 0)
	for _, d := range f.items {
		if d.PropertyID == propertyID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDocumentRepo) FindByID(_ context.Context, id string) (*models.Document, error) {
	d, ok := f.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &d, nil
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc *models.Document) error {
	f.seq++
	doc.ID = fmt.Sprintf("doc-%d", f.seq)
	f.items[doc.ID] = *doc
	return nil
}

func (f *fakeDocumentRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

// memoryCache is an in-process CacheRepository.
type memoryCache struct {
	data        map[string][]byte
	invalidated []string
	getErr      error
	gets        int
	sets        int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	m.gets++
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.invalidated = append(m.invalidated, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			delete(m.data, key)
		}
	}
	return nil
}

func ownedBy(owner, id string) models.Property {
	return models.Property{
		ID:          id,
		OwnerID:     owner,
		Address:     id + " Example Street",
		HeatingType: models.HeatingGas,
		Category:    models.CategoryHouse,
	}
}
