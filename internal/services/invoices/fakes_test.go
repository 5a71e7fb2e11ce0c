package invoices

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

// fakeStore is an in-memory InvoiceStore that mirrors the repository's
// filter and ordering semantics and counts persistence calls so tests
// can assert that invalid input never reaches storage.
type fakeStore struct {
	invoices  map[uuid.UUID]*models.Invoice
	order     []uuid.UUID // insertion order, for stable date ties
	customers map[uuid.UUID]models.Customer
	audits    []*models.MutationAuditLog

	createCalls int
	updateCalls int
	deleteCalls int
	searchCalls int
	failWith    error // forces every persistence call to fault
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		invoices:  make(map[uuid.UUID]*models.Invoice),
		customers: make(map[uuid.UUID]models.Customer),
	}
}

func (f *fakeStore) addCustomer(name, email string) uuid.UUID {
	id := uuid.New()
	f.customers[id] = models.Customer{ID: id, Name: name, Email: email, ImageURL: "/customers/" + name + ".png"}
	return id
}

func (f *fakeStore) Create(inv *models.Invoice) error {
	f.createCalls++
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.customers[inv.CustomerID]; !ok {
		return errors.New("foreign key violation: customer missing")
	}
	cp := *inv
	f.invoices[inv.ID] = &cp
	f.order = append(f.order, inv.ID)
	return nil
}

func (f *fakeStore) Update(inv *models.Invoice) error {
	f.updateCalls++
	if f.failWith != nil {
		return f.failWith
	}
	existing, ok := f.invoices[inv.ID]
	if !ok {
		return repository.ErrInvoiceNotFound
	}
	existing.CustomerID = inv.CustomerID
	existing.Amount = inv.Amount
	existing.Status = inv.Status
	existing.Date = inv.Date
	return nil
}

func (f *fakeStore) Delete(id uuid.UUID) error {
	f.deleteCalls++
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.invoices[id]; !ok {
		return repository.ErrInvoiceNotFound
	}
	delete(f.invoices, id)
	for i, iid := range f.order {
		if iid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStore) GetByID(id uuid.UUID) (*models.Invoice, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	inv, ok := f.invoices[id]
	if !ok {
		return nil, repository.ErrInvoiceNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeStore) matches(inv *models.Invoice, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	c := f.customers[inv.CustomerID]
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(inv.Status), q) ||
		strings.Contains(strconv.FormatInt(inv.Amount, 10), q)
}

func (f *fakeStore) filtered(query string) []*models.Invoice {
	var out []*models.Invoice
	for _, id := range f.order {
		inv := f.invoices[id]
		if f.matches(inv, query) {
			out = append(out, inv)
		}
	}
	// newest first; SliceStable keeps insertion order on date ties
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (f *fakeStore) row(inv *models.Invoice) repository.InvoiceRow {
	c := f.customers[inv.CustomerID]
	return repository.InvoiceRow{
		ID:       inv.ID,
		Amount:   inv.Amount,
		Date:     inv.Date,
		Status:   inv.Status,
		Name:     c.Name,
		Email:    c.Email,
		ImageURL: c.ImageURL,
	}
}

func (f *fakeStore) Search(query string, limit, offset int) ([]repository.InvoiceRow, error) {
	f.searchCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	matched := f.filtered(query)
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	rows := make([]repository.InvoiceRow, 0, len(matched))
	for _, inv := range matched {
		rows = append(rows, f.row(inv))
	}
	return rows, nil
}

func (f *fakeStore) CountFiltered(query string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.filtered(query))), nil
}

func (f *fakeStore) Count() (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.invoices)), nil
}

func (f *fakeStore) TotalsByStatus() (map[string]int64, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	totals := make(map[string]int64)
	for _, inv := range f.invoices {
		totals[inv.Status] += inv.Amount
	}
	return totals, nil
}

func (f *fakeStore) Latest(n int) ([]repository.InvoiceRow, error) {
	return f.Search("", n, 0)
}

func (f *fakeStore) RecordAudit(entry *models.MutationAuditLog) error {
	f.audits = append(f.audits, entry)
	return nil
}

type fakeCustomers struct {
	store *fakeStore
}

func (f fakeCustomers) Count() (int64, error) {
	return int64(len(f.store.customers)), nil
}

type fakeRevenue struct {
	rows []models.Revenue
}

func (f fakeRevenue) All() ([]models.Revenue, error) {
	return f.rows, nil
}

// fakeCache mirrors the view cache: payloads keyed by view, variants
// dropped with their view, invalidations recorded in order.
type fakeCache struct {
	views       map[string]any
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{views: make(map[string]any)}
}

func (f *fakeCache) Put(view string, v any) {
	f.views[view] = v
}

func (f *fakeCache) Get(view string) (any, bool) {
	v, ok := f.views[view]
	return v, ok
}

func (f *fakeCache) Invalidate(view string) {
	f.invalidated = append(f.invalidated, view)
	for key := range f.views {
		if key == view || strings.HasPrefix(key, view+"?") {
			delete(f.views, key)
		}
	}
}

func newTestService() (*Service, *fakeStore, *fakeCache) {
	store := newFakeStore()
	views := newFakeCache()
	svc := NewService(store, fakeCustomers{store}, fakeRevenue{}, views)
	return svc, store, views
}
