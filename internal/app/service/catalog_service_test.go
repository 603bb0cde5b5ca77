package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gear-catalog-service/internal/domain"
)

// fakeStore implements domain.ContentStore for tests.
type fakeStore struct {
	docs []*domain.Document
	err  error
}

func (f *fakeStore) Get(slug string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.docs {
		if d.Slug == slug {
			return d, nil
		}
	}

	return nil, domain.ErrNotFound
}

func (f *fakeStore) List() ([]*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.docs, nil
}

// fakeSource implements domain.ProductSource for tests.
type fakeSource struct {
	products   []domain.Product
	err        error
	lastFilter domain.ProductFilter
}

func (f *fakeSource) ListProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}

	return f.products, nil
}

func (f *fakeSource) GetProductByASIN(_ context.Context, asin string) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ASIN == asin {
			return &p, nil
		}
	}

	return nil, nil
}

func localDoc(slug, asin, date string) *domain.Document {
	return &domain.Document{
		Slug: slug,
		Meta: domain.Frontmatter{
			Title:       "Review " + slug,
			Date:        date,
			Description: "d",
			ASIN:        asin,
		},
	}
}

func newCatalogService(store domain.ContentStore, source domain.ProductSource) *CatalogService {
	return NewCatalogService(store, source, 100, zap.NewNop())
}

// Shared product identifiers resolve to the local entry: exactly one
// entry per ASIN, and it is the locally authored one.
func TestCatalogService_LocalPrecedence(t *testing.T) {
	store := &fakeStore{docs: []*domain.Document{
		localDoc("a", "X1", "2024-01-01"),
	}}
	source := &fakeSource{products: []domain.Product{
		{ASIN: "X1", Title: "Remote X1", DateCreated: "2024-06-01"},
		{ASIN: "Y2", Title: "Remote Y2", DateCreated: "2024-05-01"},
	}}

	catalog, err := newCatalogService(store, source).BuildCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 2)

	// Y2 (2024-05-01) is newer than the local entry (2024-01-01).
	assert.Equal(t, "y2", catalog[0].Slug)
	assert.Equal(t, "Y2", catalog[0].ASIN)
	assert.Equal(t, "a", catalog[1].Slug)
	assert.Equal(t, "Review a", catalog[1].Title)
}

func TestCatalogService_EmptyRemote(t *testing.T) {
	store := &fakeStore{docs: []*domain.Document{
		localDoc("older", "", "2023-01-01"),
		localDoc("newer", "", "2024-01-01"),
	}}
	source := &fakeSource{}

	catalog, err := newCatalogService(store, source).BuildCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "newer", catalog[0].Slug)
	assert.Equal(t, "older", catalog[1].Slug)
}

// A remote failure degrades to local-only: the catalog is never empty
// solely because the remote source is down.
func TestCatalogService_RemoteFailureDegrades(t *testing.T) {
	store := &fakeStore{docs: []*domain.Document{
		localDoc("a", "X1", "2024-01-01"),
		localDoc("b", "", "2024-02-01"),
	}}
	source := &fakeSource{err: &domain.RemoteServiceError{Status: 503, Message: "unavailable"}}

	catalog, err := newCatalogService(store, source).BuildCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "b", catalog[0].Slug)
	assert.Equal(t, "a", catalog[1].Slug)
}

func TestCatalogService_LocalFailureIsFatal(t *testing.T) {
	store := &fakeStore{err: errors.New("permission denied")}
	source := &fakeSource{}

	_, err := newCatalogService(store, source).BuildCatalog(context.Background())

	require.Error(t, err)
}

func TestCatalogService_SortedByEffectiveDate(t *testing.T) {
	store := &fakeStore{docs: []*domain.Document{
		localDoc("a", "", "2023-06-01"),
	}}
	store.docs[0].Meta.UpdatedDate = "2024-12-01"
	source := &fakeSource{products: []domain.Product{
		{ASIN: "Y2", Title: "Y2", DateCreated: "2024-05-01"},
		{ASIN: "Z3", Title: "Z3", DateCreated: "garbage"},
	}}

	catalog, err := newCatalogService(store, source).BuildCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 3)

	for i := 0; i < len(catalog)-1; i++ {
		cur := catalog[i].EffectiveDate()
		next := catalog[i+1].EffectiveDate()
		assert.False(t, cur.Before(next), "catalog not sorted at position %d", i)
	}

	// The unparsable date sorts last.
	assert.Equal(t, "z3", catalog[2].Slug)
}

// Remote entries whose slug collides with an existing one are dropped
// even when no ASIN links them.
func TestCatalogService_SlugCollision(t *testing.T) {
	store := &fakeStore{docs: []*domain.Document{
		localDoc("b0tent0001", "", "2024-01-01"),
	}}
	source := &fakeSource{products: []domain.Product{
		{ASIN: "B0TENT0001", Title: "Remote Tent", DateCreated: "2024-06-01"},
	}}

	catalog, err := newCatalogService(store, source).BuildCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Review b0tent0001", catalog[0].Title)
}

func TestCatalogService_NoDuplicateIdentifiers(t *testing.T) {
	store := &fakeStore{docs: []*domain.Document{
		localDoc("a", "X1", "2024-01-01"),
		localDoc("b", "X2", "2024-02-01"),
	}}
	source := &fakeSource{products: []domain.Product{
		{ASIN: "X1", Title: "Remote X1", DateCreated: "2024-03-01"},
		{ASIN: "X2", Title: "Remote X2", DateCreated: "2024-03-01"},
		{ASIN: "X3", Title: "Remote X3", DateCreated: "2024-03-01"},
	}}

	catalog, err := newCatalogService(store, source).BuildCatalog(context.Background())

	require.NoError(t, err)

	slugs := make(map[string]int)
	asins := make(map[string]int)
	for _, e := range catalog {
		slugs[e.Slug]++
		if e.ASIN != "" {
			asins[e.ASIN]++
		}
	}

	for slug, n := range slugs {
		assert.Equal(t, 1, n, "slug %q appears %d times", slug, n)
	}
	for asin, n := range asins {
		assert.Equal(t, 1, n, "asin %q appears %d times", asin, n)
	}
	assert.Len(t, catalog, 3)
}

func TestCatalogService_PassesListingLimit(t *testing.T) {
	store := &fakeStore{}
	source := &fakeSource{}

	svc := NewCatalogService(store, source, 250, zap.NewNop())
	_, err := svc.BuildCatalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 250, source.lastFilter.Limit)
	assert.Empty(t, source.lastFilter.Status)
}

func TestCatalogService_LookupProduct(t *testing.T) {
	source := &fakeSource{products: []domain.Product{
		{ASIN: "X1", Title: "Remote X1"},
	}}
	svc := newCatalogService(&fakeStore{}, source)

	found, err := svc.LookupProduct(context.Background(), "X1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Remote X1", found.Title)

	missing, err := svc.LookupProduct(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
