// Package service provides application use cases.
package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gear-catalog-service/internal/domain"
)

// CatalogService builds the aggregated review catalog from local
// documents and remote product records.
type CatalogService struct {
	reviews  domain.ContentStore
	products domain.ProductSource
	limit    int
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService. limit bounds the remote
// listing page size.
func NewCatalogService(reviews domain.ContentStore, products domain.ProductSource, limit int, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		reviews:  reviews,
		products: products,
		limit:    limit,
		logger:   logger,
	}
}

// BuildCatalog produces a fresh catalog: local documents and remote
// products are fetched concurrently, normalized into one shape,
// de-duplicated by ASIN and slug with local authorship winning, then
// sorted descending by effective date.
//
// A remote failure degrades the catalog to local-only data; it never
// empties a catalog that local content could fill. A local read failure
// is fatal, since authored content is the site's backbone.
func (s *CatalogService) BuildCatalog(ctx context.Context) (domain.Catalog, error) {
	start := time.Now()

	var (
		wg sync.WaitGroup

		docs    []*domain.Document
		docsErr error

		remote    []domain.Product
		remoteErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		docs, docsErr = s.reviews.List()
	}()
	go func() {
		defer wg.Done()
		remote, remoteErr = s.products.ListProducts(ctx, domain.ProductFilter{Limit: s.limit})
	}()
	wg.Wait()

	if docsErr != nil {
		s.logger.Error("local content load failed", zap.Error(docsErr))

		return nil, docsErr
	}

	if remoteErr != nil {
		// Degraded mode: continue with local-only data.
		s.logger.Warn("remote fetch failed, building local-only catalog",
			zap.Error(remoteErr),
		)
		remote = nil
	}

	catalog := merge(docs, remote)

	s.logger.Info("catalog built",
		zap.Int("local", len(docs)),
		zap.Int("remote", len(remote)),
		zap.Int("total", len(catalog)),
		zap.Bool("degraded", remoteErr != nil),
		zap.Duration("duration", time.Since(start)),
	)

	return catalog, nil
}

// merge normalizes both collections into entries, discards remote entries
// that collide with local authorship, and sorts the result newest first.
func merge(docs []*domain.Document, remote []domain.Product) domain.Catalog {
	entries := make([]domain.Entry, 0, len(docs)+len(remote))

	localASINs := make(map[string]struct{}, len(docs))
	seenSlugs := make(map[string]struct{}, len(docs)+len(remote))

	for _, doc := range docs {
		entry := doc.ToEntry()
		entries = append(entries, entry)
		seenSlugs[entry.Slug] = struct{}{}
		if entry.ASIN != "" {
			localASINs[entry.ASIN] = struct{}{}
		}
	}

	for _, p := range remote {
		if _, ok := localASINs[p.ASIN]; ok {
			// Local authorship wins over remote data for the same product.
			continue
		}

		entry := domain.NormalizeProduct(p)
		if _, ok := seenSlugs[entry.Slug]; ok {
			continue
		}

		entries = append(entries, entry)
		seenSlugs[entry.Slug] = struct{}{}
	}

	domain.SortByEffectiveDate(entries)

	return entries
}

// GetReview retrieves a single local review document by slug.
func (s *CatalogService) GetReview(slug string) (*domain.Document, error) {
	return s.reviews.Get(slug)
}

// LookupProduct fetches a single remote product. A nil result means
// absent or unreachable; this path is fault tolerant by contract.
func (s *CatalogService) LookupProduct(ctx context.Context, asin string) (*domain.Product, error) {
	return s.products.GetProductByASIN(ctx, asin)
}
