package domain

import "context"

// ContentStore defines the interface for reading statically authored
// documents from a collection.
// Implementations: internal/infra/content/store.go
type ContentStore interface {
	// Get retrieves a single document by slug. Returns ErrNotFound when no
	// matching file exists and *ParseError when the metadata block is
	// malformed.
	Get(slug string) (*Document, error)

	// List retrieves all parseable documents in the collection, sorted
	// descending by date. Unparsable items are skipped, not fatal.
	List() ([]*Document, error)
}

// ProductFilter narrows a remote product listing.
type ProductFilter struct {
	Status string // defaults to "fetched" when empty
	Limit  int
	Offset int
}

// ProductSource defines the interface for the remote CMS product catalog.
// Implementations: internal/infra/cms/client.go
type ProductSource interface {
	// ListProducts fetches product records, newest first. Failures surface
	// as *RemoteServiceError; retry policy is the caller's responsibility.
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)

	// GetProductByASIN performs a single-item lookup. Failures are logged
	// and swallowed to a nil result, never raised.
	GetProductByASIN(ctx context.Context, asin string) (*Product, error)
}
