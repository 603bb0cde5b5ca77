package domain

import "strings"

// ProductStatus represents the ingestion state of a remote product record.
type ProductStatus string

const (
	ProductStatusFetched ProductStatus = "fetched"
	ProductStatusPending ProductStatus = "pending"
	ProductStatusError   ProductStatus = "error"
)

// Product represents a product record from the remote CMS.
// Only records with status "fetched" are eligible for the catalog; the
// client's default filter enforces this.
type Product struct {
	ASIN        string
	Title       string
	Brand       string
	Category    string
	Summary     string
	ImageURL    string
	URL         string
	Rating      float64
	Status      ProductStatus
	DateCreated string
	DateUpdated string
}

// NormalizeProduct converts a remote product into the normalized catalog
// entry shape. The lowercased ASIN becomes the slug so remote entries get
// stable identifiers that only collide with local slugs when both refer to
// the same product. A missing category is inferred from the title.
func NormalizeProduct(p Product) Entry {
	category := p.Category
	if category == "" {
		category = InferCategory(p.Title)
	}

	description := p.Summary
	if description == "" {
		description = "Expert review of " + p.Title
	}

	return Entry{
		Slug:        strings.ToLower(p.ASIN),
		Title:       p.Title,
		Date:        p.DateCreated,
		UpdatedDate: p.DateUpdated,
		Description: description,
		ASIN:        p.ASIN,
		Brand:       p.Brand,
		Category:    category,
		Rating:      p.Rating,
		ImageURL:    p.ImageURL,
		ExternalURL: p.URL,
	}
}
