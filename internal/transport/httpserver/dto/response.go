package dto

import (
	"gear-catalog-service/internal/domain"
)

// EntryResponse represents a single catalog entry in API responses.
// The document body is omitted from listings.
type EntryResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	UpdatedDate string   `json:"updated_date,omitempty"`
	Description string   `json:"description"`
	ASIN        string   `json:"asin,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	External    string   `json:"external_url,omitempty"`
	Pros        []string `json:"pros,omitempty"`
	Cons        []string `json:"cons,omitempty"`
}

// FromEntry converts a domain.Entry to EntryResponse.
func FromEntry(e domain.Entry) EntryResponse {
	return EntryResponse{
		Slug:        e.Slug,
		Title:       e.Title,
		Date:        e.Date,
		UpdatedDate: e.UpdatedDate,
		Description: e.Description,
		ASIN:        e.ASIN,
		Brand:       e.Brand,
		Category:    e.Category,
		Rating:      e.Rating,
		ImageURL:    e.ImageURL,
		External:    e.ExternalURL,
		Pros:        e.Pros,
		Cons:        e.Cons,
	}
}

// CatalogResponse represents the aggregated review listing.
type CatalogResponse struct {
	Reviews []EntryResponse `json:"reviews"`
	Total   int             `json:"total"`
}

// FromCatalog converts a window of the catalog into a CatalogResponse.
// total reflects the full catalog size, not the window.
func FromCatalog(entries []domain.Entry, total int) CatalogResponse {
	reviews := make([]EntryResponse, len(entries))
	for i, e := range entries {
		reviews[i] = FromEntry(e)
	}

	return CatalogResponse{
		Reviews: reviews,
		Total:   total,
	}
}

// DocumentResponse represents a full authored document, body included.
type DocumentResponse struct {
	EntryResponse
	Tags     []string `json:"tags,omitempty"`
	ReadTime string   `json:"read_time,omitempty"`
	Body     string   `json:"body"`
}

// FromDocument converts a domain.Document to DocumentResponse.
func FromDocument(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		EntryResponse: FromEntry(d.ToEntry()),
		Tags:          d.Meta.Tags,
		ReadTime:      d.Meta.ReadTime,
		Body:          d.Body,
	}
}

// GuidesResponse represents a guide listing.
type GuidesResponse struct {
	Guides []DocumentResponse `json:"guides"`
	Total  int                `json:"total"`
}

// FromGuides converts guide documents to a GuidesResponse.
func FromGuides(docs []*domain.Document) GuidesResponse {
	guides := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		guides[i] = FromDocument(d)
	}

	return GuidesResponse{
		Guides: guides,
		Total:  len(guides),
	}
}

// CategoriesResponse represents the distinct guide categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ProductResponse represents a remote product record.
type ProductResponse struct {
	ASIN        string  `json:"asin"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand,omitempty"`
	Category    string  `json:"category,omitempty"`
	Summary     string  `json:"summary,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	URL         string  `json:"url,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Status      string  `json:"status"`
	DateCreated string  `json:"date_created,omitempty"`
}

// FromProduct converts a domain.Product to ProductResponse.
func FromProduct(p *domain.Product) ProductResponse {
	return ProductResponse{
		ASIN:        p.ASIN,
		Title:       p.Title,
		Brand:       p.Brand,
		Category:    p.Category,
		Summary:     p.Summary,
		ImageURL:    p.ImageURL,
		URL:         p.URL,
		Rating:      p.Rating,
		Status:      string(p.Status),
		DateCreated: p.DateCreated,
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
