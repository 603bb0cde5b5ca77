package cms

import "gear-catalog-service/internal/domain"

// ProductsResponse represents the JSON envelope returned by the CMS.
type ProductsResponse struct {
	Data []ProductRecord `json:"data"`
}

// ProductRecord represents a single product row as stored in the CMS.
type ProductRecord struct {
	ASIN        string  `json:"asin"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Summary     string  `json:"summary"`
	ImageURL    string  `json:"image_url"`
	AmazonURL   string  `json:"amazon_url"`
	Rating      float64 `json:"rating"`
	Status      string  `json:"status"`
	DateCreated string  `json:"date_created"`
	DateUpdated string  `json:"date_updated"`
}

// ToDomain converts a ProductRecord to domain.Product.
func (r *ProductRecord) ToDomain() domain.Product {
	return domain.Product{
		ASIN:        r.ASIN,
		Title:       r.Title,
		Brand:       r.Brand,
		Category:    r.Category,
		Summary:     r.Summary,
		ImageURL:    r.ImageURL,
		URL:         r.AmazonURL,
		Rating:      r.Rating,
		Status:      domain.ProductStatus(r.Status),
		DateCreated: r.DateCreated,
		DateUpdated: r.DateUpdated,
	}
}
