// Package domain contains the core business logic and entities.
// This package has no external dependencies beyond YAML tags (only stdlib + yaml.v3).
package domain

// Frontmatter holds the structured metadata block of an authored document.
// Title, Date and Description are required; everything else is optional.
// Unknown keys are preserved in Extra so authors can attach arbitrary fields.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	UpdatedDate string   `yaml:"updatedDate,omitempty"`
	ASIN        string   `yaml:"asin,omitempty"`
	Brand       string   `yaml:"brand,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Rating      float64  `yaml:"rating,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	AmazonURL   string   `yaml:"amazonUrl,omitempty"`
	Pros        []string `yaml:"pros,omitempty"`
	Cons        []string `yaml:"cons,omitempty"`

	// Guide-specific fields
	Tags     []string `yaml:"tags,omitempty"`
	ReadTime string   `yaml:"readTime,omitempty"`

	Extra map[string]interface{} `yaml:",inline"`
}

// Document represents a statically authored content item (review or guide).
// The slug is derived from the source filename and is unique within a collection.
type Document struct {
	Slug string
	Meta Frontmatter
	Body string
}

// ToEntry converts a Document into the normalized catalog entry shape.
// Local documents pass through largely unchanged.
func (d *Document) ToEntry() Entry {
	return Entry{
		Slug:        d.Slug,
		Title:       d.Meta.Title,
		Date:        d.Meta.Date,
		UpdatedDate: d.Meta.UpdatedDate,
		Description: d.Meta.Description,
		ASIN:        d.Meta.ASIN,
		Brand:       d.Meta.Brand,
		Category:    d.Meta.Category,
		Rating:      d.Meta.Rating,
		ImageURL:    d.Meta.Image,
		ExternalURL: d.Meta.AmazonURL,
		Pros:        d.Meta.Pros,
		Cons:        d.Meta.Cons,
		Body:        d.Body,
	}
}
