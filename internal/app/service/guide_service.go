package service

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"gear-catalog-service/internal/domain"
)

// AllCategories selects every guide regardless of category.
const AllCategories = "all"

// GuideService serves the how-to guide collection. Guides are local-only:
// remote aggregation applies to reviews, not guides.
type GuideService struct {
	guides domain.ContentStore
	logger *zap.Logger
}

// NewGuideService creates a new GuideService.
func NewGuideService(guides domain.ContentStore, logger *zap.Logger) *GuideService {
	return &GuideService{
		guides: guides,
		logger: logger,
	}
}

// List returns all guides, newest first.
func (s *GuideService) List() ([]*domain.Document, error) {
	return s.guides.List()
}

// Get retrieves a single guide by slug.
func (s *GuideService) Get(slug string) (*domain.Document, error) {
	return s.guides.Get(slug)
}

// Filter returns guides matching the category and free-text query. The
// category "all" (or empty) matches everything; the query matches title,
// description, category and tags, case-insensitively.
func (s *GuideService) Filter(category, query string) ([]*domain.Document, error) {
	guides, err := s.guides.List()
	if err != nil {
		return nil, err
	}

	if category != "" && category != AllCategories {
		filtered := guides[:0:0]
		for _, g := range guides {
			if g.Meta.Category == category {
				filtered = append(filtered, g)
			}
		}
		guides = filtered
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered := guides[:0:0]
		for _, g := range guides {
			if guideMatches(g, q) {
				filtered = append(filtered, g)
			}
		}
		guides = filtered
	}

	return guides, nil
}

// guideMatches reports whether the lowercased query appears in any
// searchable guide field.
func guideMatches(g *domain.Document, q string) bool {
	if strings.Contains(strings.ToLower(g.Meta.Title), q) ||
		strings.Contains(strings.ToLower(g.Meta.Description), q) ||
		strings.Contains(strings.ToLower(g.Meta.Category), q) {
		return true
	}

	for _, tag := range g.Meta.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}

	return false
}

// Categories returns the sorted set of distinct guide categories.
func (s *GuideService) Categories() ([]string, error) {
	guides, err := s.guides.List()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, g := range guides {
		if g.Meta.Category == "" {
			continue
		}
		if _, ok := seen[g.Meta.Category]; ok {
			continue
		}
		seen[g.Meta.Category] = struct{}{}
		categories = append(categories, g.Meta.Category)
	}

	sort.Strings(categories)

	return categories, nil
}
