package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Change frequencies understood by sitemap consumers.
const (
	FreqDaily   = "daily"
	FreqWeekly  = "weekly"
	FreqMonthly = "monthly"
)

// URLEntry is a single sitemap URL with its crawl metadata.
type URLEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// SitemapService assembles sitemap URL entries from the aggregated
// catalog, the guide collection and the fixed static pages.
type SitemapService struct {
	catalog *CatalogService
	guides  *GuideService
	baseURL string
	logger  *zap.Logger
}

// NewSitemapService creates a new SitemapService. baseURL is the public
// site origin; a trailing slash is dropped.
func NewSitemapService(catalog *CatalogService, guides *GuideService, baseURL string, logger *zap.Logger) *SitemapService {
	return &SitemapService{
		catalog: catalog,
		guides:  guides,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Build produces the full set of sitemap entries. The catalog side may be
// degraded (local-only); the sitemap is still emitted.
func (s *SitemapService) Build(ctx context.Context) ([]URLEntry, error) {
	catalog, err := s.catalog.BuildCatalog(ctx)
	if err != nil {
		return nil, err
	}

	guides, err := s.guides.List()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	entries := []URLEntry{
		{Loc: s.baseURL, LastMod: now, ChangeFreq: FreqDaily, Priority: 1.0},
		{Loc: s.baseURL + "/reviews", LastMod: now, ChangeFreq: FreqDaily, Priority: 0.9},
		{Loc: s.baseURL + "/guides", LastMod: now, ChangeFreq: FreqWeekly, Priority: 0.9},
		{Loc: s.baseURL + "/about", LastMod: now, ChangeFreq: FreqMonthly, Priority: 0.5},
		{Loc: s.baseURL + "/contact", LastMod: now, ChangeFreq: FreqMonthly, Priority: 0.4},
	}

	categories := make(map[string]struct{})

	for _, e := range catalog {
		lastMod := e.EffectiveDate()
		if lastMod.IsZero() {
			lastMod = now
		}

		entries = append(entries, URLEntry{
			Loc:        s.baseURL + "/review/" + e.Slug,
			LastMod:    lastMod,
			ChangeFreq: FreqMonthly,
			Priority:   0.8,
		})

		if e.ASIN != "" {
			entries = append(entries, URLEntry{
				Loc:        s.baseURL + "/product/" + e.ASIN,
				LastMod:    now,
				ChangeFreq: FreqWeekly,
				Priority:   0.85,
			})
		}

		if e.Category != "" {
			categories[e.Category] = struct{}{}
		}
	}

	for _, g := range guides {
		entry := g.ToEntry()
		lastMod := entry.EffectiveDate()
		if lastMod.IsZero() {
			lastMod = now
		}

		entries = append(entries, URLEntry{
			Loc:        s.baseURL + "/guides/" + g.Slug,
			LastMod:    lastMod,
			ChangeFreq: FreqMonthly,
			Priority:   0.7,
		})

		if g.Meta.Category != "" {
			categories[g.Meta.Category] = struct{}{}
		}
	}

	slugs := make([]string, 0, len(categories))
	for c := range categories {
		slugs = append(slugs, c)
	}
	sort.Strings(slugs)

	for _, c := range slugs {
		entries = append(entries, URLEntry{
			Loc:        s.baseURL + "/category/" + c,
			LastMod:    now,
			ChangeFreq: FreqWeekly,
			Priority:   0.7,
		})
	}

	s.logger.Debug("sitemap built", zap.Int("urls", len(entries)))

	return entries, nil
}
