// Package content implements the filesystem-backed document store.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"gear-catalog-service/internal/domain"
)

// Ext is the file extension for authored documents.
const Ext = ".md"

// Store implements domain.ContentStore for one collection directory.
// One file per item; the filename minus extension is the slug.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a Store rooted at the given collection directory.
func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the collection root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Get retrieves a single document by slug. Returns domain.ErrNotFound
// when no matching file exists and *domain.ParseError when the metadata
// block is malformed.
func (s *Store) Get(slug string) (*domain.Document, error) {
	path := filepath.Join(s.dir, slug+Ext)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}

		return nil, fmt.Errorf("reading document %q: %w", slug, err)
	}

	meta, body, err := splitFrontmatter(raw)
	if err != nil {
		return nil, &domain.ParseError{Slug: slug, Err: err}
	}

	return &domain.Document{
		Slug: slug,
		Meta: meta,
		Body: body,
	}, nil
}

// List retrieves all parseable documents in the collection, sorted
// descending by date. Items with malformed metadata are skipped and
// logged; a broken file never aborts the bulk load. A missing collection
// directory yields an empty list.
func (s *Store) List() ([]*domain.Document, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("collection directory missing", zap.String("dir", s.dir))

			return []*domain.Document{}, nil
		}

		return nil, fmt.Errorf("reading collection %q: %w", s.dir, err)
	}

	docs := make([]*domain.Document, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), Ext) {
			continue
		}

		slug := strings.TrimSuffix(f.Name(), Ext)
		doc, err := s.Get(slug)
		if err != nil {
			s.logger.Warn("skipping unparsable document",
				zap.String("slug", slug),
				zap.Error(err),
			)

			continue
		}

		docs = append(docs, doc)
	}

	sortByDateDesc(docs)

	return docs, nil
}

// sortByDateDesc orders documents newest first by their authored date.
// Unparsable dates sort last.
func sortByDateDesc(docs []*domain.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return domain.ParseDate(docs[i].Meta.Date).After(domain.ParseDate(docs[j].Meta.Date))
	})
}
