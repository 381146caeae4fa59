// Package search answers relevance-ranked free-text queries over the tool and
// category registry. The index is denormalized and lowercased up front so no
// case-folding happens per query; it is built lazily on first use and stays
// resident for the process lifetime.
package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/devutils/toolbelt/logger"
	"github.com/devutils/toolbelt/registry"
)

type Engine struct {
	logger   logger.Logger
	registry *registry.Registry

	mu    sync.RWMutex
	items []item // nil until the first query builds it
}

func New(logger logger.Logger, registry *registry.Registry) *Engine {
	return &Engine{
		logger:   logger,
		registry: registry,
	}
}

// Search scores every indexed item passing the type and category filters
// against the query, drops scores below the threshold, sorts by score
// descending (ties keep index order) and truncates to the limit.
//
// An empty or whitespace-only query returns an empty result. Search never
// returns an error; no results is an empty slice.
func (e *Engine) Search(query string, opts Options) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Result{}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	itemType := opts.Type
	if itemType == "" {
		itemType = TypeAll
	}

	words := strings.Fields(q)
	items := e.ensureIndex()

	results := []Result{}
	for i := range items {
		it := &items[i]
		if itemType != TypeAll && it.Type != itemType {
			continue
		}
		// Categories carry no category slug, so a category filter implies
		// tools only.
		if opts.Category != "" && it.CategorySlug != opts.Category {
			continue
		}

		score := scoreItem(it, q, words)
		if score < threshold {
			continue
		}
		results = append(results, newResult(it, score))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	return results
}

// SearchTools is Search restricted to tools.
func (e *Engine) SearchTools(query string, opts Options) []Result {
	opts.Type = TypeTool
	return e.Search(query, opts)
}

// SearchCategories is Search restricted to categories.
func (e *Engine) SearchCategories(query string, opts Options) []Result {
	opts.Type = TypeCategory
	return e.Search(query, opts)
}

// Clear drops the index so the next query rebuilds it from the registry.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.items = nil
	e.mu.Unlock()
}

// ensureIndex builds the index on first use. Concurrent first builds are
// resolved by taking the write lock and re-checking: one build wins.
func (e *Engine) ensureIndex() []item {
	e.mu.RLock()
	items := e.items
	e.mu.RUnlock()
	if items != nil {
		return items
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.items == nil {
		e.items = e.buildIndex()
		e.logger.Debug("search index built", "items", len(e.items))
	}
	return e.items
}

func (e *Engine) buildIndex() []item {
	tools := e.registry.Tools()
	categories := e.registry.Categories()

	items := make([]item, 0, len(tools)+len(categories))
	for _, tool := range tools {
		it := item{
			ID:          tool.ID,
			Type:        TypeTool,
			Name:        tool.Name,
			Description: tool.Description,
			Slug:        tool.Slug,
			Keywords:    tool.Keywords,
		}
		if category, ok := e.registry.CategoryByID(tool.CategoryID); ok {
			it.CategorySlug = category.Slug
			it.CategoryName = category.Name
			it.Icon = category.Icon
		}
		items = append(items, lowered(it))
	}
	for _, category := range categories {
		items = append(items, lowered(item{
			ID:          category.ID,
			Type:        TypeCategory,
			Name:        category.Name,
			Description: category.Description,
			Slug:        category.Slug,
			Icon:        category.Icon,
		}))
	}

	return items
}

func lowered(it item) item {
	it.nameLower = strings.ToLower(it.Name)
	it.descriptionLower = strings.ToLower(it.Description)
	it.categoryNameLower = strings.ToLower(it.CategoryName)
	it.keywordsLower = make([]string, len(it.Keywords))
	for i, keyword := range it.Keywords {
		it.keywordsLower[i] = strings.ToLower(keyword)
	}
	return it
}

func newResult(it *item, score int) Result {
	return Result{
		ID:           it.ID,
		Type:         it.Type,
		Name:         it.Name,
		Description:  it.Description,
		Slug:         it.Slug,
		CategorySlug: it.CategorySlug,
		CategoryName: it.CategoryName,
		Icon:         it.Icon,
		Score:        score,
		Keywords:     it.Keywords,
	}
}
