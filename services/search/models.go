package search

// Type narrows a search to one kind of indexed entity.
type Type string

const (
	TypeAll      Type = "all"
	TypeTool     Type = "tool"
	TypeCategory Type = "category"
)

const (
	// DefaultLimit caps the result list when Options.Limit is unset or
	// non-positive.
	DefaultLimit = 10

	// DefaultThreshold is the minimum score a result must reach. A zero
	// Options.Threshold means "use the default"; there is no way to request
	// zero-score results.
	DefaultThreshold = 1
)

// Options tunes a single query. The zero value means: limit 10, all types, no
// category filter, threshold 1.
type Options struct {
	Limit     int
	Category  string
	Type      Type
	Threshold int
}

// item is one denormalized, pre-lowercased index entry. Built once per index
// build, never mutated afterwards.
type item struct {
	ID           string
	Type         Type
	Name         string
	Description  string
	Slug         string
	CategorySlug string
	CategoryName string
	Icon         string
	Keywords     []string

	nameLower         string
	descriptionLower  string
	categoryNameLower string
	keywordsLower     []string
}

// Result is the per-query projection of an index entry plus its relevance
// score. Ephemeral: built per query, sorted, truncated, returned.
type Result struct {
	ID           string   `json:"id"`
	Type         Type     `json:"type"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Slug         string   `json:"slug"`
	CategorySlug string   `json:"categorySlug,omitempty"`
	CategoryName string   `json:"categoryName,omitempty"`
	Icon         string   `json:"icon,omitempty"`
	Score        int      `json:"score"`
	Keywords     []string `json:"keywords,omitempty"`
}
