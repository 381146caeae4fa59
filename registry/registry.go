// Package registry holds the in-memory catalog of transformation tools and
// their categories. The catalog is ground truth for the search index and the
// API; it is built once and read-only afterwards.
package registry

// TransformFunc is the signature every tool exposes: one input string in, one
// output string out. Decoders and parsers return an error for malformed input.
type TransformFunc func(input string) (string, error)

type Tool struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CategoryID  string
	Keywords    []string
	Fn          TransformFunc
}

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Icon        string
}

type Registry struct {
	tools      []Tool
	categories []Category

	toolsBySlug      map[string]int
	categoriesBySlug map[string]int
	categoriesByID   map[string]int
}

// New builds a registry from the given categories and tools. Slice order is
// preserved; it is observable through search result tie-breaking.
func New(categories []Category, tools []Tool) *Registry {
	r := &Registry{
		tools:            tools,
		categories:       categories,
		toolsBySlug:      make(map[string]int, len(tools)),
		categoriesBySlug: make(map[string]int, len(categories)),
		categoriesByID:   make(map[string]int, len(categories)),
	}

	for i, category := range categories {
		r.categoriesBySlug[category.Slug] = i
		r.categoriesByID[category.ID] = i
	}
	for i, tool := range tools {
		r.toolsBySlug[tool.Slug] = i
	}

	return r
}

// Tools returns all tools in registration order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Categories returns all categories in registration order.
func (r *Registry) Categories() []Category {
	return r.categories
}

func (r *Registry) ToolBySlug(slug string) (Tool, bool) {
	i, ok := r.toolsBySlug[slug]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

func (r *Registry) CategoryBySlug(slug string) (Category, bool) {
	i, ok := r.categoriesBySlug[slug]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

func (r *Registry) CategoryByID(id string) (Category, bool) {
	i, ok := r.categoriesByID[id]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

// ToolsByCategory returns the tools belonging to the given category ID, in
// registration order.
func (r *Registry) ToolsByCategory(categoryID string) []Tool {
	var tools []Tool
	for _, tool := range r.tools {
		if tool.CategoryID == categoryID {
			tools = append(tools, tool)
		}
	}
	return tools
}
