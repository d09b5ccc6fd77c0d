package entity

// Sort directions accepted by paged queries.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PageRequest selects one page of a sorted result set. Page is zero-based.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one page of results along with totals for the whole result set.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	Page          int
	Size          int
}

// NewPage builds a page for the given request.
func NewPage[T any](content []T, total int64, req PageRequest) *Page[T] {
	if content == nil {
		content = []T{}
	}

	return &Page[T]{
		Content:       content,
		TotalElements: total,
		Page:          req.Page,
		Size:          req.Size,
	}
}

// TotalPages is the number of pages of Size needed to hold every element.
func (p *Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}

	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// IsFirst reports whether this is the first page.
func (p *Page[T]) IsFirst() bool {
	return p.Page == 0
}

// IsLast reports whether no page follows this one.
func (p *Page[T]) IsLast() bool {
	return p.Page+1 >= p.TotalPages()
}

// MapPage converts page content while keeping the paging metadata.
func MapPage[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	out := make([]U, len(p.Content))
	for i, item := range p.Content {
		out[i] = fn(item)
	}

	return &Page[U]{
		Content:       out,
		TotalElements: p.TotalElements,
		Page:          p.Page,
		Size:          p.Size,
	}
}
