package pagination

import "fmt"

const (
	MinPageSize = 1
	MaxPageSize = 100
)

// Request carries the caller-supplied paging parameters, pre-normalization.
type Request struct {
	PageNo   int    `json:"pageNo"`
	PageSize int    `json:"pageSize"`
	SortBy   string `json:"sortBy"`
	SortDir  string `json:"sortDir"`
}

// Defaults are per-entity fallbacks applied before validation.
type Defaults struct {
	PageSize int
	SortBy   string
	SortDir  string
}

// Normalize fills unset fields from the defaults. PageNo is zero-based, so an
// absent pageNo and an explicit first page are the same request.
func (r Request) Normalize(d Defaults) Request {
	if r.PageSize == 0 {
		r.PageSize = d.PageSize
	}
	if r.SortBy == "" {
		r.SortBy = d.SortBy
	}
	if r.SortDir == "" {
		r.SortDir = d.SortDir
	}
	return r
}

// ValidationError is a field-keyed message map for bad paging input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid pagination parameters" }

// Validate checks bounds after normalization. sortable, when non-empty, is the
// whitelist of accepted sortBy values.
func (r Request) Validate(sortable ...string) *ValidationError {
	fields := map[string]string{}
	if r.PageNo < 0 {
		fields["pageNo"] = "must be greater than or equal to 0"
	}
	if r.PageSize < MinPageSize || r.PageSize > MaxPageSize {
		fields["pageSize"] = fmt.Sprintf("must be between %d and %d", MinPageSize, MaxPageSize)
	}
	if r.SortDir != "asc" && r.SortDir != "desc" {
		fields["sortDir"] = "must be asc or desc"
	}
	if len(sortable) > 0 {
		ok := false
		for _, s := range sortable {
			if r.SortBy == s {
				ok = true
				break
			}
		}
		if !ok {
			fields["sortBy"] = "is not a sortable field"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Offset is the row offset for the requested page.
func (r Request) Offset() int { return r.PageNo * r.PageSize }

// Response is the uniform envelope every list endpoint returns.
type Response[T any] struct {
	Content       []T   `json:"content"`
	PageNo        int   `json:"pageNo"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewResponse builds the envelope, holding totalPages == ceil(total/pageSize)
// and last == (pageNo == totalPages-1). An empty result set has no pages at
// all; its single empty page is still marked last.
func NewResponse[T any](content []T, r Request, total int64) Response[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if r.PageSize > 0 {
		pages = int((total + int64(r.PageSize) - 1) / int64(r.PageSize))
	}
	return Response[T]{
		Content:       content,
		PageNo:        r.PageNo,
		PageSize:      r.PageSize,
		TotalElements: total,
		TotalPages:    pages,
		Last:          pages == 0 || r.PageNo == pages-1,
	}
}
