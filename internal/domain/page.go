package domain

// DefaultLimit and MaxLimit bound a listing page.
const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// PaginationParams carries skip/limit values from the HTTP layer to the service layer.
type PaginationParams struct {
	// Skip is the number of matching items to pass over before the page starts.
	Skip int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (skip=0, limit=100).
// The limit is capped at MaxLimit to prevent runaway responses.
func NewPaginationParams(skip, limit *int) PaginationParams {
	p := PaginationParams{Skip: 0, Limit: DefaultLimit}
	if skip != nil && *skip >= 0 {
		p.Skip = *skip
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}
	return p
}

// Window returns the [start, end) bounds of the page within a result set of
// length n. Both bounds are clamped to n so the caller can slice safely.
func (p PaginationParams) Window(n int) (start, end int) {
	start = min(p.Skip, n)
	end = min(start+p.Limit, n)
	return start, end
}
