// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

// ReviewsRequest represents the query parameters for listing reviews.
type ReviewsRequest struct {
	Category string `query:"category" validate:"omitempty,max=50"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// Window returns the slice bounds for the requested page over a
// collection of n items. A zero limit means everything.
func (r *ReviewsRequest) Window(n int) (int, int) {
	start := r.Offset
	if start > n {
		start = n
	}

	end := n
	if r.Limit > 0 && start+r.Limit < n {
		end = start + r.Limit
	}

	return start, end
}

// GuidesRequest represents the query parameters for listing guides.
type GuidesRequest struct {
	Category string `query:"category" validate:"omitempty,max=50"`
	Query    string `query:"q" validate:"omitempty,max=200"`
}
