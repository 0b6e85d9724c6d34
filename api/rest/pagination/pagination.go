package pagination

// Pagination describes the window of a list response.
type Pagination struct {
	Total   int64  `json:"total"`
	Limit   uint64 `json:"limit"`
	Offset  uint64 `json:"offset"`
	HasMore bool   `json:"hasMore"`
}

// Response is the envelope returned by paginated list endpoints.
type Response struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// NewResponse wraps items in the pagination envelope. count is the
// number of items in this page, total the unpaginated row count.
func NewResponse(items interface{}, count int, total int64, limit, offset uint64) Response {
	return Response{
		Items: items,
		Pagination: Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset)+int64(count) < total,
		},
	}
}
