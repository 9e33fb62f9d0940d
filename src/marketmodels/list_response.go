package marketmodels

// ListResponse is the envelope shared by the cursor-paginated v3 endpoints.
type ListResponse[T any] struct {
	Results   []T     `json:"results"`
	Status    string  `json:"status"`
	RequestID string  `json:"request_id"`
	NextURL   *string `json:"next_url"`
}

// SingleResponse is the envelope for endpoints returning one object.
type SingleResponse[T any] struct {
	Results   T      `json:"results"`
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

type AggregateResult[T any] struct {
	QueryCount   int
	ResultsCount int
	Results      []T
	GetNextURL   func() *string
}

type FetchDataFunc[T any] func(url, apiKey string) (*AggregateResult[T], error)
