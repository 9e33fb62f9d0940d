package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/quantgate/marketdata/src/marketmodels"
)

const DefaultBaseURL = "https://api.polygon.io"

var tracer = otel.Tracer("github.com/quantgate/marketdata/src/rest")

// Client is a typed HTTP client for the market-data REST API. It is safe for
// concurrent use; all mutable state lives in the requests it builds.
type Client struct {
	BaseURL string

	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

func NewClientWithBaseURL(apiKey string, baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var queryEncoder = newQueryEncoder()

func newQueryEncoder() *schema.Encoder {
	e := schema.NewEncoder()
	e.SetAliasTag("query")
	e.RegisterEncoder(marketmodels.Date{}, func(v reflect.Value) string {
		return v.Interface().(marketmodels.Date).ToString()
	})

	return e
}

// encodeQuery turns a query:"..."-tagged request struct into url.Values.
// Fields tagged query:"-" travel in the path instead.
func encodeQuery(req interface{}) (url.Values, error) {
	values := url.Values{}
	if err := queryEncoder.Encode(req, values); err != nil {
		return nil, fmt.Errorf("encodeQuery: %w", err)
	}

	return values, nil
}

// getJSON issues a GET against an absolute URL, appends the API key and
// query params, and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, params url.Values, out interface{}) error {
	ctx, span := tracer.Start(ctx, "rest.getJSON")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("getJSON: failed to create request: %w", err)
	}

	q := req.URL.Query()
	for key, vals := range params {
		for _, val := range vals {
			q.Add(key, val)
		}
	}
	q.Add("apiKey", c.apiKey)

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("X-Request-Id", uuid.NewString())

	span.SetAttributes(attribute.String("http.path", req.URL.Path))
	log.Debugf("getJSON: fetching %v", req.URL.Path)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("getJSON: failed to fetch %v: %w", req.URL.Path, err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("getJSON: failed to fetch %v, http code %v", req.URL.Path, res.Status)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("getJSON: failed to decode json: %w", err)
	}

	return nil
}

// fetchListPage adapts getJSON to the paginated fetch signature. The api key
// argument is carried by the signature but already applied by getJSON.
func fetchListPage[T any](ctx context.Context, c *Client) marketmodels.FetchDataFunc[T] {
	return func(pageURL, _ string) (*marketmodels.AggregateResult[T], error) {
		var dto marketmodels.ListResponse[T]
		if err := c.getJSON(ctx, pageURL, nil, &dto); err != nil {
			return nil, fmt.Errorf("fetchListPage: %w", err)
		}

		return &marketmodels.AggregateResult[T]{
			QueryCount:   1,
			ResultsCount: len(dto.Results),
			Results:      dto.Results,
			GetNextURL:   func() *string { return dto.NextURL },
		}, nil
	}
}
