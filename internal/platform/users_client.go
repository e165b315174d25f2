package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/ytget/userlist/internal/logging"
	"github.com/ytget/userlist/internal/model"
)

// UsersEndpoint is the only source of users
const UsersEndpoint = "https://jsonplaceholder.typicode.com/users"

// RequestIDHeader carries the per-fetch correlation ID
const RequestIDHeader = "X-Request-ID"

// Fetch errors
var (
	ErrInvalidEndpoint = errors.New("invalid users endpoint")
	ErrEmptyResponse   = errors.New("empty response body")
	ErrDecode          = errors.New("cannot decode users")
)

// UserFetcher loads the remote user list
type UserFetcher interface {
	FetchUsers(ctx context.Context) ([]model.User, error)
}

// UsersClient fetches users over HTTP with a single GET
type UsersClient struct {
	endpoint string
	client   *http.Client
	logger   logging.Logger
}

// UsersClientOption configures a UsersClient
type UsersClientOption func(*UsersClient)

// WithEndpoint overrides the endpoint, used by tests
func WithEndpoint(endpoint string) UsersClientOption {
	return func(c *UsersClient) { c.endpoint = endpoint }
}

// WithHTTPClient sets the HTTP client
func WithHTTPClient(client *http.Client) UsersClientOption {
	return func(c *UsersClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger logging.Logger) UsersClientOption {
	return func(c *UsersClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewUsersClient creates a client for UsersEndpoint
func NewUsersClient(opts ...UsersClientOption) *UsersClient {
	c := &UsersClient{
		endpoint: UsersEndpoint,
		client:   http.DefaultClient,
		logger:   logging.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client fetches
func (c *UsersClient) Endpoint() string {
	return c.endpoint
}

// FetchUsers performs the GET and decodes the body. The status code is not
// checked; any body that decodes as a user array is accepted.
func (c *UsersClient) FetchUsers(ctx context.Context) ([]model.User, error) {
	endpoint, err := url.Parse(c.endpoint)
	if err != nil || endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	c.logger.Debugf("GET %s request_id=%s", endpoint, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read users body: %w", err)
	}
	c.logger.Debugf("GET %s request_id=%s status=%d bytes=%d", endpoint, requestID, resp.StatusCode, len(body))

	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	users, err := model.DecodeUsers(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return users, nil
}
