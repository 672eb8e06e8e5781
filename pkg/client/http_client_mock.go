package client

import (
	"context"
	"sync"

	"github.com/ideaspaper/xcurl/pkg/models"
)

// MockClient is a Transport for tests. It returns a canned response or
// error and records every submitted request.
type MockClient struct {
	mu sync.Mutex

	// Response is the response to return from Submit.
	Response *models.Response

	// Error is the error to return from Submit.
	Error error

	// Requests records all submitted requests.
	Requests []*models.Request

	// ResponseFunc, if set, takes precedence over Response/Error.
	ResponseFunc func(req *models.Request) (*models.Response, error)
}

// Ensure MockClient implements Transport
var _ Transport = (*MockClient)(nil)

// NewMockClient creates a new MockClient.
func NewMockClient() *MockClient {
	return &MockClient{Requests: make([]*models.Request, 0)}
}

// Submit records the request and returns the configured result.
func (m *MockClient) Submit(ctx context.Context, request *models.Request) (*models.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, request)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ResponseFunc != nil {
		return m.ResponseFunc(request)
	}
	return m.Response, m.Error
}

// WithResponse sets the response to return and returns the mock for chaining.
func (m *MockClient) WithResponse(resp *models.Response) *MockClient {
	m.Response = resp
	return m
}

// WithError sets the error to return and returns the mock for chaining.
func (m *MockClient) WithError(err error) *MockClient {
	m.Error = err
	return m
}

// RequestCount returns the number of requests recorded.
func (m *MockClient) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.Requests)
}

// LastRequest returns the most recent request, or nil if none recorded.
func (m *MockClient) LastRequest() *models.Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}
