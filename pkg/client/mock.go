package client

import (
	"context"
	"net/http"
)

// MockClient records requests and answers with SendFunc or 204 No Content.
type MockClient struct {
	SendFunc func(ctx context.Context, req Request) (*Response, error)

	SendCalls []Request
}

func NewMockClient() *MockClient {
	return &MockClient{
		SendCalls: make([]Request, 0),
	}
}

func (m *MockClient) Send(ctx context.Context, req Request) (*Response, error) {
	m.SendCalls = append(m.SendCalls, req)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, req)
	}
	return &Response{StatusCode: http.StatusNoContent, Header: http.Header{}}, nil
}

// JSONResponse builds a canned JSON response.
func JSONResponse(status int, body string) *Response {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return &Response{StatusCode: status, ContentType: "application/json", Header: h, Body: []byte(body)}
}
