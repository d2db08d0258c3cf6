//go:build js && wasm

package api

import (
	"context"

	"github.com/jacobpatterson1549/scoreboard-panel/ui/http"
)

type mockHTTPClient struct {
	DoFunc func(ctx context.Context, req http.Request) (*http.Response, error)
}

func (m mockHTTPClient) Do(ctx context.Context, req http.Request) (*http.Response, error) {
	return m.DoFunc(ctx, req)
}

// respond creates a client that responds to every GET request with the code and body, storing the requested url.
func respond(code int, body string, gotPath *string) mockHTTPClient {
	return mockHTTPClient{
		DoFunc: func(ctx context.Context, req http.Request) (*http.Response, error) {
			*gotPath = req.URL
			if req.Method != "GET" {
				return nil, errMethod
			}
			r := http.Response{
				Code: code,
				Body: body,
			}
			return &r, nil
		},
	}
}
