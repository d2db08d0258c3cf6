//go:build js && wasm

// Package http makes XML HTTP Requests using native browser code.
package http

import (
	"context"
	"errors"
	"syscall/js"
	"time"
)

type (
	// Client makes HTTP requests.
	Client struct {
		dom Dom
		// Timeout is the amount of time a request can take before being considered timed out.
		Timeout time.Duration
	}

	// Request identifies the question to ask a server.
	Request struct {
		// Method is the HTTP method (GET/POST).
		Method string
		// URL is the address to the server.
		URL string
		// Headers contain additional request properties.
		Headers map[string]string
		// Body contains additional request data.
		Body string
	}

	// Response is what the server responds.
	Response struct {
		// Code is a descriptive status about the server handled the response (200 OK, 500 Internal Server Error).
		Code int
		// Body contains the response data.
		Body string
	}

	// Dom creates the browser objects needed to make requests.
	Dom interface {
		NewXHR() js.Value
		NewJsEventFunc(fn func(event js.Value)) js.Func
	}
)

// xhrEventTypes are the events that finish a request.
var xhrEventTypes = []string{"load", "timeout", "abort", "error"}

// New creates a client that makes requests that time out after the duration.
func New(dom Dom, timeout time.Duration) *Client {
	c := Client{
		dom:     dom,
		Timeout: timeout,
	}
	return &c
}

// Do makes a HTTP request.  The request is aborted if the context is done before the response arrives.
// Do blocks, so it must not be called on the browser's event loop.
func (c Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c.dom == nil {
		return nil, errors.New("dom required to make request")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.New("request not sent: " + err.Error())
	}
	xhr := c.dom.NewXHR()
	xhr.Call("open", req.Method, req.URL)
	timeoutMillis := c.Timeout.Milliseconds()
	xhr.Set("timeout", timeoutMillis)
	for k, v := range req.Headers {
		xhr.Call("setRequestHeader", k, v)
	}
	// the event handler sends at most once and must never block the event loop
	responseC := make(chan Response, 1)
	errC := make(chan error, 1)
	eventHandler := c.dom.NewJsEventFunc(handleEvent(xhr, responseC, errC))
	defer eventHandler.Release()
	for _, event := range xhrEventTypes {
		xhr.Call("addEventListener", event, eventHandler)
	}
	xhr.Call("send", req.Body)
	select {
	case response := <-responseC:
		return &response, nil
	case err := <-errC:
		return nil, err
	case <-ctx.Done():
		xhr.Call("abort")
		return nil, errors.New("request cancelled: " + ctx.Err().Error())
	}
}

// handleEvent handles an event for the XHR.
func handleEvent(xhr js.Value, responseC chan<- Response, errC chan<- error) func(event js.Value) {
	return func(event js.Value) {
		eventType := event.Get("type").String()
		switch eventType {
		case "load":
			code := xhr.Get("status").Int()
			body := xhr.Get("response").String()
			r := Response{
				Code: code,
				Body: body,
			}
			select {
			case responseC <- r:
			default:
			}
		default:
			select {
			case errC <- errors.New("received event type: " + eventType):
			default:
			}
		}
	}
}
