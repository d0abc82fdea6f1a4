package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// RoundTripper fakes http transport.
// Responses are taken from Statuses, Bodies and Headers in cycle, unless RoundTripFunc is set.
type RoundTripper struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header

	RoundTripFunc func(*http.Request) (*http.Response, error)

	mu       sync.Mutex
	Requests []*http.Request
}

// RoundTrip implements http.RoundTripper.
func (rt *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	i := len(rt.Requests)
	rt.Requests = append(rt.Requests, r)
	rt.mu.Unlock()

	if rt.RoundTripFunc != nil {
		return rt.RoundTripFunc(r)
	}

	status := http.StatusOK
	if len(rt.Statuses) > 0 {
		status = rt.Statuses[i%len(rt.Statuses)]
	}
	var data []byte
	if len(rt.Bodies) > 0 {
		data = rt.Bodies[i%len(rt.Bodies)]
	}
	header := http.Header{}
	if len(rt.Headers) > 0 {
		header = rt.Headers[i%len(rt.Headers)].Clone()
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     header,
		Request:    r,
	}, nil
}
