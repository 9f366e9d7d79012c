package testutil

import (
	"net/http"

	"github.com/avelineg/siren-search-widget-sub000/pkg/requestcontext"
)

// WithSession adds a search session to the request context.
// This simulates what the session middleware does for the X-Session-ID header.
func WithSession(req *http.Request, session string) *http.Request {
	if session == "" {
		return req
	}
	return req.WithContext(requestcontext.WithSessionID(req.Context(), session))
}

// WithRequestID adds a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
