package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TestContext holds the HTTP client and the last response of a scenario.
type TestContext struct {
	baseURL    string
	httpClient *http.Client
	session    string

	lastStatus int
	lastBody   []byte
}

func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

// Reset clears per-scenario state.
func (tc *TestContext) Reset() {
	tc.session = ""
	tc.lastStatus = 0
	tc.lastBody = nil
}

func (tc *TestContext) SetSession(session string) {
	tc.session = session
}

func (tc *TestContext) GET(path string, headers map[string]string) error {
	req, err := http.NewRequest(http.MethodGet, tc.baseURL+path, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return tc.do(req)
}

func (tc *TestContext) POST(path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, tc.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return tc.do(req)
}

func (tc *TestContext) do(req *http.Request) error {
	if tc.session != "" {
		req.Header.Set("X-Session-ID", tc.session)
	}
	resp, err := tc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.lastStatus = resp.StatusCode
	tc.lastBody = body
	return nil
}

// GetResponseField returns a top-level field of the last JSON response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var body map[string]any
	if err := json.Unmarshal(tc.lastBody, &body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	v, ok := body[field]
	if !ok {
		return nil, fmt.Errorf("field %q not in response %s", field, tc.lastBody)
	}
	return v, nil
}

func (tc *TestContext) GetLastResponseStatus() int {
	return tc.lastStatus
}

func (tc *TestContext) GetLastResponseBody() []byte {
	return tc.lastBody
}
