package providers

import (
	"encoding/json"
	"io"
	"net/http"
)

const maxBodyBytes = 4 << 20

// DoJSON performs req and decodes a 2xx JSON body into out. Transport
// failures, non-2xx statuses and undecodable bodies come back as
// *ProviderError so no raw transport error escapes a client.
func DoJSON(client *http.Client, providerID string, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return FromTransport(providerID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return FromStatus(providerID, resp.StatusCode)
	}
	if out == nil {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return FromTransport(providerID, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return NewProviderError(ErrorBadData, providerID, "decode response", err)
	}
	return nil
}
