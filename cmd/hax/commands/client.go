package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// errorBody mirrors the server's error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func httpClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// doJSON sends an optional JSON body and decodes a JSON response into out.
// Non-2xx responses are turned into errors carrying the server's message.
func doJSON(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, serverAddr+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Message != "" {
			return fmt.Errorf("%s (%s)", e.Message, resp.Status)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// getRaw streams a GET response body to w, for export downloads.
func getRaw(path string, w io.Writer) error {
	resp, err := httpClient().Get(serverAddr + path)
	if err != nil {
		return fmt.Errorf("request GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}
