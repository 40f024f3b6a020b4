package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RequestError reports a failed backend call: either a non-2xx response
// (StatusCode set) or a transport failure (StatusCode zero).
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("backend request failed: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// newRequestError captures the status and, when present, the server-provided
// message of a non-2xx response. The backend reports errors either as a plain
// text body or as {"message": "..."}.
func newRequestError(resp *http.Response) *RequestError {
	reqErr := &RequestError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return reqErr
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			reqErr.Message = payload.Message
			return reqErr
		}
		if payload.Error != "" {
			reqErr.Message = payload.Error
			return reqErr
		}
	}
	reqErr.Message = strings.TrimSpace(string(body))
	return reqErr
}
