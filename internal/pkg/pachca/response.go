package pachca

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ZertGraf/pachca-tags/internal/domain"
)

// Response is the raw result of one api call. Non-2xx statuses are returned
// as-is, never as errors.
type Response struct {
	Status int
	Body   []byte
}

func (r *Response) OK() bool {
	return r.Status == http.StatusOK
}

// Decode unmarshals the top-level "data" field of the body into out.
func (r *Response) Decode(out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("decode response: missing data field")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// Err converts the response into a *StatusError.
func (r *Response) Err() error {
	return &StatusError{Status: r.Status, Body: strings.TrimSpace(string(r.Body))}
}

// StatusError carries a non-success status and the raw body for diagnostics.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status=%d body=%s", e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrUnexpectedStatus
}
