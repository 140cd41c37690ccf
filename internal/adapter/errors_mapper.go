package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/course-api/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusErrors[resp.StatusCode()]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Messages:   responseMessages(resp.Body()),
		err:        sentinel,
	}
}

// responseMessages extracts the messages of an error body in either of the
// two shapes the API uses, falling back to the raw text.
func responseMessages(body []byte) []string {
	var errs models.ErrorsResponse
	if err := json.Unmarshal(body, &errs); err == nil && len(errs.Errors) > 0 {
		return errs.Errors
	}

	var msg models.MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
		return []string{msg.Message}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return []string{text}
	}
	return nil
}
