package session

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
)

// Outcome is a successful classified response: NoContent, JSONBody or
// BinaryBody. Failures are returned as *ClientError or *ServerError.
type Outcome interface {
	outcome()
}

// NoContent is a 204 response.
type NoContent struct{}

// JSONBody is a 200/201 response with a JSON media type.
type JSONBody struct {
	Value any
	Raw   []byte
}

// BinaryBody is a 200/201 response with any other content type.
type BinaryBody struct {
	Data        []byte
	ContentType string
}

func (NoContent) outcome()  {}
func (JSONBody) outcome()   {}
func (BinaryBody) outcome() {}

// Classify maps a response to exactly one of an Outcome or an error.
func Classify(status int, contentType string, body []byte) (Outcome, error) {
	switch {
	case status == http.StatusNoContent:
		return NoContent{}, nil
	case status == http.StatusOK || status == http.StatusCreated:
		if !isJSON(contentType) {
			return BinaryBody{Data: body, ContentType: contentType}, nil
		}
		var value any
		if err := json.Unmarshal(body, &value); err != nil {
			return nil, &ServerError{Status: status, Cause: err}
		}
		return JSONBody{Value: value, Raw: body}, nil
	case status >= 400 && status < 500:
		return nil, parseClientError(status, body)
	default:
		return nil, &ServerError{Status: status}
	}
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, "application/json")
}

func parseClientError(status int, body []byte) *ClientError {
	var payload struct {
		Errors []APIError `json:"errors"`
	}
	// An unparsable body still yields a ClientError, just without details.
	_ = json.Unmarshal(body, &payload)
	return &ClientError{Status: status, Errors: payload.Errors}
}
