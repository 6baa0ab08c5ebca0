package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/url"
)

// webhookParametersKey is injected into every decoded event, carrying the
// query-string parameters of the delivery URL. Senders use it to pass
// auxiliary values that are not part of the provider's payload schema.
const webhookParametersKey = "webhook_parameters"

var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrMalformedPayload       = errors.New("malformed payload")
)

// DecodePayload extracts a structured event from the raw request body.
//
// application/json bodies are the payload itself. Form-encoded bodies
// carry the JSON payload in a form field named "payload". Anything else
// is a decode failure. Query parameters are merged into the event under
// webhook_parameters as ordered value lists.
func DecodePayload(body []byte, contentType string, query url.Values) (map[string]any, error) {
	ct, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	var raw []byte
	switch ct {
	case "application/json":
		raw = body
	case "application/x-www-form-urlencoded":
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		payload := form.Get("payload")
		if payload == "" {
			return nil, fmt.Errorf("%w: missing payload field", ErrMalformedPayload)
		}
		raw = []byte(payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, ct)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	// "null" unmarshals into a nil map without error.
	if data == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformedPayload)
	}

	data[webhookParametersKey] = map[string][]string(query)
	return data, nil
}
