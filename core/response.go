package core

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ExpectOK fails with a ProviderError unless the response status is 200.
func ExpectOK(providerID string, operation Operation, res TransportResponse) error {
	if res.StatusCode != http.StatusOK {
		return ProviderError(providerID, operation, res.StatusCode, res.Body)
	}
	return nil
}

// DecodeResult checks the status and decodes the body as a JSON object. An
// empty 200 body decodes to an empty Result.
func DecodeResult(providerID string, operation Operation, res TransportResponse) (Result, error) {
	if err := ExpectOK(providerID, operation, res); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(res.Body)) == 0 {
		return Result{}, nil
	}
	var out Result
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, MalformedResponse(err, providerID, operation)
	}
	if out == nil {
		out = Result{}
	}
	return out, nil
}

// StringField reads a non-blank string field from a decoded descriptor.
func StringField(result Result, field string) (string, bool) {
	if len(result) == 0 {
		return "", false
	}
	value, ok := result[field].(string)
	if !ok || len(bytes.TrimSpace([]byte(value))) == 0 {
		return "", false
	}
	return value, true
}
