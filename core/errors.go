package core

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorProviderError        = "MEDIA_PROVIDER_ERROR"
	ErrorUnsupportedOperation = "MEDIA_UNSUPPORTED_OPERATION"
	ErrorMissingField         = "MEDIA_MISSING_FIELD"
	ErrorLocalIO              = "MEDIA_LOCAL_IO"
	ErrorBadInput             = "MEDIA_BAD_INPUT"
	ErrorProviderNotFound     = "MEDIA_PROVIDER_NOT_FOUND"
	ErrorTransportFailure     = "MEDIA_TRANSPORT_FAILURE"
	ErrorMalformedResponse    = "MEDIA_MALFORMED_RESPONSE"
	ErrorInternal             = "MEDIA_INTERNAL_ERROR"
)

// ProviderError reports a provider response whose status was not 200. The raw
// status and body travel in the error metadata.
func ProviderError(providerID string, operation Operation, status int, body []byte) *goerrors.Error {
	return goerrors.New(
		fmt.Sprintf("%s: %s failed with status %d: %s", providerID, operation, status, strings.TrimSpace(string(body))),
		goerrors.CategoryExternal,
	).
		WithCode(http.StatusBadGateway).
		WithTextCode(ErrorProviderError).
		WithMetadata(map[string]any{
			"provider_id": providerID,
			"operation":   operation.String(),
			"status":      status,
			"body":        string(body),
		})
}

func UnsupportedOperation(providerID string, operation Operation) *goerrors.Error {
	return goerrors.New(
		fmt.Sprintf("%s: operation %q is not supported", providerID, operation),
		goerrors.CategoryOperation,
	).
		WithCode(http.StatusNotImplemented).
		WithTextCode(ErrorUnsupportedOperation).
		WithMetadata(map[string]any{
			"provider_id": providerID,
			"operation":   operation.String(),
		})
}

func MissingField(providerID string, operation Operation, field string) *goerrors.Error {
	return goerrors.New(
		fmt.Sprintf("%s: %s response is missing field %q", providerID, operation, field),
		goerrors.CategoryExternal,
	).
		WithCode(http.StatusBadGateway).
		WithTextCode(ErrorMissingField).
		WithMetadata(map[string]any{
			"provider_id": providerID,
			"operation":   operation.String(),
			"field":       field,
		})
}

// LocalIOError wraps a failure reading an upload source or writing a download
// destination. action is "read" or "write".
func LocalIOError(source error, path string, action string) *goerrors.Error {
	message := fmt.Sprintf("local file %s failed: %s", action, path)
	var err *goerrors.Error
	if source == nil {
		err = goerrors.New(message, goerrors.CategoryInternal)
	} else {
		err = goerrors.Wrap(source, goerrors.CategoryInternal, message)
	}
	return err.
		WithCode(http.StatusInternalServerError).
		WithTextCode(ErrorLocalIO).
		WithMetadata(map[string]any{
			"path":   path,
			"action": action,
		})
}

func BadInput(field string, message string) *goerrors.Error {
	return goerrors.NewValidation(message, goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorBadInput)
}

func ProviderNotFound(providerID string) *goerrors.Error {
	return goerrors.New(
		fmt.Sprintf("core: provider %q is not registered", providerID),
		goerrors.CategoryNotFound,
	).
		WithCode(http.StatusNotFound).
		WithTextCode(ErrorProviderNotFound).
		WithMetadata(map[string]any{"provider_id": providerID})
}

func MalformedResponse(source error, providerID string, operation Operation) *goerrors.Error {
	return goerrors.Wrap(
		source,
		goerrors.CategoryExternal,
		fmt.Sprintf("%s: %s response is not a json object", providerID, operation),
	).
		WithCode(http.StatusBadGateway).
		WithTextCode(ErrorMalformedResponse).
		WithMetadata(map[string]any{
			"provider_id": providerID,
			"operation":   operation.String(),
		})
}

func InternalError(message string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(ErrorInternal)
}

// TextCode returns the text code of a go-errors envelope, or "" for plain errors.
func TextCode(err error) string {
	var rich *goerrors.Error
	if err == nil || !goerrors.As(err, &rich) {
		return ""
	}
	return rich.TextCode
}

// AsProviderError extracts the provider status and body carried by a
// ProviderError.
func AsProviderError(err error) (status int, body string, ok bool) {
	var rich *goerrors.Error
	if err == nil || !goerrors.As(err, &rich) || rich.TextCode != ErrorProviderError {
		return 0, "", false
	}
	status, _ = rich.Metadata["status"].(int)
	body, _ = rich.Metadata["body"].(string)
	return status, body, true
}

func IsUnsupportedOperation(err error) bool {
	return TextCode(err) == ErrorUnsupportedOperation
}

func IsMissingField(err error) bool {
	return TextCode(err) == ErrorMissingField
}

func IsLocalIOError(err error) bool {
	return TextCode(err) == ErrorLocalIO
}

func IsProviderNotFound(err error) bool {
	return TextCode(err) == ErrorProviderNotFound
}

func IsBadInput(err error) bool {
	return TextCode(err) == ErrorBadInput
}
