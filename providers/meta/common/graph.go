package common

import (
	"strings"

	"github.com/goliatone/go-media-exchange/core"
)

const (
	InstagramGraphBaseURL = core.DefaultSocialContentBaseURL

	FieldMediaURL = "media_url"
)

// BearerHeaders returns the fixed header set sent with Graph API calls.
func BearerHeaders(accessToken string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + accessToken,
		"Content-Type":  "application/json",
	}
}

// MediaURL picks the downloadable asset from a Graph media descriptor.
func MediaURL(descriptor core.Result) (string, bool) {
	value, ok := core.StringField(descriptor, FieldMediaURL)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(value), true
}
