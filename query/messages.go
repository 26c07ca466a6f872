package query

import (
	"strings"

	"github.com/goliatone/go-media-exchange/core"
)

const (
	TypeIndex      = "media.query.index"
	TypeGetAlbum   = "media.query.album.get"
	TypeListAlbums = "media.query.album.list"
)

type IndexMessage struct {
	ProviderID string
	Credential string
	Params     core.Params
}

func (IndexMessage) Type() string { return TypeIndex }

func (m IndexMessage) Validate() error {
	return validateProvider(m.ProviderID, m.Credential)
}

type GetAlbumMessage struct {
	ProviderID string
	Credential string
	AlbumID    string
	Params     core.Params
}

func (GetAlbumMessage) Type() string { return TypeGetAlbum }

func (m GetAlbumMessage) Validate() error {
	if err := validateProvider(m.ProviderID, m.Credential); err != nil {
		return err
	}
	if strings.TrimSpace(m.AlbumID) == "" {
		return queryValidationError("album_id", "album id is required")
	}
	return nil
}

type ListAlbumsMessage struct {
	ProviderID string
	Credential string
	Params     core.Params
}

func (ListAlbumsMessage) Type() string { return TypeListAlbums }

func (m ListAlbumsMessage) Validate() error {
	return validateProvider(m.ProviderID, m.Credential)
}

func validateProvider(providerID string, credential string) error {
	if strings.TrimSpace(providerID) == "" {
		return queryValidationError("provider_id", "provider id is required")
	}
	if strings.TrimSpace(credential) == "" {
		return queryValidationError("credential", "credential is required")
	}
	return nil
}
