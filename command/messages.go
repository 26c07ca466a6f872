package command

import (
	"strings"

	"github.com/goliatone/go-media-exchange/core"
)

const (
	TypeUpload      = "media.command.upload"
	TypeDownload    = "media.command.download"
	TypeDelete      = "media.command.delete"
	TypeCreateAlbum = "media.command.album.create"
)

type UploadMessage struct {
	ProviderID string
	Credential string
	FilePath   string
	Params     core.Params
}

func (UploadMessage) Type() string { return TypeUpload }

func (m UploadMessage) Validate() error {
	if err := validateProvider(m.ProviderID, m.Credential); err != nil {
		return err
	}
	if strings.TrimSpace(m.FilePath) == "" {
		return commandValidationError("file_path", "file path is required")
	}
	return nil
}

type DownloadMessage struct {
	ProviderID string
	Credential string
	ItemID     string
	Params     core.Params
}

func (DownloadMessage) Type() string { return TypeDownload }

func (m DownloadMessage) Validate() error {
	if err := validateProvider(m.ProviderID, m.Credential); err != nil {
		return err
	}
	if strings.TrimSpace(m.ItemID) == "" {
		return commandValidationError("item_id", "item id is required")
	}
	return nil
}

type DeleteMessage struct {
	ProviderID string
	Credential string
	ItemID     string
	Params     core.Params
}

func (DeleteMessage) Type() string { return TypeDelete }

func (m DeleteMessage) Validate() error {
	if err := validateProvider(m.ProviderID, m.Credential); err != nil {
		return err
	}
	if strings.TrimSpace(m.ItemID) == "" {
		return commandValidationError("item_id", "item id is required")
	}
	return nil
}

type CreateAlbumMessage struct {
	ProviderID string
	Credential string
	Title      string
	Params     core.Params
}

func (CreateAlbumMessage) Type() string { return TypeCreateAlbum }

func (m CreateAlbumMessage) Validate() error {
	if err := validateProvider(m.ProviderID, m.Credential); err != nil {
		return err
	}
	if strings.TrimSpace(m.Title) == "" {
		return commandValidationError("title", "album title is required")
	}
	return nil
}

func validateProvider(providerID string, credential string) error {
	if strings.TrimSpace(providerID) == "" {
		return commandValidationError("provider_id", "provider id is required")
	}
	if strings.TrimSpace(credential) == "" {
		return commandValidationError("credential", "credential is required")
	}
	return nil
}
