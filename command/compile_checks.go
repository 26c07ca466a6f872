package command

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-media-exchange/core"
)

var (
	_ gocmd.Commander[UploadMessage]      = (*UploadCommand)(nil)
	_ gocmd.Commander[DownloadMessage]    = (*DownloadCommand)(nil)
	_ gocmd.Commander[DeleteMessage]      = (*DeleteCommand)(nil)
	_ gocmd.Commander[CreateAlbumMessage] = (*CreateAlbumCommand)(nil)

	_ Invoker = (*core.Service)(nil)
)
