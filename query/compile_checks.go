package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-media-exchange/core"
)

var (
	_ gocmd.Querier[IndexMessage, core.Result]      = (*IndexQuery)(nil)
	_ gocmd.Querier[GetAlbumMessage, core.Result]   = (*GetAlbumQuery)(nil)
	_ gocmd.Querier[ListAlbumsMessage, core.Result] = (*ListAlbumsQuery)(nil)

	_ Reader = (*core.Service)(nil)
)
