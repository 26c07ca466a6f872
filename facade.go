package exchange

import (
	"fmt"

	mediacommand "github.com/goliatone/go-media-exchange/command"
	mediaquery "github.com/goliatone/go-media-exchange/query"
)

// CommandQueryService is the single entry point both handler families share.
type CommandQueryService interface {
	mediacommand.Invoker
}

type Commands struct {
	Upload      *mediacommand.UploadCommand
	Download    *mediacommand.DownloadCommand
	Delete      *mediacommand.DeleteCommand
	CreateAlbum *mediacommand.CreateAlbumCommand
}

type Queries struct {
	Index      *mediaquery.IndexQuery
	GetAlbum   *mediaquery.GetAlbumQuery
	ListAlbums *mediaquery.ListAlbumsQuery
}

type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

func NewFacade(service CommandQueryService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("exchange: command/query service is required")
	}
	return &Facade{
		service: service,
		commands: Commands{
			Upload:      mediacommand.NewUploadCommand(service),
			Download:    mediacommand.NewDownloadCommand(service),
			Delete:      mediacommand.NewDeleteCommand(service),
			CreateAlbum: mediacommand.NewCreateAlbumCommand(service),
		},
		queries: Queries{
			Index:      mediaquery.NewIndexQuery(service),
			GetAlbum:   mediaquery.NewGetAlbumQuery(service),
			ListAlbums: mediaquery.NewListAlbumsQuery(service),
		},
	}, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}
