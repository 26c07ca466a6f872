package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-media-exchange/core"
)

// Invoker runs a single provider operation. *core.Service satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, req core.InvokeRequest) (core.InvokeResult, error)
}

type UploadCommand struct {
	service Invoker
}

func NewUploadCommand(service Invoker) *UploadCommand {
	return &UploadCommand{service: service}
}

func (c *UploadCommand) Execute(ctx context.Context, msg UploadMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: upload service is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	return invoke(ctx, c.service, core.InvokeRequest{
		ProviderID: msg.ProviderID,
		Credential: msg.Credential,
		Operation:  core.OperationUpload,
		FilePath:   msg.FilePath,
		Params:     msg.Params,
	})
}

type DownloadCommand struct {
	service Invoker
}

func NewDownloadCommand(service Invoker) *DownloadCommand {
	return &DownloadCommand{service: service}
}

// Execute stores the written file path in the result collector.
func (c *DownloadCommand) Execute(ctx context.Context, msg DownloadMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: download service is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	return invoke(ctx, c.service, core.InvokeRequest{
		ProviderID: msg.ProviderID,
		Credential: msg.Credential,
		Operation:  core.OperationDownload,
		ItemID:     msg.ItemID,
		Params:     msg.Params,
	})
}

type DeleteCommand struct {
	service Invoker
}

func NewDeleteCommand(service Invoker) *DeleteCommand {
	return &DeleteCommand{service: service}
}

func (c *DeleteCommand) Execute(ctx context.Context, msg DeleteMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: delete service is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	return invoke(ctx, c.service, core.InvokeRequest{
		ProviderID: msg.ProviderID,
		Credential: msg.Credential,
		Operation:  core.OperationDelete,
		ItemID:     msg.ItemID,
		Params:     msg.Params,
	})
}

type CreateAlbumCommand struct {
	service Invoker
}

func NewCreateAlbumCommand(service Invoker) *CreateAlbumCommand {
	return &CreateAlbumCommand{service: service}
}

func (c *CreateAlbumCommand) Execute(ctx context.Context, msg CreateAlbumMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: create album service is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	return invoke(ctx, c.service, core.InvokeRequest{
		ProviderID: msg.ProviderID,
		Credential: msg.Credential,
		Operation:  core.OperationCreateAlbum,
		Title:      msg.Title,
		Params:     msg.Params,
	})
}

func invoke(ctx context.Context, service Invoker, req core.InvokeRequest) error {
	out, err := service.Invoke(ctx, req)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
