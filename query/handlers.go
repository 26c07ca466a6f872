package query

import (
	"context"

	"github.com/goliatone/go-media-exchange/core"
)

// Reader runs a single provider operation. *core.Service satisfies it.
type Reader interface {
	Invoke(ctx context.Context, req core.InvokeRequest) (core.InvokeResult, error)
}

type IndexQuery struct {
	reader Reader
}

func NewIndexQuery(reader Reader) *IndexQuery {
	return &IndexQuery{reader: reader}
}

func (q *IndexQuery) Query(ctx context.Context, msg IndexMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: index reader is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, q.reader, core.InvokeRequest{
		ProviderID: msg.ProviderID,
		Credential: msg.Credential,
		Operation:  core.OperationIndex,
		Params:     msg.Params,
	})
}

type GetAlbumQuery struct {
	reader Reader
}

func NewGetAlbumQuery(reader Reader) *GetAlbumQuery {
	return &GetAlbumQuery{reader: reader}
}

func (q *GetAlbumQuery) Query(ctx context.Context, msg GetAlbumMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: album reader is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, q.reader, core.InvokeRequest{
		ProviderID: msg.ProviderID,
		Credential: msg.Credential,
		Operation:  core.OperationGetAlbum,
		ItemID:     msg.AlbumID,
		Params:     msg.Params,
	})
}

type ListAlbumsQuery struct {
	reader Reader
}

func NewListAlbumsQuery(reader Reader) *ListAlbumsQuery {
	return &ListAlbumsQuery{reader: reader}
}

func (q *ListAlbumsQuery) Query(ctx context.Context, msg ListAlbumsMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: album reader is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, q.reader, core.InvokeRequest{
		ProviderID: msg.ProviderID,
		Credential: msg.Credential,
		Operation:  core.OperationListAlbums,
		Params:     msg.Params,
	})
}

func read(ctx context.Context, reader Reader, req core.InvokeRequest) (core.Result, error) {
	out, err := reader.Invoke(ctx, req)
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}
