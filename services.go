package exchange

import (
	"github.com/goliatone/go-media-exchange/core"
	"github.com/goliatone/go-media-exchange/providers"
	"github.com/goliatone/go-media-exchange/transport"
)

type Config = core.Config

type Option = core.Option

type Service = core.Service

type ServiceDependencies = core.ServiceDependencies

type Operation = core.Operation
type Params = core.Params
type Result = core.Result
type MediaProvider = core.MediaProvider
type AlbumProvider = core.AlbumProvider
type ProviderFactory = core.ProviderFactory
type ProviderEnv = core.ProviderEnv

type InvokeRequest = core.InvokeRequest
type InvokeResult = core.InvokeResult

const (
	OperationIndex       = core.OperationIndex
	OperationUpload      = core.OperationUpload
	OperationDownload    = core.OperationDownload
	OperationDelete      = core.OperationDelete
	OperationCreateAlbum = core.OperationCreateAlbum
	OperationGetAlbum    = core.OperationGetAlbum
	OperationListAlbums  = core.OperationListAlbums
)

var (
	WithLogger               = core.WithLogger
	WithLoggerProvider       = core.WithLoggerProvider
	WithMetricsRecorder      = core.WithMetricsRecorder
	WithConfigProvider       = core.WithConfigProvider
	WithOptionsResolver      = core.WithOptionsResolver
	WithTransportResolver    = core.WithTransportResolver
	WithRegistry             = core.WithRegistry
	WithOperationIDGenerator = core.WithOperationIDGenerator
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// WithHTTPClient routes every provider request through client.
func WithHTTPClient(client transport.HTTPDoer) Option {
	return core.WithTransportResolver(transport.NewDefaultRegistry(client))
}

// New builds a Service with the default HTTP transports and both built-in
// providers registered. Options run after the defaults, so WithRegistry
// replaces the built-in registry entirely.
func New(cfg Config, opts ...Option) (*Service, error) {
	registry := core.NewProviderRegistry()
	if err := providers.RegisterBuiltins(registry); err != nil {
		return nil, err
	}
	defaults := []Option{
		core.WithTransportResolver(transport.NewDefaultRegistry(nil)),
		core.WithRegistry(registry),
	}
	return core.NewService(cfg, append(defaults, opts...)...)
}

// NewService builds a bare Service. Callers supply the transport resolver and
// register providers themselves.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	return core.NewService(cfg, opts...)
}
