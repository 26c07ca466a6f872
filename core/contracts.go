package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

type Operation string

const (
	OperationIndex       Operation = "index"
	OperationUpload      Operation = "upload"
	OperationDownload    Operation = "download"
	OperationDelete      Operation = "delete"
	OperationCreateAlbum Operation = "create_album"
	OperationGetAlbum    Operation = "get_album"
	OperationListAlbums  Operation = "list_albums"
)

func (o Operation) String() string {
	return string(o)
}

// Params carries optional, operation-specific arguments. A nil Params behaves
// exactly like an empty one.
type Params map[string]any

// Result is the decoded JSON object returned by a provider.
type Result map[string]any

// MediaProvider is the capability contract every provider adapter satisfies.
// Operations a provider does not offer fail with an unsupported operation error
// without touching the network.
type MediaProvider interface {
	ID() string
	Capabilities() []Operation
	Authenticate(ctx context.Context) error
	Index(ctx context.Context, params Params) (Result, error)
	Upload(ctx context.Context, filePath string, params Params) (Result, error)
	Download(ctx context.Context, itemID string, params Params) (string, error)
	Delete(ctx context.Context, itemID string, params Params) (Result, error)
}

// AlbumProvider is implemented by providers with an album resource family.
type AlbumProvider interface {
	CreateAlbum(ctx context.Context, title string, params Params) (Result, error)
	GetAlbum(ctx context.Context, albumID string, params Params) (Result, error)
	ListAlbums(ctx context.Context, params Params) (Result, error)
}

// ProviderEnv is everything a provider factory needs besides the credential.
type ProviderEnv struct {
	Config Config
	REST   TransportAdapter
	File   TransportAdapter
	Logger Logger
}

type ProviderFactory func(credential string, env ProviderEnv) (MediaProvider, error)

type Registry interface {
	Register(providerID string, factory ProviderFactory) error
	Get(providerID string) (ProviderFactory, bool)
	List() []string
}

type TransportRequest struct {
	Method               string
	URL                  string
	Headers              map[string]string
	Query                map[string]string
	Body                 []byte
	Metadata             map[string]any
	Timeout              time.Duration
	MaxResponseBodyBytes int64
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

type TransportResolver interface {
	Build(kind string, config map[string]any) (TransportAdapter, error)
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type InvokeRequest struct {
	ProviderID string
	Credential string
	Operation  Operation
	ItemID     string
	FilePath   string
	Title      string
	Params     Params
}

type InvokeResult struct {
	OperationID string
	ProviderID  string
	Operation   Operation
	Result      Result
	FilePath    string
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
