package core

import (
	"context"
	"strings"
	"sync"
)

type testProvider struct {
	id         string
	credential string
	env        ProviderEnv
	calls      *[]string
}

func (p testProvider) ID() string { return p.id }

func (p testProvider) Capabilities() []Operation {
	return []Operation{OperationIndex, OperationUpload, OperationDownload, OperationDelete}
}

func (p testProvider) Authenticate(context.Context) error {
	if strings.TrimSpace(p.credential) == "" {
		return BadInput("credential", "test provider: credential is required")
	}
	return nil
}

func (p testProvider) Index(_ context.Context, params Params) (Result, error) {
	p.record("index")
	return Result{"params": map[string]any(params)}, nil
}

func (p testProvider) Upload(_ context.Context, filePath string, _ Params) (Result, error) {
	p.record("upload:" + filePath)
	return Result{"uploaded": filePath}, nil
}

func (p testProvider) Download(_ context.Context, itemID string, params Params) (string, error) {
	p.record("download:" + itemID)
	return ResolveDownloadPath(params, p.env.Config.Download.Directory, itemID, "jpg")
}

func (p testProvider) Delete(_ context.Context, itemID string, _ Params) (Result, error) {
	p.record("delete:" + itemID)
	return nil, ProviderError(p.id, OperationDelete, 404, []byte(`{"error":"gone"}`))
}

func (p testProvider) record(call string) {
	if p.calls != nil {
		*p.calls = append(*p.calls, call)
	}
}

type testAlbumProvider struct {
	testProvider
}

func (p testAlbumProvider) Capabilities() []Operation {
	return append(p.testProvider.Capabilities(), OperationCreateAlbum, OperationGetAlbum, OperationListAlbums)
}

func (p testAlbumProvider) CreateAlbum(_ context.Context, title string, _ Params) (Result, error) {
	p.record("create_album:" + title)
	return Result{"title": title}, nil
}

func (p testAlbumProvider) GetAlbum(_ context.Context, albumID string, _ Params) (Result, error) {
	p.record("get_album:" + albumID)
	return Result{"id": albumID}, nil
}

func (p testAlbumProvider) ListAlbums(context.Context, Params) (Result, error) {
	p.record("list_albums")
	return Result{"albums": []any{}}, nil
}

// testReadOnlyProvider offers only listing and download, like a social feed.
type testReadOnlyProvider struct {
	testProvider
}

func (p testReadOnlyProvider) Capabilities() []Operation {
	return []Operation{OperationIndex, OperationDownload}
}

type testTransport struct {
	kind   string
	config map[string]any
}

func (t *testTransport) Kind() string { return t.kind }

func (t *testTransport) Do(context.Context, TransportRequest) (TransportResponse, error) {
	return TransportResponse{StatusCode: 200}, nil
}

type testTransportResolver struct {
	mu    sync.Mutex
	built []*testTransport
}

func (r *testTransportResolver) Build(kind string, config map[string]any) (TransportAdapter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	adapter := &testTransport{kind: kind, config: config}
	r.built = append(r.built, adapter)
	return adapter, nil
}

func newTestService(calls *[]string, opts ...Option) (*Service, error) {
	registry := NewProviderRegistry()
	_ = registry.Register("plain", func(credential string, env ProviderEnv) (MediaProvider, error) {
		return testProvider{id: "plain", credential: credential, env: env, calls: calls}, nil
	})
	_ = registry.Register("albums", func(credential string, env ProviderEnv) (MediaProvider, error) {
		return testAlbumProvider{testProvider{id: "albums", credential: credential, env: env, calls: calls}}, nil
	})
	base := []Option{
		WithRegistry(registry),
		WithTransportResolver(&testTransportResolver{}),
		WithOperationIDGenerator(func() string { return "op_1" }),
	}
	return NewService(Config{}, append(base, opts...)...)
}

type stubLogger struct{}

func (stubLogger) Trace(string, ...any) {}
func (stubLogger) Debug(string, ...any) {}
func (stubLogger) Info(string, ...any)  {}
func (stubLogger) Warn(string, ...any)  {}
func (stubLogger) Error(string, ...any) {}
func (stubLogger) Fatal(string, ...any) {}
func (s stubLogger) WithContext(context.Context) Logger {
	return s
}

type stubLoggerProvider struct {
	logger Logger
}

func (s stubLoggerProvider) GetLogger(string) Logger {
	return s.logger
}

type mapRawLoader struct {
	values map[string]any
}

func (l mapRawLoader) LoadRaw(context.Context) (map[string]any, error) {
	if len(l.values) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(l.values))
	for key, value := range l.values {
		out[key] = value
	}
	return out, nil
}
