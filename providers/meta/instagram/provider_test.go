package instagram

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goliatone/go-media-exchange/core"
	"github.com/goliatone/go-media-exchange/providers/devkit"
	"github.com/goliatone/go-media-exchange/transport"
)

func newFakeProvider(t *testing.T, fake *devkit.FakeTransportAdapter, dir string) *Provider {
	t.Helper()
	provider, err := Factory("tok", devkit.NewProviderEnv(fake, nil, dir))
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return provider.(*Provider)
}

func TestProvider_IndexListsOwnMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/me/media" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("fields"); got != "id,caption" {
			t.Errorf("expected fields query, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("expected bearer header, got %q", got)
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"abc123"}]}`))
	}))
	defer server.Close()

	provider, err := New("tok", Config{BaseURL: server.URL + "/", REST: transport.NewRESTAdapter(server.Client())})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	result, err := provider.Index(context.Background(), core.Params{"fields": "id,caption"})
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if !reflect.DeepEqual(result, core.Result{"data": []any{map[string]any{"id": "abc123"}}}) {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestProvider_IndexNonOKStatus(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("rest", devkit.JSON(401, `{"error":{"message":"expired"}}`))
	_, err := newFakeProvider(t, fake, "").Index(context.Background(), nil)
	status, body, ok := core.AsProviderError(err)
	if !ok || status != 401 || body != `{"error":{"message":"expired"}}` {
		t.Fatalf("expected provider error with status and body, got %v", err)
	}
}

func TestProvider_UploadAndDeleteAreUnsupported(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("rest")
	provider := newFakeProvider(t, fake, "")

	if _, err := provider.Upload(context.Background(), "/does/not/matter.jpg", nil); !core.IsUnsupportedOperation(err) {
		t.Fatalf("expected unsupported upload, got %v", err)
	}
	if _, err := provider.Delete(context.Background(), "abc123", core.Params{"x": 1}); !core.IsUnsupportedOperation(err) {
		t.Fatalf("expected unsupported delete, got %v", err)
	}
	if fake.RequestCount() != 0 {
		t.Fatalf("expected zero requests, got %d", fake.RequestCount())
	}
}

func TestProvider_DownloadInfersExtensionFromMediaURL(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/abc123":
			_, _ = w.Write([]byte(`{"id":"abc123","media_url":"` + server.URL + `/cdn/photo.png?sig=1"}`))
		case "/cdn/photo.png":
			if r.Header.Get("Authorization") != "" {
				t.Errorf("expected media fetch without authorization header")
			}
			_, _ = w.Write(content)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	provider, err := New("tok", Config{
		BaseURL:     server.URL,
		DownloadDir: dir,
		REST:        transport.NewRESTAdapter(server.Client()),
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	fileName, err := provider.Download(context.Background(), "abc123", nil)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if fileName != filepath.Join(dir, "abc123.png") {
		t.Fatalf("expected abc123.png, got %q", fileName)
	}
	written, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if !bytes.Equal(written, content) {
		t.Fatalf("expected byte exact download, got %v", written)
	}
}

func TestProvider_DownloadFallsBackWhenURLHasNoExtension(t *testing.T) {
	dir := t.TempDir()
	fake := devkit.NewFakeTransportAdapter("rest",
		devkit.JSON(200, `{"media_url":"https://cdn.example.test/v/stream"}`),
		devkit.Bytes(200, []byte("video")),
	)
	fileName, err := newFakeProvider(t, fake, dir).Download(context.Background(), "abc123", nil)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if fileName != filepath.Join(dir, "abc123.bin") {
		t.Fatalf("expected fallback extension, got %q", fileName)
	}
	requests := fake.Requests()
	if requests[0].URL != core.DefaultSocialContentBaseURL+"/abc123" {
		t.Fatalf("unexpected descriptor url %q", requests[0].URL)
	}
	if len(requests[1].Headers) != 0 {
		t.Fatalf("expected media request without headers, got %#v", requests[1].Headers)
	}
}

func TestProvider_DownloadMediaFetchFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	fake := devkit.NewFakeTransportAdapter("rest",
		devkit.JSON(200, `{"media_url":"https://cdn.example.test/p.jpg"}`),
		devkit.Bytes(403, []byte("URL signature expired")),
	)
	_, err := newFakeProvider(t, fake, dir).Download(context.Background(), "abc123", nil)
	status, body, ok := core.AsProviderError(err)
	if !ok || status != 403 || body != "URL signature expired" {
		t.Fatalf("expected media fetch provider error, got %v", err)
	}
	if fake.RequestCount() != 2 {
		t.Fatalf("expected descriptor and media requests, got %d", fake.RequestCount())
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, got %d entries", len(entries))
	}
}

func TestProvider_DownloadRejectsItemIDEscapingDirectory(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("rest",
		devkit.JSON(200, `{"media_url":"https://cdn.example.test/p.jpg"}`),
		devkit.Bytes(200, []byte("jpeg")),
	)
	_, err := newFakeProvider(t, fake, t.TempDir()).Download(context.Background(), "../escaped", nil)
	if !core.IsBadInput(err) {
		t.Fatalf("expected bad input, got %v", err)
	}
	if fake.RequestCount() != 0 {
		t.Fatalf("expected no requests, got %d", fake.RequestCount())
	}
}

func TestProvider_DownloadMissingMediaURL(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("rest", devkit.JSON(200, `{"id":"abc123"}`))
	_, err := newFakeProvider(t, fake, t.TempDir()).Download(context.Background(), "abc123", nil)
	if !core.IsMissingField(err) {
		t.Fatalf("expected missing field error, got %v", err)
	}
	if fake.RequestCount() != 1 {
		t.Fatalf("expected one request, got %d", fake.RequestCount())
	}
}

func TestProvider_DownloadUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocker, err := devkit.WriteMediaFixture(dir, "blocker", []byte("file"))
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	fake := devkit.NewFakeTransportAdapter("rest",
		devkit.JSON(200, `{"media_url":"https://cdn.example.test/p.jpg"}`),
		devkit.Bytes(200, []byte("jpeg")),
	)
	_, err = newFakeProvider(t, fake, dir).Download(context.Background(), "abc123", core.Params{
		core.ParamFileName: filepath.Join(blocker, "inside.jpg"),
	})
	if !core.IsLocalIOError(err) {
		t.Fatalf("expected local io error, got %v", err)
	}
}

func TestProvider_Conformance(t *testing.T) {
	provider := newFakeProvider(t, devkit.NewFakeTransportAdapter("rest"), "")
	if err := devkit.ValidateMediaProviderConformance(context.Background(), provider); err != nil {
		t.Fatalf("conformance: %v", err)
	}
	if _, ok := any(provider).(core.AlbumProvider); ok {
		t.Fatalf("expected no album support")
	}
}
