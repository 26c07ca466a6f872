package photos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-media-exchange/core"
)

const ProviderID = "google_photos"

const (
	HeaderUploadFileName = "X-Goog-Upload-File-Name"
	HeaderUploadProtocol = "X-Goog-Upload-Protocol"
	UploadProtocolRaw    = "raw"

	// DownloadSuffix asks the media CDN for the original bytes.
	DownloadSuffix = "=d"

	FieldBaseURL = "baseUrl"
)

type Config struct {
	BaseURL          string
	UploadURL        string
	DownloadDir      string
	DefaultExtension string
	REST             core.TransportAdapter
	File             core.TransportAdapter
	Logger           core.Logger
}

func DefaultConfig() Config {
	return Config{
		BaseURL:          core.DefaultPhotoLibraryBaseURL,
		UploadURL:        core.DefaultPhotoLibraryUploadURL,
		DefaultExtension: "jpg",
	}
}

// ConfigFromEnv maps the service level environment onto provider config.
func ConfigFromEnv(env core.ProviderEnv) Config {
	return Config{
		BaseURL:          env.Config.Endpoints.PhotoLibraryBaseURL,
		UploadURL:        env.Config.Endpoints.PhotoLibraryUploadURL,
		DownloadDir:      env.Config.Download.Directory,
		DefaultExtension: env.Config.Download.PhotoLibraryExtension,
		REST:             env.REST,
		File:             env.File,
		Logger:           env.Logger,
	}
}

// Provider talks to the photo library API. It is bound to one credential for
// its lifetime and keeps no state between calls.
type Provider struct {
	credential string
	baseURL    string
	uploadURL  string
	downloadTo string
	extension  string
	headers    map[string]string
	rest       core.TransportAdapter
	file       core.TransportAdapter
	logger     core.Logger
}

func New(credential string, cfg Config) (*Provider, error) {
	defaults := DefaultConfig()
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaults.BaseURL
	}
	uploadURL := strings.TrimSpace(cfg.UploadURL)
	if uploadURL == "" {
		uploadURL = baseURL + "/uploads"
	}
	extension := strings.TrimSpace(cfg.DefaultExtension)
	if extension == "" {
		extension = defaults.DefaultExtension
	}
	if cfg.REST == nil {
		return nil, core.InternalError("providers/google/photos: rest transport is required")
	}
	file := cfg.File
	if file == nil {
		file = cfg.REST
	}

	return &Provider{
		credential: credential,
		baseURL:    baseURL,
		uploadURL:  uploadURL,
		downloadTo: strings.TrimSpace(cfg.DownloadDir),
		extension:  extension,
		headers: map[string]string{
			"Authorization": "Bearer " + credential,
			"Content-Type":  "application/json",
		},
		rest:   cfg.REST,
		file:   file,
		logger: glog.Ensure(cfg.Logger),
	}, nil
}

// Factory adapts New to the core registry.
func Factory(credential string, env core.ProviderEnv) (core.MediaProvider, error) {
	return New(credential, ConfigFromEnv(env))
}

func (*Provider) ID() string {
	return ProviderID
}

func (*Provider) Capabilities() []core.Operation {
	return []core.Operation{
		core.OperationIndex,
		core.OperationUpload,
		core.OperationDownload,
		core.OperationDelete,
		core.OperationCreateAlbum,
		core.OperationGetAlbum,
		core.OperationListAlbums,
	}
}

// Authenticate is local only: the credential rides on every request.
func (p *Provider) Authenticate(context.Context) error {
	if strings.TrimSpace(p.credential) == "" {
		return core.BadInput("credential", "providers/google/photos: access token is required")
	}
	return nil
}

func (p *Provider) Index(ctx context.Context, params core.Params) (core.Result, error) {
	return p.getJSON(ctx, core.OperationIndex, p.baseURL+"/mediaItems", params)
}

// Upload runs the two phase flow: raw bytes to the uploads endpoint, then
// batchCreate with the returned token. A failed batchCreate leaves the raw
// upload orphaned; nothing is rolled back.
func (p *Provider) Upload(ctx context.Context, filePath string, params core.Params) (core.Result, error) {
	data, err := core.ReadSource(filePath)
	if err != nil {
		return nil, err
	}

	uploadHeaders := map[string]string{
		"Authorization":      p.headers["Authorization"],
		"Content-Type":       "application/octet-stream",
		HeaderUploadFileName: filepath.Base(filePath),
		HeaderUploadProtocol: UploadProtocolRaw,
	}
	res, err := p.file.Do(ctx, core.TransportRequest{
		Method:  http.MethodPost,
		URL:     p.uploadURL,
		Headers: uploadHeaders,
		Body:    data,
	})
	if err != nil {
		return nil, err
	}
	if err := core.ExpectOK(ProviderID, core.OperationUpload, res); err != nil {
		return nil, err
	}
	uploadToken := strings.TrimSpace(string(res.Body))
	p.logger.Debug("raw upload accepted", "provider_id", ProviderID, "bytes", len(data))

	description, _ := params.String(core.ParamDescription)
	payload, err := json.Marshal(batchCreateRequest{
		NewMediaItems: []newMediaItem{{
			Description:     description,
			SimpleMediaItem: simpleMediaItem{UploadToken: uploadToken},
		}},
	})
	if err != nil {
		return nil, core.InternalError("providers/google/photos: encode batch create payload")
	}
	return p.postJSON(ctx, core.OperationUpload, p.baseURL+"/mediaItems:batchCreate", payload)
}

func (p *Provider) Download(ctx context.Context, itemID string, params core.Params) (string, error) {
	fileName, err := core.ResolveDownloadPath(params, p.downloadTo, itemID, p.extension)
	if err != nil {
		return "", err
	}
	descriptor, err := p.getJSON(ctx, core.OperationDownload, p.itemURL(itemID), nil)
	if err != nil {
		return "", err
	}
	baseURL, ok := core.StringField(descriptor, FieldBaseURL)
	if !ok {
		return "", core.MissingField(ProviderID, core.OperationDownload, FieldBaseURL)
	}

	// Download URLs are pre-authorized; the bearer header is not sent.
	res, err := p.rest.Do(ctx, core.TransportRequest{
		Method: http.MethodGet,
		URL:    baseURL + DownloadSuffix,
	})
	if err != nil {
		return "", err
	}
	if err := core.ExpectOK(ProviderID, core.OperationDownload, res); err != nil {
		return "", err
	}

	if err := core.WriteDestination(fileName, res.Body); err != nil {
		return "", err
	}
	return fileName, nil
}

func (p *Provider) Delete(ctx context.Context, itemID string, _ core.Params) (core.Result, error) {
	res, err := p.rest.Do(ctx, core.TransportRequest{
		Method:  http.MethodDelete,
		URL:     p.itemURL(itemID),
		Headers: p.requestHeaders(),
	})
	if err != nil {
		return nil, err
	}
	return core.DecodeResult(ProviderID, core.OperationDelete, res)
}

func (p *Provider) CreateAlbum(ctx context.Context, title string, _ core.Params) (core.Result, error) {
	payload, err := json.Marshal(createAlbumRequest{Album: albumInput{Title: title}})
	if err != nil {
		return nil, core.InternalError("providers/google/photos: encode album payload")
	}
	return p.postJSON(ctx, core.OperationCreateAlbum, p.baseURL+"/albums", payload)
}

func (p *Provider) GetAlbum(ctx context.Context, albumID string, params core.Params) (core.Result, error) {
	return p.getJSON(ctx, core.OperationGetAlbum, p.baseURL+"/albums/"+url.PathEscape(albumID), params)
}

func (p *Provider) ListAlbums(ctx context.Context, params core.Params) (core.Result, error) {
	return p.getJSON(ctx, core.OperationListAlbums, p.baseURL+"/albums", params)
}

func (p *Provider) getJSON(ctx context.Context, operation core.Operation, endpoint string, params core.Params) (core.Result, error) {
	res, err := p.rest.Do(ctx, core.TransportRequest{
		Method:  http.MethodGet,
		URL:     endpoint,
		Headers: p.requestHeaders(),
		Query:   params.Query(),
	})
	if err != nil {
		return nil, err
	}
	return core.DecodeResult(ProviderID, operation, res)
}

func (p *Provider) postJSON(ctx context.Context, operation core.Operation, endpoint string, payload []byte) (core.Result, error) {
	res, err := p.rest.Do(ctx, core.TransportRequest{
		Method:  http.MethodPost,
		URL:     endpoint,
		Headers: p.requestHeaders(),
		Body:    payload,
	})
	if err != nil {
		return nil, err
	}
	return core.DecodeResult(ProviderID, operation, res)
}

func (p *Provider) itemURL(itemID string) string {
	return p.baseURL + "/mediaItems/" + url.PathEscape(itemID)
}

func (p *Provider) requestHeaders() map[string]string {
	headers := make(map[string]string, len(p.headers))
	for key, value := range p.headers {
		headers[key] = value
	}
	return headers
}

type batchCreateRequest struct {
	NewMediaItems []newMediaItem `json:"newMediaItems"`
}

type newMediaItem struct {
	Description     string          `json:"description"`
	SimpleMediaItem simpleMediaItem `json:"simpleMediaItem"`
}

type simpleMediaItem struct {
	UploadToken string `json:"uploadToken"`
}

type createAlbumRequest struct {
	Album albumInput `json:"album"`
}

type albumInput struct {
	Title string `json:"title"`
}

var (
	_ core.MediaProvider = (*Provider)(nil)
	_ core.AlbumProvider = (*Provider)(nil)
)
