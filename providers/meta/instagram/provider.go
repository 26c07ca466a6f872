package instagram

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-media-exchange/core"
	meta "github.com/goliatone/go-media-exchange/providers/meta/common"
)

const ProviderID = "instagram"

type Config struct {
	BaseURL           string
	DownloadDir       string
	FallbackExtension string
	REST              core.TransportAdapter
	Logger            core.Logger
}

func DefaultConfig() Config {
	return Config{
		BaseURL:           meta.InstagramGraphBaseURL,
		FallbackExtension: "bin",
	}
}

func ConfigFromEnv(env core.ProviderEnv) Config {
	return Config{
		BaseURL:           env.Config.Endpoints.SocialContentBaseURL,
		DownloadDir:       env.Config.Download.Directory,
		FallbackExtension: env.Config.Download.SocialContentFallbackExtension,
		REST:              env.REST,
		Logger:            env.Logger,
	}
}

// Provider reads media through the Instagram Graph API. The API offers no
// ingestion or deletion for this credential type, so Upload and Delete fail
// without issuing requests. Albums are not offered.
type Provider struct {
	credential string
	baseURL    string
	downloadTo string
	fallback   string
	headers    map[string]string
	rest       core.TransportAdapter
	logger     core.Logger
}

func New(credential string, cfg Config) (*Provider, error) {
	defaults := DefaultConfig()
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaults.BaseURL
	}
	fallback := strings.TrimSpace(cfg.FallbackExtension)
	if fallback == "" {
		fallback = defaults.FallbackExtension
	}
	if cfg.REST == nil {
		return nil, core.InternalError("providers/meta/instagram: rest transport is required")
	}
	return &Provider{
		credential: credential,
		baseURL:    baseURL,
		downloadTo: strings.TrimSpace(cfg.DownloadDir),
		fallback:   fallback,
		headers:    meta.BearerHeaders(credential),
		rest:       cfg.REST,
		logger:     glog.Ensure(cfg.Logger),
	}, nil
}

func Factory(credential string, env core.ProviderEnv) (core.MediaProvider, error) {
	return New(credential, ConfigFromEnv(env))
}

func (*Provider) ID() string {
	return ProviderID
}

func (*Provider) Capabilities() []core.Operation {
	return []core.Operation{core.OperationIndex, core.OperationDownload}
}

func (p *Provider) Authenticate(context.Context) error {
	if strings.TrimSpace(p.credential) == "" {
		return core.BadInput("credential", "providers/meta/instagram: access token is required")
	}
	return nil
}

func (p *Provider) Index(ctx context.Context, params core.Params) (core.Result, error) {
	res, err := p.rest.Do(ctx, core.TransportRequest{
		Method:  http.MethodGet,
		URL:     p.baseURL + "/me/media",
		Headers: p.requestHeaders(),
		Query:   params.Query(),
	})
	if err != nil {
		return nil, err
	}
	return core.DecodeResult(ProviderID, core.OperationIndex, res)
}

func (*Provider) Upload(context.Context, string, core.Params) (core.Result, error) {
	return nil, core.UnsupportedOperation(ProviderID, core.OperationUpload)
}

func (p *Provider) Download(ctx context.Context, itemID string, params core.Params) (string, error) {
	// The extension is only known after the descriptor fetch; reject unusable
	// item ids before any request goes out.
	if _, err := core.ResolveDownloadPath(params, p.downloadTo, itemID, ""); err != nil {
		return "", err
	}
	res, err := p.rest.Do(ctx, core.TransportRequest{
		Method:  http.MethodGet,
		URL:     p.baseURL + "/" + url.PathEscape(itemID),
		Headers: p.requestHeaders(),
	})
	if err != nil {
		return "", err
	}
	descriptor, err := core.DecodeResult(ProviderID, core.OperationDownload, res)
	if err != nil {
		return "", err
	}
	mediaURL, ok := meta.MediaURL(descriptor)
	if !ok {
		return "", core.MissingField(ProviderID, core.OperationDownload, meta.FieldMediaURL)
	}

	media, err := p.rest.Do(ctx, core.TransportRequest{
		Method: http.MethodGet,
		URL:    mediaURL,
	})
	if err != nil {
		return "", err
	}
	if err := core.ExpectOK(ProviderID, core.OperationDownload, media); err != nil {
		return "", err
	}

	extension := core.ExtensionFromURL(mediaURL, p.fallback)
	fileName, err := core.ResolveDownloadPath(params, p.downloadTo, itemID, extension)
	if err != nil {
		return "", err
	}
	if err := core.WriteDestination(fileName, media.Body); err != nil {
		return "", err
	}
	p.logger.Debug("media downloaded", "provider_id", ProviderID, "item_id", itemID, "bytes", len(media.Body))
	return fileName, nil
}

func (*Provider) Delete(context.Context, string, core.Params) (core.Result, error) {
	return nil, core.UnsupportedOperation(ProviderID, core.OperationDelete)
}

func (p *Provider) requestHeaders() map[string]string {
	headers := make(map[string]string, len(p.headers))
	for key, value := range p.headers {
		headers[key] = value
	}
	return headers
}

var _ core.MediaProvider = (*Provider)(nil)
