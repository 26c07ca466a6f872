package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

const (
	TransportKindREST = "rest"
	TransportKindFile = "file"
)

// Service selects a provider adapter for a credential and invokes one
// operation on it. It holds no per-credential state: every Open builds a new
// adapter.
type Service struct {
	config            Config
	logger            Logger
	loggerProvider    LoggerProvider
	metricsRecorder   MetricsRecorder
	configProvider    ConfigProvider
	optionsResolver   OptionsResolver
	transportResolver TransportResolver
	registry          Registry
	operationIDs      func() string
}

type ServiceDependencies struct {
	Logger            Logger
	LoggerProvider    LoggerProvider
	MetricsRecorder   MetricsRecorder
	ConfigProvider    ConfigProvider
	OptionsResolver   OptionsResolver
	TransportResolver TransportResolver
	Registry          Registry
}

func NewService(cfg Config, opts ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve(defaultLoggerName, builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)

	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.registry == nil {
		builder.registry = NewProviderRegistry()
	}
	if builder.operationIDs == nil {
		builder.operationIDs = newOperationID
	}
	if builder.transportResolver == nil {
		return nil, InternalError("core: transport resolver is required")
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, fmt.Errorf("core: load config: %w", err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, fmt.Errorf("core: resolve config: %w", err)
	}

	return &Service{
		config:            finalConfig,
		logger:            logger,
		loggerProvider:    provider,
		metricsRecorder:   builder.metricsRecorder,
		configProvider:    builder.configProvider,
		optionsResolver:   builder.optionsResolver,
		transportResolver: builder.transportResolver,
		registry:          builder.registry,
		operationIDs:      builder.operationIDs,
	}, nil
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) Dependencies() ServiceDependencies {
	if s == nil {
		return ServiceDependencies{}
	}
	return ServiceDependencies{
		Logger:            s.logger,
		LoggerProvider:    s.loggerProvider,
		MetricsRecorder:   s.metricsRecorder,
		ConfigProvider:    s.configProvider,
		OptionsResolver:   s.optionsResolver,
		TransportResolver: s.transportResolver,
		Registry:          s.registry,
	}
}

func (s *Service) RegisterProvider(providerID string, factory ProviderFactory) error {
	if s == nil || s.registry == nil {
		return InternalError("core: service registry is not configured")
	}
	return s.registry.Register(providerID, factory)
}

func (s *Service) Providers() []string {
	if s == nil || s.registry == nil {
		return []string{}
	}
	return s.registry.List()
}

// Open builds a new adapter bound to credential. Switching provider or
// credential always means calling Open again.
func (s *Service) Open(providerID string, credential string) (MediaProvider, error) {
	if s == nil || s.registry == nil {
		return nil, InternalError("core: service registry is not configured")
	}
	providerID = normalizeProviderID(providerID)
	if providerID == "" {
		return nil, BadInput("provider_id", "core: provider id is required")
	}
	factory, ok := s.registry.Get(providerID)
	if !ok {
		return nil, ProviderNotFound(providerID)
	}
	env, err := s.providerEnv(providerID)
	if err != nil {
		return nil, err
	}
	provider, err := factory(credential, env)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, InternalError(fmt.Sprintf("core: factory for %q returned nil provider", providerID))
	}
	return provider, nil
}

func (s *Service) providerEnv(providerID string) (ProviderEnv, error) {
	transportConfig := map[string]any{
		"timeout":                 s.config.Transport.Timeout,
		"max_response_body_bytes": s.config.Transport.MaxResponseBodyBytes,
	}
	rest, err := s.transportResolver.Build(TransportKindREST, transportConfig)
	if err != nil {
		return ProviderEnv{}, err
	}
	file, err := s.transportResolver.Build(TransportKindFile, transportConfig)
	if err != nil {
		return ProviderEnv{}, err
	}
	logger := s.logger
	if s.loggerProvider != nil {
		if named := s.loggerProvider.GetLogger(defaultLoggerName + "." + providerID); named != nil {
			logger = named
		}
	}
	return ProviderEnv{
		Config: s.config,
		REST:   rest,
		File:   file,
		Logger: glog.Ensure(logger),
	}, nil
}

// Invoke opens the requested provider and runs a single operation on it.
func (s *Service) Invoke(ctx context.Context, req InvokeRequest) (result InvokeResult, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	startedAt := time.Now().UTC()
	operationID := ""
	if s != nil && s.operationIDs != nil {
		operationID = s.operationIDs()
	}
	fields := map[string]any{
		"operation_id": operationID,
		"provider_id":  normalizeProviderID(req.ProviderID),
		"operation":    req.Operation.String(),
	}
	if req.ItemID != "" {
		fields["item_id"] = req.ItemID
	}
	defer func() {
		if result.FilePath != "" {
			fields["file_path"] = result.FilePath
		}
		s.observeOperation(ctx, startedAt, "invoke_"+req.Operation.String(), err, fields)
	}()

	if s == nil {
		return InvokeResult{}, InternalError("core: service is nil")
	}
	provider, err := s.Open(req.ProviderID, req.Credential)
	if err != nil {
		return InvokeResult{}, err
	}

	result = InvokeResult{
		OperationID: operationID,
		ProviderID:  provider.ID(),
		Operation:   req.Operation,
	}
	if !Supports(provider, req.Operation) {
		if !isKnownOperation(req.Operation) {
			return result, BadInput("operation", fmt.Sprintf("core: unknown operation %q", req.Operation))
		}
		return result, UnsupportedOperation(provider.ID(), req.Operation)
	}
	params := req.Params.Clone()

	switch req.Operation {
	case OperationIndex:
		result.Result, err = provider.Index(ctx, params)
	case OperationUpload:
		if strings.TrimSpace(req.FilePath) == "" {
			return result, BadInput("file_path", "core: upload requires a file path")
		}
		result.Result, err = provider.Upload(ctx, req.FilePath, params)
	case OperationDownload:
		if strings.TrimSpace(req.ItemID) == "" {
			return result, BadInput("item_id", "core: download requires an item id")
		}
		result.FilePath, err = provider.Download(ctx, req.ItemID, params)
	case OperationDelete:
		if strings.TrimSpace(req.ItemID) == "" {
			return result, BadInput("item_id", "core: delete requires an item id")
		}
		result.Result, err = provider.Delete(ctx, req.ItemID, params)
	case OperationCreateAlbum, OperationGetAlbum, OperationListAlbums:
		albums, ok := provider.(AlbumProvider)
		if !ok {
			return result, UnsupportedOperation(provider.ID(), req.Operation)
		}
		result.Result, err = invokeAlbumOperation(ctx, albums, req, params)
	default:
		return result, BadInput("operation", fmt.Sprintf("core: unknown operation %q", req.Operation))
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

func invokeAlbumOperation(ctx context.Context, albums AlbumProvider, req InvokeRequest, params Params) (Result, error) {
	switch req.Operation {
	case OperationCreateAlbum:
		if strings.TrimSpace(req.Title) == "" {
			return nil, BadInput("title", "core: create album requires a title")
		}
		return albums.CreateAlbum(ctx, req.Title, params)
	case OperationGetAlbum:
		if strings.TrimSpace(req.ItemID) == "" {
			return nil, BadInput("item_id", "core: get album requires an album id")
		}
		return albums.GetAlbum(ctx, req.ItemID, params)
	default:
		return albums.ListAlbums(ctx, params)
	}
}

func isKnownOperation(operation Operation) bool {
	switch operation {
	case OperationIndex, OperationUpload, OperationDownload, OperationDelete,
		OperationCreateAlbum, OperationGetAlbum, OperationListAlbums:
		return true
	}
	return false
}

// Supports reports whether provider offers operation.
func Supports(provider MediaProvider, operation Operation) bool {
	if provider == nil {
		return false
	}
	for _, candidate := range provider.Capabilities() {
		if candidate == operation {
			return true
		}
	}
	return false
}
