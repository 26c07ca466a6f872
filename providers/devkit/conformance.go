package devkit

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-media-exchange/core"
)

func ValidateTransportAdapterConformance(
	ctx context.Context,
	adapter core.TransportAdapter,
	request core.TransportRequest,
) error {
	if adapter == nil {
		return fmt.Errorf("devkit: transport adapter is required")
	}
	if strings.TrimSpace(adapter.Kind()) == "" {
		return fmt.Errorf("devkit: transport adapter kind is required")
	}
	_, err := adapter.Do(ctx, request)
	return err
}

// ValidateMediaProviderConformance checks the static half of the capability
// contract: identity, declared capabilities, album support matching the
// declaration, and operations left out of the declaration failing with an
// unsupported operation error. It only invokes operations the provider does
// not declare, so a fake transport with no scripts is enough.
func ValidateMediaProviderConformance(ctx context.Context, provider core.MediaProvider) error {
	if provider == nil {
		return fmt.Errorf("devkit: media provider is required")
	}
	if strings.TrimSpace(provider.ID()) == "" {
		return fmt.Errorf("devkit: media provider id is required")
	}
	capabilities := provider.Capabilities()
	for _, required := range []core.Operation{core.OperationIndex, core.OperationDownload} {
		if !slices.Contains(capabilities, required) {
			return fmt.Errorf("devkit: provider %q must offer %s", provider.ID(), required)
		}
	}

	_, isAlbumProvider := provider.(core.AlbumProvider)
	for _, op := range []core.Operation{core.OperationCreateAlbum, core.OperationGetAlbum, core.OperationListAlbums} {
		if slices.Contains(capabilities, op) != isAlbumProvider {
			return fmt.Errorf("devkit: provider %q album capability %s does not match implementation", provider.ID(), op)
		}
	}

	if !slices.Contains(capabilities, core.OperationUpload) {
		if _, err := provider.Upload(ctx, "conformance.bin", nil); !core.IsUnsupportedOperation(err) {
			return fmt.Errorf("devkit: provider %q upload should be unsupported, got %v", provider.ID(), err)
		}
	}
	if !slices.Contains(capabilities, core.OperationDelete) {
		if _, err := provider.Delete(ctx, "conformance", nil); !core.IsUnsupportedOperation(err) {
			return fmt.Errorf("devkit: provider %q delete should be unsupported, got %v", provider.ID(), err)
		}
	}
	return nil
}
