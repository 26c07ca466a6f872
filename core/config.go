package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultPhotoLibraryBaseURL   = "https://photoslibrary.googleapis.com/v1"
	DefaultPhotoLibraryUploadURL = "https://photoslibrary.googleapis.com/v1/uploads"
	DefaultSocialContentBaseURL  = "https://graph.instagram.com"
)

type EndpointsConfig struct {
	PhotoLibraryBaseURL   string `koanf:"photo_library_base_url" mapstructure:"photo_library_base_url"`
	PhotoLibraryUploadURL string `koanf:"photo_library_upload_url" mapstructure:"photo_library_upload_url"`
	SocialContentBaseURL  string `koanf:"social_content_base_url" mapstructure:"social_content_base_url"`
}

type DownloadConfig struct {
	Directory                      string `koanf:"directory" mapstructure:"directory"`
	PhotoLibraryExtension          string `koanf:"photo_library_extension" mapstructure:"photo_library_extension"`
	SocialContentFallbackExtension string `koanf:"social_content_fallback_extension" mapstructure:"social_content_fallback_extension"`
}

// TransportConfig bounds outbound requests. A zero Timeout sets no deadline;
// requests then end with the caller's context.
type TransportConfig struct {
	Timeout              time.Duration `koanf:"timeout" mapstructure:"timeout"`
	MaxResponseBodyBytes int64         `koanf:"max_response_body_bytes" mapstructure:"max_response_body_bytes"`
}

type Config struct {
	ServiceName string          `koanf:"service_name" mapstructure:"service_name"`
	Endpoints   EndpointsConfig `koanf:"endpoints" mapstructure:"endpoints"`
	Download    DownloadConfig  `koanf:"download" mapstructure:"download"`
	Transport   TransportConfig `koanf:"transport" mapstructure:"transport"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: "media-exchange",
		Endpoints: EndpointsConfig{
			PhotoLibraryBaseURL:   DefaultPhotoLibraryBaseURL,
			PhotoLibraryUploadURL: DefaultPhotoLibraryUploadURL,
			SocialContentBaseURL:  DefaultSocialContentBaseURL,
		},
		Download: DownloadConfig{
			PhotoLibraryExtension:          "jpg",
			SocialContentFallbackExtension: "bin",
		},
		Transport: TransportConfig{
			MaxResponseBodyBytes: 512 << 20,
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	if strings.TrimSpace(c.Endpoints.PhotoLibraryBaseURL) == "" {
		return fmt.Errorf("core: endpoints.photo_library_base_url is required")
	}
	if strings.TrimSpace(c.Endpoints.PhotoLibraryUploadURL) == "" {
		return fmt.Errorf("core: endpoints.photo_library_upload_url is required")
	}
	if strings.TrimSpace(c.Endpoints.SocialContentBaseURL) == "" {
		return fmt.Errorf("core: endpoints.social_content_base_url is required")
	}
	if c.Transport.Timeout < 0 {
		return fmt.Errorf("core: transport.timeout must not be negative")
	}
	if c.Transport.MaxResponseBodyBytes < 0 {
		return fmt.Errorf("core: transport.max_response_body_bytes must not be negative")
	}
	return nil
}
