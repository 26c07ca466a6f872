package exchange

import (
	"github.com/goliatone/go-media-exchange/core"
	"github.com/goliatone/go-media-exchange/providers/google/photos"
	"github.com/goliatone/go-media-exchange/providers/meta/instagram"
)

func GooglePhotosProvider(credential string, cfg photos.Config) (core.MediaProvider, error) {
	return photos.New(credential, cfg)
}

func InstagramProvider(credential string, cfg instagram.Config) (core.MediaProvider, error) {
	return instagram.New(credential, cfg)
}
