package config

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/meow/internal/logger"
)

type configBuilder struct {
	layers []*layer
	err    error

	log *logger.Logger
}

func newConfigBuilder(ctx context.Context) *configBuilder {
	return &configBuilder{
		layers: make([]*layer, 0, 4),
		log:    logger.FromContext(ctx),
	}
}

// build merges the collected layers in order, later layers winning. Pointer
// fields are compared without dereferencing, so an explicit zero in a higher
// layer replaces a non-zero value below it.
func (b *configBuilder) build() (Config, error) {
	if b.err != nil {
		return Config{}, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(layer)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return Config{}, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged.resolve(), nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.layers = append(b.layers, layerFromConfig(Defaults()))
	return b
}

func (b *configBuilder) withFiles(paths ...string) *configBuilder {
	for _, path := range paths {
		fileLayer, found, err := parseJSON(path)
		if err != nil {
			b.err = errors.Join(b.err, err)
			continue
		}
		if !found {
			b.log.Debug().Str("file", path).Msg("config file not found, skipping")
			continue
		}

		b.log.Debug().Str("file", path).Msg("config file loaded")
		b.layers = append(b.layers, fileLayer)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envLayer := &layer{}
	if err := parseEnv(envLayer); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envLayer)
	return b
}
