// Package producer turns a free-text business description into raw website
// content bundle output.
//
// Two interchangeable strategies satisfy the same contract (output parseable
// by the bundle package): a generative strategy that calls an external
// text-generation API, and a template strategy that returns one of a small
// set of hand-authored bundles by business type.
package producer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Producer produces raw bundle text from a business description. The output
// may be wrapped in markdown code fences; callers hand it to bundle.Parse.
type Producer interface {
	Produce(ctx context.Context, description string) (string, error)
}

// Source selects a content-generation strategy. It is a closed union; Build
// is the single dispatch site.
type Source interface {
	isSource()
}

// GenerativeSource produces content from a free-text description via the
// external text-generation API.
type GenerativeSource struct{}

// TemplateSource produces content from the hand-authored bundles; the
// description passed to Produce selects the business type.
type TemplateSource struct{}

func (GenerativeSource) isSource() {}
func (TemplateSource) isSource()   {}

// SourceFor maps a configured strategy name to its Source variant.
func SourceFor(strategy string) (Source, error) {
	switch strategy {
	case "generative":
		return GenerativeSource{}, nil
	case "template":
		return TemplateSource{}, nil
	default:
		return nil, fmt.Errorf("unknown producer strategy %q", strategy)
	}
}

// Build constructs the producer for a source. cfg is only consulted for the
// generative variant.
func Build(src Source, cfg Config, logger *zap.Logger) (Producer, error) {
	switch src.(type) {
	case TemplateSource:
		return NewTemplate(), nil
	case GenerativeSource:
		return NewGenerative(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown producer source %T", src)
	}
}
