package publisher

import (
	"context"
	"errors"

	"github.com/kasuboski/reelinfo/pkg/extract"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"go.uber.org/zap"
)

// Publisher receives every extraction result, one call per processed path
type Publisher interface {
	Publish(ctx context.Context, result extract.Result) error
}

// Func adapts a function to a Publisher
type Func func(ctx context.Context, result extract.Result) error

func (f Func) Publish(ctx context.Context, result extract.Result) error {
	return f(ctx, result)
}

// Multi publishes to every publisher in order. All publishers are called even when
// one fails and the errors are joined.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, result extract.Result) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Log writes each result to the logger found in the context
type Log struct{}

func (Log) Publish(ctx context.Context, result extract.Result) error {
	log := logger.FromCtx(ctx)

	switch r := result.(type) {
	case extract.Parsed:
		log.Infow("extracted movie file info",
			"path", r.Path,
			"title", r.Title,
			zap.Intp("year", r.Year),
			zap.Stringp("source", r.Source),
			zap.Stringp("videoCodec", r.VideoCodec),
			zap.Stringp("audioCodec", r.AudioCodec),
			zap.Intp("diskNumber", r.DiskNumber),
			zap.Stringp("group", r.Group),
			"extension", r.Extension,
		)
	case extract.Unparsed:
		log.Infow("no pattern matched movie file", "path", r.Path)
	}

	return nil
}
