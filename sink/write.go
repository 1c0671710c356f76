package sink

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/javapoet/java"
)

// WriteFiles renders every file and writes it to s at its relative path.
// Files are rendered and written concurrently; the first failure cancels
// the remaining work and is returned.
func WriteFiles(ctx context.Context, s OutputSink, files []*java.JavaFile) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, f := range files {
		g.Go(func() error {
			content, err := f.Bytes()
			if err != nil {
				return errors.Wrapf(err, "render %s", f.RelativePath())
			}
			if err := s.WriteFile(ctx, f.RelativePath(), content); err != nil {
				return errors.Wrapf(err, "write %s", f.RelativePath())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Infof("wrote %d files", len(files))
	return nil
}
