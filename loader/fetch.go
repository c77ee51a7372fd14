package loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/h2non/filetype"
	"github.com/npillmayer/pwss/style"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Asset is a resource fetched through a loader.
type Asset struct {
	Resource style.Resource
	Data     []byte
	MIME     string // sniffed from Data, empty if unknown
}

// IsImage reports whether the asset's content looks like an image.
func (a Asset) IsImage() bool {
	return filetype.IsImage(a.Data)
}

// IsFont reports whether the asset's content looks like a font.
func (a Asset) IsFont() bool {
	return filetype.IsFont(a.Data)
}

// MaxParallel limits the number of concurrent loads of FetchAll.
var MaxParallel = 8

// FetchAll loads resources concurrently. It returns the assets loaded
// successfully, in the order of resources, and all failures combined into
// one error. A failing resource does not stop the others from loading.
func FetchAll(ctx context.Context, l Loader, resources []style.Resource) ([]Asset, error) {
	assets := make([]Asset, len(resources))
	loaded := make([]bool, len(resources))
	var mu sync.Mutex
	var errs error
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxParallel)
	for i, r := range resources {
		if r == style.NoResource {
			continue
		}
		g.Go(func() error {
			data, err := l.Load(ctx, string(r))
			if err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("resource %s: %w", r, err))
				mu.Unlock()
				return nil
			}
			a := Asset{Resource: r, Data: data}
			if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
				a.MIME = kind.MIME.Value
			}
			assets[i], loaded[i] = a, true
			return nil
		})
	}
	_ = g.Wait() // workers report through errs
	var result []Asset
	for i, ok := range loaded {
		if ok {
			result = append(result, assets[i])
		}
	}
	tracer().Infof("fetched %d of %d resources", len(result), len(resources))
	return result, errs
}
