package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/pwss/loader"
	"github.com/npillmayer/pwss/style/cascade"
	"github.com/npillmayer/pwss/style/cssom"
	"github.com/npillmayer/pwss/style/selector"
)

// DefaultCapacity is the number of resolved styles an engine caches if not
// configured otherwise.
const DefaultCapacity = 4096

// generation pairs a stylesheet with the cache of styles resolved from it.
// Both are replaced together, never one without the other.
type generation struct {
	sheet *cssom.StyleSheet
	cache *styleCache
}

// Engine styles widgets from the stylesheet currently installed. It is safe
// for concurrent use: any number of goroutines may call Style while another
// one reloads the stylesheet. Every style returned has been computed from
// exactly one stylesheet version.
type Engine struct {
	current  atomic.Pointer[generation]
	capacity int
	loader   loader.Loader
	onReload func(version uint64, err error)
	hits     atomic.Uint64
	misses   atomic.Uint64
}

// Option configures an engine.
type Option func(*Engine)

// WithCapacity sets the maximum number of cached styles. A capacity of 0
// disables caching.
func WithCapacity(n int) Option {
	return func(e *Engine) {
		e.capacity = max(n, 0)
	}
}

// WithLoader sets the loader used by LoadFile and Watch. The default loads
// from the file system relative to the working directory.
func WithLoader(l loader.Loader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithReloadHook registers a function called after every reload attempt of
// Watch, with the new version or the error which kept the old one active.
func WithReloadHook(hook func(version uint64, err error)) Option {
	return func(e *Engine) {
		e.onReload = hook
	}
}

// New creates an engine for a stylesheet, which may be nil.
func New(sheet *cssom.StyleSheet, opts ...Option) *Engine {
	e := &Engine{capacity: DefaultCapacity, loader: loader.FS{}}
	for _, opt := range opts {
		opt(e)
	}
	e.Replace(sheet)
	return e
}

// Replace installs a stylesheet. Styles resolved from the previous one are
// dropped.
func (e *Engine) Replace(sheet *cssom.StyleSheet) {
	e.current.Store(&generation{sheet: sheet, cache: newStyleCache(e.capacity)})
	tracer().Infof("stylesheet v%d installed with %d rules", sheet.Version(), sheet.Len())
}

// Load parses a stylesheet and installs it. If parsing fails, the current
// stylesheet stays in effect and the *cssom.SyntaxError is returned.
// Declaration diagnostics do not prevent installation; they are returned
// by the stylesheet's Err method.
func (e *Engine) Load(source string) (*cssom.StyleSheet, error) {
	sheet, err := cssom.Parse(source)
	if err != nil {
		tracer().Errorf("stylesheet not loaded, keeping v%d: %v", e.Version(), err)
		return nil, err
	}
	e.Replace(sheet)
	return sheet, nil
}

// LoadFile reads a stylesheet through the engine's loader and installs it.
func (e *Engine) LoadFile(ctx context.Context, path string) (*cssom.StyleSheet, error) {
	data, err := e.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheet: %w", err)
	}
	sheet, err := e.Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// StyleSheet returns the stylesheet currently in effect.
func (e *Engine) StyleSheet() *cssom.StyleSheet {
	return e.current.Load().sheet
}

// Version returns the version of the stylesheet currently in effect.
func (e *Engine) Version() uint64 {
	return e.current.Load().sheet.Version()
}

// Style returns the resolved style for a widget. Widgets matched by the
// same rules share a single resolved style, which must not be modified.
func (e *Engine) Style(node selector.QueryNode) *cascade.ResolvedStyle {
	gen := e.current.Load()
	if node == nil {
		return cascade.Resolve(gen.sheet, nil)
	}
	fp := fingerprintOf(node)
	if rs, ok := gen.cache.get(fp); ok {
		e.hits.Add(1)
		return rs
	}
	e.misses.Add(1)
	return gen.cache.put(fp, cascade.Resolve(gen.sheet, node))
}

// Stats is a snapshot of an engine's cache statistics.
type Stats struct {
	Version uint64 // stylesheet version in effect
	Entries int    // styles cached for this version
	Hits    uint64 // over the lifetime of the engine
	Misses  uint64
}

// Stats reports cache statistics.
func (e *Engine) Stats() Stats {
	gen := e.current.Load()
	return Stats{
		Version: gen.sheet.Version(),
		Entries: gen.cache.len(),
		Hits:    e.hits.Load(),
		Misses:  e.misses.Load(),
	}
}

// Watch loads the stylesheet at path, then reloads it every time it
// changes, until ctx is done. The engine's loader has to implement
// loader.Watcher. An error of the initial load is returned; later errors
// keep the previous stylesheet in effect and are reported to the reload
// hook only. Watch returns ctx.Err() when ctx is done.
func (e *Engine) Watch(ctx context.Context, path string) error {
	w, ok := e.loader.(loader.Watcher)
	if !ok {
		return errors.New("loader cannot watch for changes")
	}
	if _, err := e.LoadFile(ctx, path); err != nil {
		return err
	}
	for {
		if err := w.Wait(ctx, path); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("watching %s: %w", path, err)
		}
		sheet, err := e.LoadFile(ctx, path)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			tracer().Errorf("reload of %s failed: %v", path, err)
		} else {
			tracer().Infof("reloaded %s as v%d", path, sheet.Version())
		}
		if e.onReload != nil {
			e.onReload(e.Version(), err)
		}
	}
}
