package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/npillmayer/pwss/engine"
	"github.com/npillmayer/pwss/internal/config"
	"github.com/npillmayer/pwss/loader"
	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/style/cascade"
	"github.com/npillmayer/pwss/style/cssom"
	"github.com/npillmayer/pwss/styledbg"
	"github.com/npillmayer/pwss/widgettree"
)

// newLoader serves stylesheets and resources from the configured root.
func newLoader(cfg *config.Config) loader.FS {
	return loader.FS{Root: cfg.Styles.Root}
}

func readSheet(ctx context.Context, cfg *config.Config, path string) (*cssom.StyleSheet, error) {
	data, err := newLoader(cfg).Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return cssom.Parse(string(data))
}

func readTree(path string) (*widgettree.Widget, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open widget tree: %w", err)
	}
	defer f.Close()
	return widgettree.ReadYAML(f)
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheet given")
	}
	var errs error
	for _, path := range cmd.Args().Slice() {
		sheet, err := readSheet(ctx, env.Cfg, path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		for _, d := range sheet.Diagnostics() {
			env.Log.Warn("Declaration ignored", zap.String("file", path), zap.Error(d))
		}
		env.Log.Info("Stylesheet checked", zap.String("file", path),
			zap.Int("rules", sheet.Len()), zap.Int("diagnostics", len(sheet.Diagnostics())))
	}
	return errs
}

func runDump(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	path := cmd.Args().First()
	if path == "" {
		return errors.New("no stylesheet given")
	}
	sheet, err := readSheet(ctx, env.Cfg, path)
	if err != nil {
		return err
	}
	fmt.Print(styledbg.PrintSheet(sheet))
	if !cmd.Bool("resources") {
		return nil
	}
	resources := sheet.Resources()
	slices.SortFunc(resources, func(a, b style.Resource) int {
		if natural.Less(string(a), string(b)) {
			return -1
		} else if natural.Less(string(b), string(a)) {
			return 1
		}
		return 0
	})
	if !env.Cfg.Styles.Prefetch {
		for _, r := range resources {
			fmt.Println(r)
		}
		return nil
	}
	loader.MaxParallel = env.Cfg.Styles.MaxParallel
	dir := filepath.Join(env.Cfg.Styles.Root, filepath.Dir(path))
	assets, err := loader.FetchAll(ctx, loader.FS{Root: dir}, resources)
	for _, a := range assets {
		mime := a.MIME
		if mime == "" {
			mime = "unknown"
		}
		fmt.Printf("%s\t%s\t%d bytes\n", a.Resource, mime, len(a.Data))
	}
	if err != nil {
		env.Log.Warn("Some resources could not be loaded", zap.Error(err))
	}
	return nil
}

func runResolve(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	path := cmd.Args().First()
	if path == "" {
		return errors.New("no stylesheet given")
	}
	root, err := readTree(cmd.String("tree"))
	if err != nil {
		return err
	}
	eng := engine.New(nil, engine.WithCapacity(env.Cfg.Styles.CacheCapacity), engine.WithLoader(newLoader(env.Cfg)))
	if _, err := eng.LoadFile(ctx, path); err != nil {
		return err
	}
	printTree(os.Stdout, env.Cfg, root, eng)
	if dot := cmd.String("dot"); dot != "" {
		f, err := os.Create(dot)
		if err != nil {
			return fmt.Errorf("unable to create GraphViz file: %w", err)
		}
		defer f.Close()
		if err := styledbg.ToGraphViz(root, eng, f); err != nil {
			return err
		}
	}
	stats := eng.Stats()
	env.Log.Debug("Styles resolved", zap.Uint64("version", stats.Version),
		zap.Int("entries", stats.Entries), zap.Uint64("hits", stats.Hits), zap.Uint64("misses", stats.Misses))
	return nil
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	path := cmd.Args().First()
	if path == "" {
		return errors.New("no stylesheet given")
	}
	root, err := readTree(cmd.String("tree"))
	if err != nil {
		return err
	}
	var eng *engine.Engine
	hook := func(version uint64, err error) {
		if err != nil {
			env.Log.Error("Stylesheet not reloaded, keeping previous version", zap.Error(err))
			return
		}
		env.Log.Info("Stylesheet reloaded", zap.Uint64("version", version))
		printTree(os.Stdout, env.Cfg, root, eng)
	}
	eng = engine.New(nil, engine.WithCapacity(env.Cfg.Styles.CacheCapacity),
		engine.WithLoader(newLoader(env.Cfg)), engine.WithReloadHook(hook))
	if _, err := eng.LoadFile(ctx, path); err != nil {
		return err
	}
	printTree(os.Stdout, env.Cfg, root, eng)
	err = eng.Watch(ctx, path)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printTree prints the styled tree, followed by a legend of color swatches
// if the terminal supports it.
func printTree(w io.Writer, cfg *config.Config, root *widgettree.Widget, styler styledbg.Styler) {
	fmt.Fprint(w, styledbg.PrintStyledTree(root, styler))
	if !cfg.Output.Swatches || !config.EnableColorOutput(os.Stdout) {
		return
	}
	var legend []string
	seen := make(map[style.Color]bool)
	root.Walk(func(wd *widgettree.Widget, _ int) {
		for _, c := range colors(styler.Style(wd)) {
			if !seen[c] {
				seen[c] = true
				legend = append(legend, swatch(c))
			}
		}
	})
	if len(legend) > 0 {
		fmt.Fprintln(w, strings.Join(legend, " "))
	}
}

func colors(rs *cascade.ResolvedStyle) []style.Color {
	var cs []style.Color
	for _, key := range rs.Keys() {
		v, _ := rs.Lookup(key)
		switch c := v.(type) {
		case style.Color:
			cs = append(cs, c)
		case style.Background:
			if c.Kind == style.BackgroundColor {
				cs = append(cs, c.Color)
			}
		}
	}
	return cs
}

func swatch(c style.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ") + " " + c.Hex()
}
