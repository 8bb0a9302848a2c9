package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dwijnand/scala-parser/internal/parsing"
)

// Result is what one file's processing produces: exactly enough to
// render its report line and decide the run's overall exit code.
type Result struct {
	Path     string
	Length   int
	Skipped  bool
	SkipWhy  string
	Passed   bool
	ParseErr error
}

// Options configures one discovery-and-parse run.
type Options struct {
	Roots       []string
	Extension   string
	Concurrency int
}

// Run walks every root, parses every matching file (bounded by
// Concurrency goroutines via errgroup, one Parser per file per the
// concurrency model's "no shared mutable state" invariant), and
// returns results sorted by path so the report is deterministic
// regardless of goroutine scheduling order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	paths, err := discover(opts.Roots, opts.Extension)
	if err != nil {
		return nil, fmt.Errorf("discovering source files: %w", err)
	}

	conc := opts.Concurrency
	if conc <= 0 {
		conc = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(conc)

	results := make([]Result, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			r, err := processFile(path)
			if err != nil {
				return fmt.Errorf("processing %s: %w", path, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func processFile(path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	outcome, negated, reason := Classify(path, content)
	if outcome == Skip {
		return Result{Path: path, Skipped: true, SkipWhy: reason}, nil
	}

	src := string(content)
	ok, perr := parsing.Parse(src)
	if negated {
		ok = !ok
		if ok {
			perr = nil
		}
	}
	return Result{
		Path:     path,
		Length:   len([]rune(src)),
		Passed:   ok,
		ParseErr: perr,
	}, nil
}

func discover(roots []string, ext string) ([]string, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	var (
		mu    sync.Mutex
		paths []string
	)
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(path, ext) {
				return nil
			}
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(paths)
	return paths, nil
}
