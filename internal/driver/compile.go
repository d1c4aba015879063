// Package driver orchestrates a full compilation: loading schema files,
// lexing and parsing them in parallel, then consuming and resolving the
// declarations in input order.
package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"widl/internal/ast"
	"widl/internal/diag"
	"widl/internal/parser"
	"widl/internal/sema"
	"widl/internal/source"
)

// Options configures a compilation.
type Options struct {
	// MaxDiagnostics caps the merged diagnostic bag. Zero means a default.
	MaxDiagnostics int
	// Jobs limits parse parallelism. Zero means GOMAXPROCS.
	Jobs int
}

const defaultMaxDiagnostics = 64

// Result is the outcome of one compilation. Bag holds all diagnostics in
// input-file order; Session is populated up to the point of failure.
type Result struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	Session *sema.Session
}

type parsedFile struct {
	file *ast.File
	bag  *diag.Bag
	err  error
}

// Compile loads the named schema files and runs the full pipeline. The
// returned error is the first failure; Result.Bag carries the diagnostics
// either way.
func Compile(ctx context.Context, paths []string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	ids := make([]source.FileID, 0, len(paths))
	for _, path := range paths {
		id, err := fs.Load(path)
		if err != nil {
			return &Result{FileSet: fs, Bag: newBag(opts)}, fmt.Errorf("load %s: %w", path, err)
		}
		ids = append(ids, id)
	}
	return compileSet(ctx, fs, ids, opts)
}

// CompileSources runs the pipeline over in-memory schemas, keyed by name.
// Order is the declaration order of the unit.
func CompileSources(ctx context.Context, names []string, contents [][]byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	ids := make([]source.FileID, 0, len(names))
	for i, name := range names {
		ids = append(ids, fs.AddVirtual(name, contents[i]))
	}
	return compileSet(ctx, fs, ids, opts)
}

func compileSet(ctx context.Context, fs *source.FileSet, ids []source.FileID, opts Options) (*Result, error) {
	bag := newBag(opts)
	result := &Result{FileSet: fs, Bag: bag}

	parsed, err := parseAll(ctx, fs, ids, opts)
	for _, pf := range parsed {
		if pf.bag != nil {
			bag.Merge(pf.bag)
		}
	}
	if err != nil {
		return result, err
	}
	for _, pf := range parsed {
		if pf.err != nil {
			return result, pf.err
		}
	}

	// Consumption is sequential and ordered: later files may reference
	// names from earlier ones, and registration order decides which
	// duplicate wins the diagnostic.
	session := sema.NewSession(diag.BagReporter{Bag: bag})
	result.Session = session
	for _, pf := range parsed {
		if err := session.ConsumeFile(pf.file); err != nil {
			return result, err
		}
	}
	if err := session.Resolve(); err != nil {
		return result, err
	}
	return result, nil
}

// parseAll lexes and parses every file concurrently. Each file gets its own
// bag so diagnostics merge back deterministically in input order.
func parseAll(ctx context.Context, fs *source.FileSet, ids []source.FileID, opts Options) ([]parsedFile, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	parsed := make([]parsedFile, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(ids), 1)))

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileBag := diag.NewBag(perFileDiagnostics(opts))
			file, err := parser.ParseFile(fs.Get(id), diag.BagReporter{Bag: fileBag})
			parsed[i] = parsedFile{file: file, bag: fileBag, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return parsed, err
	}
	return parsed, nil
}

func newBag(opts Options) *diag.Bag {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiagnostics
	}
	return diag.NewBag(maxDiags)
}

func perFileDiagnostics(opts Options) int {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiagnostics
	}
	return maxDiags
}
