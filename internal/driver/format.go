// Package driver orchestrates formatting runs: file discovery, parallel
// per-file pipelines, the result cache, and write-back. The core stays
// I/O free; everything that touches the filesystem lives here.
package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"swiftfmt/internal/config"
	"swiftfmt/internal/diag"
	"swiftfmt/internal/indent"
	"swiftfmt/internal/parser"
	"swiftfmt/internal/rewrite"
	"swiftfmt/internal/source"
)

// FormatOptions configures one FormatPaths run.
type FormatOptions struct {
	Config config.Config

	// Check reports changes without rewriting files.
	Check bool
	// Stdout prints formatted output instead of rewriting files.
	Stdout bool

	Jobs           int
	MaxDiagnostics int

	// Cache, when set, skips the pipeline for unchanged inputs.
	Cache *DiskCache
}

// FormatResult is the outcome for one file.
type FormatResult struct {
	Path      string
	Changed   bool
	Formatted []byte
	Bag       *diag.Bag
	Err       error
}

// buildPipeline assembles the pass sequence for a config.
func buildPipeline(cfg config.Config) *rewrite.Pipeline {
	passes := []rewrite.Pass{rewrite.IndentPass{Options: cfg.IndentOptions()}}
	if cfg.Whitespace.StripTrailing {
		passes = append(passes, rewrite.TrailingWhitespacePass{})
	}
	if cfg.Whitespace.CollapseBlanks {
		passes = append(passes, rewrite.CollapseBlankLinesPass{Max: cfg.Whitespace.MaxBlankLines})
	}
	return rewrite.NewPipeline(passes...)
}

// FormatSource runs the full pipeline over one in-memory source.
func FormatSource(name string, src []byte, cfg config.Config, maxDiagnostics int) ([]byte, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddVirtual(name, src))

	root := parser.ParseFile(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	out := buildPipeline(cfg).Run(root)
	return []byte(out.Render()), bag
}

// FormatIndentOnly runs just the indentation engine, without the
// cleanup passes.
func FormatIndentOnly(name string, src []byte, opts indent.Options) ([]byte, *diag.Bag) {
	bag := diag.NewBag(0)
	root := parser.Parse(name, src, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return []byte(indent.Format(root, opts).Render()), bag
}

// CollectFiles expands paths into a sorted, de-duplicated list of
// .swift files. Directories are walked recursively.
func CollectFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ".swift") {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// FormatPaths formats every .swift file reachable from paths, in
// parallel. Results come back in the collected (sorted) file order.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	files, err := CollectFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fingerprint := opts.Config.Fingerprint()

	// Результаты пишутся по уникальным индексам, мьютекс не нужен
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = formatOne(path, fingerprint, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, fingerprint Digest, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read: %w", err)
		return res
	}

	key := cacheKey(content, fingerprint)
	var payload CachePayload
	if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
		res.Formatted = payload.Formatted
		res.Changed = !bytes.Equal(content, payload.Formatted)
	} else {
		res.Formatted, res.Bag = FormatSource(path, content, opts.Config, opts.MaxDiagnostics)
		res.Changed = !bytes.Equal(content, res.Formatted)
		// негодную запись просто перезапишем
		_ = opts.Cache.Put(key, &CachePayload{
			Schema:    cacheSchemaVersion,
			Formatted: res.Formatted,
		})
	}

	if res.Changed && !opts.Check && !opts.Stdout {
		if err := writeBack(path, res.Formatted); err != nil {
			res.Err = fmt.Errorf("write: %w", err)
		}
	}
	return res
}

// cacheKey fingerprints input bytes together with every setting that
// affects output.
func cacheKey(content []byte, fingerprint Digest) Digest {
	h := sha256.New()
	h.Write(fingerprint[:])
	h.Write(content)
	var key Digest
	h.Sum(key[:0])
	return key
}

// writeBack atomically replaces a file, keeping its permission bits.
func writeBack(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".swiftfmt-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
