package dicom

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

	"github.com/codeninja55/go-dcmx/dicom/tag"
)

// DirectoryOptions configures directory scanning.
type DirectoryOptions struct {
	// Recursive descends into subdirectories.
	Recursive bool
	// Extensions filters by lowercase file extension. Empty means the
	// conventional DICOM extensions plus extensionless files.
	Extensions []string
	// Workers is the parse concurrency; zero means GOMAXPROCS. Datasets are
	// independent, so files parse on separate goroutines.
	Workers int
	// ReaderOptions applies to every file parsed.
	ReaderOptions ReaderOptions
}

// DirectoryResult is the outcome of scanning a directory tree.
type DirectoryResult struct {
	// Collection indexes the successfully parsed datasets.
	Collection *Collection
	// Skipped maps file paths to the error that excluded them.
	Skipped map[string]error
}

// ParseDirectory scans a directory for DICOM files and parses them into a
// collection with default options.
func ParseDirectory(path string) (*DirectoryResult, error) {
	return ParseDirectoryWithOptions(context.Background(), path, DirectoryOptions{
		Recursive:     true,
		ReaderOptions: DefaultReaderOptions(),
	})
}

// ParseDirectoryWithOptions scans a directory for DICOM files and parses
// them concurrently.
func ParseDirectoryWithOptions(ctx context.Context, path string, opts DirectoryOptions) (*DirectoryResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	files, err := discoverFiles(path, opts)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type parsed struct {
		path string
		ds   *DataSet
		err  error
	}

	jobs := make(chan string)
	results := make(chan parsed)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				if ctx.Err() != nil {
					results <- parsed{path: file, err: ctx.Err()}
					continue
				}
				ds, err := parseOneFile(file, opts.ReaderOptions)
				results <- parsed{path: file, ds: ds, err: err}
			}
		}()
	}

	go func() {
		for _, file := range files {
			jobs <- file
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	result := &DirectoryResult{
		Collection: NewCollection(),
		Skipped:    make(map[string]error),
	}
	for r := range results {
		if r.err != nil {
			result.Skipped[r.path] = r.err
			continue
		}
		if err := result.Collection.Add(r.ds); err != nil {
			result.Skipped[r.path] = err
		}
	}
	return result, nil
}

func parseOneFile(path string, opts ReaderOptions) (*DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := ParseReaderWithOptions(f, opts)
	if err != nil {
		return nil, err
	}
	return parsed.DataSet, nil
}

// discoverFiles lists candidate DICOM files under root in sorted order.
func discoverFiles(root string, opts DirectoryOptions) ([]string, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".dcm", ".dicom", ""}
	}

	accepted := func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		for _, candidate := range extensions {
			if ext == candidate {
				return true
			}
		}
		return false
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !opts.Recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if accepted(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// WriteCollection writes every dataset of a collection into dir as
// <SOPInstanceUID>.dcm files.
func WriteCollection(dir string, collection *Collection, opts WriteOptions) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	for _, ds := range collection.DataSets() {
		sopInstance, err := ds.GetString(tag.New(0x0008, 0x0018))
		if err != nil {
			return err
		}
		path := filepath.Join(dir, sopInstance+".dcm")
		if err := WriteFileWithOptions(path, ds, opts); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
