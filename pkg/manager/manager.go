package manager

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/reelinfo/pkg/extract"
	"github.com/kasuboski/reelinfo/pkg/extractor"
	"github.com/kasuboski/reelinfo/pkg/library"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/pagination"
	"github.com/kasuboski/reelinfo/pkg/pattern"
	"github.com/kasuboski/reelinfo/pkg/publisher"
	"github.com/kasuboski/reelinfo/pkg/storage"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

var ErrNoPaths = errors.New("no paths submitted")

// Extractor is the part of the extraction worker the manager drives
type Extractor interface {
	Submit(ctx context.Context, paths ...string) error
	Patterns() *pattern.Set
	Status() extractor.Status
}

// Results looks up the latest result published for a path
type Results interface {
	Get(path string) (extract.Result, bool)
}

type MediaManager struct {
	extractor Extractor
	storage   storage.MovieFileStorage
	library   library.Library
	results   Results
}

func New(ext Extractor, storage storage.MovieFileStorage, library library.Library, results Results) MediaManager {
	return MediaManager{
		extractor: ext,
		storage:   storage,
		library:   library,
		results:   results,
	}
}

// MovieFileFilter narrows ListMovieFiles
type MovieFileFilter struct {
	Parsed *bool
	Title  string
}

// MovieFilePage is one page of stored results
type MovieFilePage struct {
	Files []*model.MovieFile `json:"files"`
	Meta  pagination.Meta    `json:"meta"`
}

type ScanResult struct {
	Found  int `json:"found"`
	Queued int `json:"queued"`
}

// SubmitPaths queues paths for extraction. Blank paths are dropped.
func (m MediaManager) SubmitPaths(ctx context.Context, paths []string) (int, error) {
	log := logger.FromCtx(ctx)

	cleaned := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		cleaned = append(cleaned, p)
	}

	if len(cleaned) == 0 {
		return 0, ErrNoPaths
	}

	if err := m.extractor.Submit(ctx, cleaned...); err != nil {
		log.Warnw("failed to submit paths", "count", len(cleaned), zap.Error(err))
		return 0, err
	}

	return len(cleaned), nil
}

// ParseFilename extracts filename with the active patterns without queueing it
func (m MediaManager) ParseFilename(ctx context.Context, filename string) (extract.Result, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, errors.New("filename is empty")
	}

	result := extract.Extract(filename, m.extractor.Patterns())
	logger.FromCtx(ctx).Debugw("parsed filename", "filename", filename, "result", result)
	return result, nil
}

// GetResult returns the latest result for path, falling back to stored records
func (m MediaManager) GetResult(ctx context.Context, path string) (extract.Result, error) {
	if m.results != nil {
		if result, ok := m.results.Get(path); ok {
			return result, nil
		}
	}

	file, err := m.storage.GetMovieFileByPath(ctx, path)
	if err != nil {
		return nil, err
	}

	return publisher.FromMovieFile(*file), nil
}

// ListMovieFiles returns the page of stored results matching filter
func (m MediaManager) ListMovieFiles(ctx context.Context, filter MovieFileFilter, params pagination.Params) (MovieFilePage, error) {
	var where []sqlite.BoolExpression
	if filter.Parsed != nil {
		where = append(where, table.MovieFile.Parsed.EQ(sqlite.Bool(*filter.Parsed)))
	}
	if filter.Title != "" {
		where = append(where, table.MovieFile.Title.LIKE(sqlite.String("%"+filter.Title+"%")))
	}

	files, err := m.storage.ListMovieFiles(ctx, where...)
	if err != nil {
		return MovieFilePage{}, err
	}

	return MovieFilePage{
		Files: pagination.Slice(files, params),
		Meta:  params.BuildMeta(len(files)),
	}, nil
}

func (m MediaManager) GetMovieFile(ctx context.Context, id string) (*model.MovieFile, error) {
	return m.storage.GetMovieFile(ctx, id)
}

func (m MediaManager) DeleteMovieFile(ctx context.Context, id string) error {
	return m.storage.DeleteMovieFile(ctx, id)
}

// ScanLibrary finds every video file in the movie library and queues it for extraction
func (m MediaManager) ScanLibrary(ctx context.Context) (ScanResult, error) {
	log := logger.FromCtx(ctx)

	if m.library == nil {
		return ScanResult{}, errors.New("no movie library configured")
	}

	files, err := m.library.FindMovieFiles(ctx)
	if err != nil {
		return ScanResult{}, fmt.Errorf("failed to scan movie library: %w", err)
	}

	result := ScanResult{Found: len(files)}
	if len(files) == 0 {
		log.Info("no movie files found in library")
		return result, nil
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = filepath.Clean(f.AbsolutePath)
	}

	if err := m.extractor.Submit(ctx, paths...); err != nil {
		return result, err
	}
	result.Queued = len(paths)

	log.Infow("queued library files for extraction", "found", result.Found)
	return result, nil
}

// Status reports the state of the extraction worker
func (m MediaManager) Status() extractor.Status {
	return m.extractor.Status()
}

// Run scans the library every interval until ctx is done. A zero interval disables
// periodic scans.
func (m MediaManager) Run(ctx context.Context, interval time.Duration) {
	log := logger.FromCtx(ctx)
	if interval <= 0 || m.library == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.ScanLibrary(ctx); err != nil {
				log.Error("scheduled library scan failed", zap.Error(err))
			}
		}
	}
}
