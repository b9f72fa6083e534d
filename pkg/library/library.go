package library

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kasuboski/reelinfo/pkg/io"
	"github.com/kasuboski/reelinfo/pkg/logger"
)

// FileSystem is a directory tree and the path it is rooted at on disk
type FileSystem struct {
	FS   fs.FS
	Path string
}

type MediaLibrary struct {
	movies FileSystem
	fileIO io.FileIO
}

func New(movies FileSystem, fileIO io.FileIO) MediaLibrary {
	return MediaLibrary{
		movies: movies,
		fileIO: fileIO,
	}
}

// FindMovieFiles walks the movie library and returns every video file in walk order.
// Hidden directories and unreadable directories are skipped.
func (l MediaLibrary) FindMovieFiles(ctx context.Context) ([]MovieFile, error) {
	log := logger.FromCtx(ctx)

	if l.movies.Path != "" {
		info, err := l.fileIO.Stat(l.movies.Path)
		if err != nil {
			return nil, fmt.Errorf("movie library %s: %w", l.movies.Path, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("movie library %s is not a directory", l.movies.Path)
		}
	}

	files := []MovieFile{}
	err := l.fileIO.WalkDir(l.movies.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debugw("skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() && p != "." {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				log.Debugw("skipping", "dir", p)
				return fs.SkipDir
			}
			return nil
		}

		if !isVideoFile(p) {
			return nil
		}

		file := MovieFile{
			Name:         d.Name(),
			RelativePath: p,
			AbsolutePath: l.absolute(p),
		}
		if info, err := d.Info(); err == nil {
			file.Size = info.Size()
		}

		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugw("found movie files", "count", len(files))
	return files, nil
}

func (l MediaLibrary) absolute(p string) string {
	if l.movies.Path == "" {
		return p
	}
	return filepath.Join(l.movies.Path, filepath.FromSlash(p))
}

func isVideoFile(name string) bool {
	return slices.Contains(videoExtensions, strings.ToLower(path.Ext(name)))
}
