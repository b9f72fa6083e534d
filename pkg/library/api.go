package library

import (
	"context"
)

var videoExtensions = []string{".mp4", ".avi", ".mkv", ".m4v", ".iso", ".ts", ".m2ts"}

type Library interface {
	FindMovieFiles(ctx context.Context) ([]MovieFile, error)
}
