package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/model"
)

var (
	ErrNotFound      = errors.New("not found in storage")
	ErrAlreadyExists = errors.New("already exists in storage")
)

type Storage interface {
	RunMigrations(ctx context.Context) error
	Close() error
	MovieFileStorage
}

// MovieFileStorage persists extraction results keyed by record id. Paths are unique.
type MovieFileStorage interface {
	GetMovieFile(ctx context.Context, id string) (*model.MovieFile, error)
	GetMovieFileByPath(ctx context.Context, path string) (*model.MovieFile, error)
	ListMovieFiles(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.MovieFile, error)
	// SaveMovieFile inserts a new record and fails if the path is already stored
	SaveMovieFile(ctx context.Context, file model.MovieFile) (string, error)
	// MergeMovieFile inserts the record or updates the one stored under the same path.
	// It returns the id of the stored record.
	MergeMovieFile(ctx context.Context, file model.MovieFile) (string, error)
	DeleteMovieFile(ctx context.Context, id string) error
}
