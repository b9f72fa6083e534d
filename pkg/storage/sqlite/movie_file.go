package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/reelinfo/pkg/storage"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/table"
)

// GetMovieFile gets a movie file by id
func (s *SQLite) GetMovieFile(ctx context.Context, id string) (*model.MovieFile, error) {
	stmt := table.MovieFile.
		SELECT(table.MovieFile.AllColumns).
		FROM(table.MovieFile).
		WHERE(table.MovieFile.ID.EQ(sqlite.String(id)))

	var result model.MovieFile
	err := stmt.QueryContext(ctx, s.db, &result)
	if err != nil {
		return nil, mapError(err)
	}

	return &result, nil
}

// GetMovieFileByPath gets the movie file stored for the submitted path
func (s *SQLite) GetMovieFileByPath(ctx context.Context, path string) (*model.MovieFile, error) {
	stmt := table.MovieFile.
		SELECT(table.MovieFile.AllColumns).
		FROM(table.MovieFile).
		WHERE(table.MovieFile.Path.EQ(sqlite.String(path)))

	var result model.MovieFile
	err := stmt.QueryContext(ctx, s.db, &result)
	if err != nil {
		return nil, mapError(err)
	}

	return &result, nil
}

// ListMovieFiles lists movie files matching all the given conditions
func (s *SQLite) ListMovieFiles(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.MovieFile, error) {
	stmt := table.MovieFile.
		SELECT(table.MovieFile.AllColumns).
		FROM(table.MovieFile)

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	stmt = stmt.ORDER_BY(table.MovieFile.DateAdded.ASC(), table.MovieFile.Path.ASC())

	movieFiles := make([]*model.MovieFile, 0)
	err := stmt.QueryContext(ctx, s.db, &movieFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie files: %w", err)
	}

	return movieFiles, nil
}

// SaveMovieFile stores a new movie file
func (s *SQLite) SaveMovieFile(ctx context.Context, file model.MovieFile) (string, error) {
	// Exclude DateAdded so that the default is used
	stmt := table.MovieFile.
		INSERT(table.MovieFile.AllColumns.Except(table.MovieFile.DateAdded)).
		MODEL(file)

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return "", err
	}

	return file.ID, nil
}

// MergeMovieFile stores the movie file or updates the one already stored with the same path.
// The id and date added of an existing record are kept.
func (s *SQLite) MergeMovieFile(ctx context.Context, file model.MovieFile) (string, error) {
	now := time.Now().UTC()
	file.UpdatedAt = &now

	excluded := table.MovieFile.EXCLUDED
	stmt := table.MovieFile.
		INSERT(table.MovieFile.AllColumns.Except(table.MovieFile.DateAdded)).
		MODEL(file).
		ON_CONFLICT(table.MovieFile.Path).
		DO_UPDATE(sqlite.SET(
			table.MovieFile.Filename.SET(excluded.Filename),
			table.MovieFile.Parsed.SET(excluded.Parsed),
			table.MovieFile.RawTitle.SET(excluded.RawTitle),
			table.MovieFile.Title.SET(excluded.Title),
			table.MovieFile.Year.SET(excluded.Year),
			table.MovieFile.Source.SET(excluded.Source),
			table.MovieFile.VideoCodec.SET(excluded.VideoCodec),
			table.MovieFile.AudioCodec.SET(excluded.AudioCodec),
			table.MovieFile.DiskNumber.SET(excluded.DiskNumber),
			table.MovieFile.ReleaseGroup.SET(excluded.ReleaseGroup),
			table.MovieFile.Extension.SET(excluded.Extension),
			table.MovieFile.Provider.SET(excluded.Provider),
			table.MovieFile.UpdatedAt.SET(excluded.UpdatedAt),
		)).
		RETURNING(table.MovieFile.ID)

	var stored model.MovieFile
	if err := s.handleQuery(ctx, stmt, &stored); err != nil {
		return "", err
	}

	return stored.ID, nil
}

// DeleteMovieFile removes a movie file by id
func (s *SQLite) DeleteMovieFile(ctx context.Context, id string) error {
	stmt := table.MovieFile.DELETE().WHERE(table.MovieFile.ID.EQ(sqlite.String(id)))
	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
