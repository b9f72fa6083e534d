package sqlite

import (
	"context"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/reelinfo/pkg/storage"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func matrixFile() model.MovieFile {
	return model.MovieFile{
		ID:           "3f1c7f4e-7a59-4a64-9c8f-7b0c1f4d2a10",
		Path:         "/movies/The.Matrix.1999.Bluray-GROUP.mkv",
		Filename:     "The.Matrix.1999.Bluray-GROUP.mkv",
		Parsed:       true,
		RawTitle:     ptr("The.Matrix"),
		Title:        ptr("The Matrix"),
		Year:         ptr(int32(1999)),
		Source:       ptr("Bluray"),
		ReleaseGroup: ptr("GROUP"),
		Extension:    ptr("mkv"),
		Provider:     "filename",
	}
}

func TestMovieFileStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	file := matrixFile()
	id, err := store.SaveMovieFile(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, file.ID, id)

	got, err := store.GetMovieFile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, file.Path, got.Path)
	assert.Equal(t, file.Title, got.Title)
	assert.Equal(t, file.Year, got.Year)
	assert.Equal(t, file.Source, got.Source)
	assert.Nil(t, got.VideoCodec)
	assert.Nil(t, got.DiskNumber)
	assert.True(t, got.Parsed)
	assert.False(t, got.DateAdded.IsZero())
	assert.Nil(t, got.UpdatedAt)

	byPath, err := store.GetMovieFileByPath(ctx, file.Path)
	require.NoError(t, err)
	assert.Equal(t, got, byPath)

	files, err := store.ListMovieFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, got, files[0])

	err = store.DeleteMovieFile(ctx, id)
	require.NoError(t, err)

	_, err = store.GetMovieFile(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.DeleteMovieFile(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSaveMovieFileDuplicatePath(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, err := store.SaveMovieFile(ctx, matrixFile())
	require.NoError(t, err)

	dup := matrixFile()
	dup.ID = "0c8e5b62-1f07-4b8a-8b8e-2d1f53b1b7c4"
	_, err = store.SaveMovieFile(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestMergeMovieFile(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	first := matrixFile()
	id, err := store.MergeMovieFile(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)

	stored, err := store.GetMovieFile(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored.UpdatedAt)

	second := model.MovieFile{
		ID:       "0c8e5b62-1f07-4b8a-8b8e-2d1f53b1b7c4",
		Path:     first.Path,
		Filename: first.Filename,
		Parsed:   false,
		Provider: "filename",
	}
	mergedID, err := store.MergeMovieFile(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, id, mergedID, "merging keeps the stored id")

	merged, err := store.GetMovieFile(ctx, id)
	require.NoError(t, err)
	assert.False(t, merged.Parsed)
	assert.Nil(t, merged.Title)
	assert.Nil(t, merged.Year)
	assert.Equal(t, stored.DateAdded, merged.DateAdded)

	files, err := store.ListMovieFiles(ctx)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestListMovieFilesWhere(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, err := store.SaveMovieFile(ctx, matrixFile())
	require.NoError(t, err)

	_, err = store.SaveMovieFile(ctx, model.MovieFile{
		ID:       "0c8e5b62-1f07-4b8a-8b8e-2d1f53b1b7c4",
		Path:     "/movies/home video.mp4",
		Filename: "home video.mp4",
		Provider: "filename",
	})
	require.NoError(t, err)

	all, err := store.ListMovieFiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	parsed, err := store.ListMovieFiles(ctx, table.MovieFile.Parsed.IS_TRUE())
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "The Matrix", *parsed[0].Title)

	none, err := store.ListMovieFiles(ctx, table.MovieFile.Parsed.IS_TRUE(), table.MovieFile.Year.GT(sqlite.Int(2000)))
	require.NoError(t, err)
	assert.Empty(t, none)
}
