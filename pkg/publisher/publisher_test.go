package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kasuboski/reelinfo/pkg/extract"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/storage/mocks"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func ptr[T any](v T) *T {
	return &v
}

func matrix() extract.Parsed {
	return extract.Parsed{
		Path:      "/movies/The.Matrix.1999.Bluray-GROUP.mkv",
		Filename:  "The.Matrix.1999.Bluray-GROUP.mkv",
		RawTitle:  "The.Matrix",
		Title:     "The Matrix",
		Year:      ptr(1999),
		Source:    ptr("Bluray"),
		Group:     ptr("GROUP"),
		Extension: "mkv",
	}
}

func TestMulti(t *testing.T) {
	ctx := context.Background()

	var calls []string
	record := func(name string, err error) Publisher {
		return Func(func(_ context.Context, _ extract.Result) error {
			calls = append(calls, name)
			return err
		})
	}

	errA := errors.New("a failed")
	errC := errors.New("c failed")
	m := Multi{record("a", errA), record("b", nil), record("c", errC)}

	err := m.Publish(ctx, extract.Unparsed{Path: "x"})
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	assert.NoError(t, Multi{}.Publish(ctx, extract.Unparsed{Path: "x"}))
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithCtx(context.Background(), zap.New(core).Sugar())

	require.NoError(t, Log{}.Publish(ctx, matrix()))
	require.NoError(t, Log{}.Publish(ctx, extract.Unparsed{Path: "/movies/home.mp4"}))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "extracted movie file info", entries[0].Message)
	assert.Equal(t, "The Matrix", entries[0].ContextMap()["title"])
	assert.Equal(t, int64(1999), entries[0].ContextMap()["year"])
	assert.Equal(t, "no pattern matched movie file", entries[1].Message)
	assert.Equal(t, "/movies/home.mp4", entries[1].ContextMap()["path"])
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("merges parsed result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMovieFileStorage(ctrl)

		store.EXPECT().MergeMovieFile(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, file model.MovieFile) (string, error) {
			_, err := uuid.Parse(file.ID)
			assert.NoError(t, err)
			assert.Equal(t, "/movies/The.Matrix.1999.Bluray-GROUP.mkv", file.Path)
			assert.True(t, file.Parsed)
			assert.Equal(t, "The Matrix", *file.Title)
			assert.Equal(t, int32(1999), *file.Year)
			assert.Equal(t, "GROUP", *file.ReleaseGroup)
			assert.Equal(t, "filename", file.Provider)
			return file.ID, nil
		})

		err := NewStore(store, "filename").Publish(ctx, matrix())
		assert.NoError(t, err)
	})

	t.Run("wraps storage errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMovieFileStorage(ctrl)

		wantErr := errors.New("disk full")
		store.EXPECT().MergeMovieFile(ctx, gomock.Any()).Return("", wantErr)

		err := NewStore(store, "filename").Publish(ctx, extract.Unparsed{Path: "/movies/home.mp4"})
		assert.ErrorIs(t, err, wantErr)
		assert.Contains(t, err.Error(), "/movies/home.mp4")
	})
}

func TestMovieFileConversion(t *testing.T) {
	t.Run("parsed round trip", func(t *testing.T) {
		in := matrix()
		in.DiskNumber = ptr(2)

		file := ToMovieFile(in, "filename")
		assert.Empty(t, file.ID)
		assert.Equal(t, in, FromMovieFile(file))
	})

	t.Run("unparsed", func(t *testing.T) {
		file := ToMovieFile(extract.Unparsed{Path: "/movies/home video.mp4"}, "filename")
		assert.False(t, file.Parsed)
		assert.Equal(t, "home video.mp4", file.Filename)
		assert.Nil(t, file.Title)
		assert.Equal(t, extract.Unparsed{Path: "/movies/home video.mp4"}, FromMovieFile(file))
	})
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Publish(ctx, extract.Unparsed{Path: "/a.mkv"}))
	require.NoError(t, m.Publish(ctx, matrix()))
	require.NoError(t, m.Publish(ctx, extract.Parsed{Path: "/a.mkv", Title: "A"}))

	assert.Equal(t, 2, m.Len())

	got, ok := m.Get("/a.mkv")
	require.True(t, ok)
	assert.Equal(t, extract.Parsed{Path: "/a.mkv", Title: "A"}, got)

	_, ok = m.Get("/missing.mkv")
	assert.False(t, ok)

	results := m.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "/a.mkv", results[0].FilePath())
	assert.Equal(t, matrix().Path, results[1].FilePath())
}
