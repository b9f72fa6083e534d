package publisher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kasuboski/reelinfo/pkg/cache"
	"github.com/kasuboski/reelinfo/pkg/extract"
	"github.com/kasuboski/reelinfo/pkg/storage"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite/schema/gen/model"
)

// Store persists results, replacing any record previously stored for the same path
type Store struct {
	storage  storage.MovieFileStorage
	provider string
}

func NewStore(s storage.MovieFileStorage, provider string) Store {
	return Store{storage: s, provider: provider}
}

func (s Store) Publish(ctx context.Context, result extract.Result) error {
	file := ToMovieFile(result, s.provider)
	file.ID = uuid.NewString()

	if _, err := s.storage.MergeMovieFile(ctx, file); err != nil {
		return fmt.Errorf("failed to store result for %s: %w", result.FilePath(), err)
	}

	return nil
}

// ToMovieFile converts a result to a storage record without an id
func ToMovieFile(result extract.Result, provider string) model.MovieFile {
	switch r := result.(type) {
	case extract.Parsed:
		return model.MovieFile{
			Path:         r.Path,
			Filename:     r.Filename,
			Parsed:       true,
			RawTitle:     &r.RawTitle,
			Title:        &r.Title,
			Year:         toInt32(r.Year),
			Source:       r.Source,
			VideoCodec:   r.VideoCodec,
			AudioCodec:   r.AudioCodec,
			DiskNumber:   toInt32(r.DiskNumber),
			ReleaseGroup: r.Group,
			Extension:    &r.Extension,
			Provider:     provider,
		}
	default:
		return model.MovieFile{
			Path:     result.FilePath(),
			Filename: filepath.Base(result.FilePath()),
			Provider: provider,
		}
	}
}

// FromMovieFile converts a stored record back to a result
func FromMovieFile(file model.MovieFile) extract.Result {
	if !file.Parsed {
		return extract.Unparsed{Path: file.Path}
	}

	return extract.Parsed{
		Path:       file.Path,
		Filename:   file.Filename,
		RawTitle:   deref(file.RawTitle),
		Title:      deref(file.Title),
		Year:       toInt(file.Year),
		Source:     file.Source,
		VideoCodec: file.VideoCodec,
		AudioCodec: file.AudioCodec,
		DiskNumber: toInt(file.DiskNumber),
		Group:      file.ReleaseGroup,
		Extension:  deref(file.Extension),
	}
}

// Memory keeps the latest result for every path
type Memory struct {
	results *cache.Cache[string, extract.Result]
}

func NewMemory() *Memory {
	return &Memory{results: cache.New[string, extract.Result]()}
}

func (m *Memory) Publish(_ context.Context, result extract.Result) error {
	m.results.Set(result.FilePath(), result)
	return nil
}

// Get returns the latest result published for path
func (m *Memory) Get(path string) (extract.Result, bool) {
	return m.results.Get(path)
}

// Results returns the latest result per path in the order paths were first published
func (m *Memory) Results() []extract.Result {
	return m.results.Values()
}

func (m *Memory) Len() int {
	return m.results.Size()
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func toInt(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
