package manager

import (
	"github.com/kasuboski/reelinfo/pkg/extract"
	"github.com/oapi-codegen/nullable"
)

// FileInfo is the API view of a result. Fields that could not be extracted are null.
type FileInfo struct {
	Path       string                     `json:"path"`
	Parsed     bool                       `json:"parsed"`
	Filename   nullable.Nullable[string] `json:"filename"`
	Title      nullable.Nullable[string] `json:"title"`
	RawTitle   nullable.Nullable[string] `json:"rawTitle"`
	Year       nullable.Nullable[int]    `json:"year"`
	Source     nullable.Nullable[string] `json:"source"`
	VideoCodec nullable.Nullable[string] `json:"videoCodec"`
	AudioCodec nullable.Nullable[string] `json:"audioCodec"`
	DiskNumber nullable.Nullable[int]    `json:"diskNumber"`
	Group      nullable.Nullable[string] `json:"group"`
	Extension  nullable.Nullable[string] `json:"extension"`
	Provider   string                     `json:"provider"`
}

// NewFileInfo converts a result for the given provider
func NewFileInfo(result extract.Result, provider string) FileInfo {
	parsed, ok := result.(extract.Parsed)
	if !ok {
		return FileInfo{
			Path:       result.FilePath(),
			Filename:   nullable.NewNullNullable[string](),
			Title:      nullable.NewNullNullable[string](),
			RawTitle:   nullable.NewNullNullable[string](),
			Year:       nullable.NewNullNullable[int](),
			Source:     nullable.NewNullNullable[string](),
			VideoCodec: nullable.NewNullNullable[string](),
			AudioCodec: nullable.NewNullNullable[string](),
			DiskNumber: nullable.NewNullNullable[int](),
			Group:      nullable.NewNullNullable[string](),
			Extension:  nullable.NewNullNullable[string](),
			Provider:   provider,
		}
	}

	return FileInfo{
		Path:       parsed.Path,
		Parsed:     true,
		Filename:   nullable.NewNullableWithValue(parsed.Filename),
		Title:      nullable.NewNullableWithValue(parsed.Title),
		RawTitle:   nullable.NewNullableWithValue(parsed.RawTitle),
		Year:       nullableOf(parsed.Year),
		Source:     nullableOf(parsed.Source),
		VideoCodec: nullableOf(parsed.VideoCodec),
		AudioCodec: nullableOf(parsed.AudioCodec),
		DiskNumber: nullableOf(parsed.DiskNumber),
		Group:      nullableOf(parsed.Group),
		Extension:  nullable.NewNullableWithValue(parsed.Extension),
		Provider:   provider,
	}
}

func nullableOf[T any](v *T) nullable.Nullable[T] {
	if v == nil {
		return nullable.NewNullNullable[T]()
	}
	return nullable.NewNullableWithValue(*v)
}
