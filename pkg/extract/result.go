package extract

import "fmt"

// Result is the outcome of extracting a single path. It is either Parsed or Unparsed.
type Result interface {
	// FilePath returns the original path that was submitted
	FilePath() string
	isResult()
}

// Parsed holds the fields extracted from a filename that matched a movie pattern.
// Optional fields are nil when their pattern did not match.
type Parsed struct {
	Path       string  `json:"path"`
	Filename   string  `json:"filename"`
	RawTitle   string  `json:"rawTitle"`
	Title      string  `json:"title"`
	Year       *int    `json:"year,omitempty"`
	Source     *string `json:"source,omitempty"`
	VideoCodec *string `json:"videoCodec,omitempty"`
	AudioCodec *string `json:"audioCodec,omitempty"`
	DiskNumber *int    `json:"diskNumber,omitempty"`
	Group      *string `json:"group,omitempty"`
	Extension  string  `json:"extension"`
}

func (p Parsed) FilePath() string { return p.Path }
func (Parsed) isResult()          {}

func (p Parsed) String() string {
	return fmt.Sprintf("title: %s, year: %s, source: %s, video: %s, audio: %s, disk: %s, ext: %s, path: %s",
		p.Title, optional(p.Year), optional(p.Source), optional(p.VideoCodec), optional(p.AudioCodec), optional(p.DiskNumber), p.Extension, p.Path)
}

// Unparsed is returned when no movie pattern matched the filename
type Unparsed struct {
	Path string `json:"path"`
}

func (u Unparsed) FilePath() string { return u.Path }
func (Unparsed) isResult()          {}

func (u Unparsed) String() string {
	return fmt.Sprintf("unparsed: %s", u.Path)
}

func optional[T any](v *T) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
