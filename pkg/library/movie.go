package library

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// MovieFile is a video file found in the movie library
type MovieFile struct {
	Name         string `json:"name"`
	RelativePath string `json:"relativePath"`
	AbsolutePath string `json:"absolutePath"`
	Size         int64  `json:"size"`
}

// HumanSize formats the file size for display
func (m MovieFile) HumanSize() string {
	if m.Size < 0 {
		return humanize.Bytes(0)
	}
	return humanize.Bytes(uint64(m.Size))
}

func (m MovieFile) String() string {
	return fmt.Sprintf("%s (%s)", m.RelativePath, m.HumanSize())
}
