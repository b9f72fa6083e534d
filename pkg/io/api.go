package io

import (
	"io/fs"
	"os"
)

// FileIO is an interface for the file operations used when scanning a library
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error
}
