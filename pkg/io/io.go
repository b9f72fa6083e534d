package io

import (
	"io/fs"
	"os"
)

var _ FileIO = (*MediaFileSystem)(nil)

// MediaFileSystem is the default implementation of file io using the os package
type MediaFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *MediaFileSystem) Stat(target string) (os.FileInfo, error) {
	return os.Stat(target)
}

// WalkDir is a wrapper around fs.WalkDir
func (o *MediaFileSystem) WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(fsys, root, fn)
}

// IsDir reports whether path exists and is a directory
func (o *MediaFileSystem) IsDir(path string) bool {
	info, err := o.Stat(path)
	return err == nil && info.IsDir()
}
