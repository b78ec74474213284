// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus loads the regular files of a file system tree into memory.
package corpus

import (
	"io/fs"
	"sort"
)

// File is a file loaded into memory. Name is the slash-separated path
// inside the file system.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the tree. The files are sorted by name.
func Files(fsys fs.FS) (files []File, err error) {
	err = fs.WalkDir(fsys, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.Type().IsRegular() {
				return nil
			}
			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, err
}

// Size returns the total number of bytes in all files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}
