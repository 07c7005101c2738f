// Copyright (C) 2024-Present CloudFoundry.org Foundation, Inc. All rights reserved.
//
// This program and the accompanying materials are made available under
// the terms of the under the Apache License, Version 2.0 (the "License”);
// you may not use this file except in compliance with the License.
//
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the
// License for the specific language governing permissions and limitations
// under the License.

// Package stacklabel reads the optional deployment "stack" label that an
// external deployment process drops next to the web content. A missing or
// unreadable label is never an error for callers: the page renders without it.
package stacklabel

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/lager/v3"
	securejoin "github.com/cyphar/filepath-securejoin"
)

type FileReader struct {
	logger       lager.Logger
	documentRoot string
	file         string
	maxSize      int64
}

// NewFileReader creates a reader for file. The directories of a relative name
// are confined to documentRoot; absolute names, or any name when documentRoot
// is empty, are used as they are. At most maxSize bytes are read when maxSize
// is positive.
func NewFileReader(logger lager.Logger, documentRoot, file string, maxSize int64) *FileReader {
	return &FileReader{
		logger:       logger.Session("stack-label"),
		documentRoot: documentRoot,
		file:         file,
		maxSize:      maxSize,
	}
}

// Path returns the location the label is read from. Directory components are
// resolved without leaving the document root. The file itself may be a
// symlink, and it is followed wherever it points when the label is read.
func (r *FileReader) Path() (string, error) {
	if r.documentRoot == "" || filepath.IsAbs(r.file) {
		return r.file, nil
	}

	base := filepath.Base(r.file)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("stack label file %q does not name a file", r.file)
	}

	dir, err := securejoin.SecureJoin(r.documentRoot, filepath.Dir(r.file))
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, base), nil
}

// Label returns the trimmed label and whether one is present. Whitespace-only
// files count as absent.
func (r *FileReader) Label() (string, bool) {
	path, err := r.Path()
	if err != nil {
		r.logger.Info("failed-to-resolve-stack-label", lager.Data{"file": r.file, "error": err.Error()})
		return "", false
	}

	data, err := r.read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Info("failed-to-read-stack-label", lager.Data{"path": path, "error": err.Error()})
		}
		return "", false
	}

	label := strings.TrimSpace(string(data))
	return label, label != ""
}

func (r *FileReader) read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if r.maxSize <= 0 {
		return io.ReadAll(f)
	}

	data, err := io.ReadAll(io.LimitReader(f, r.maxSize+1))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > r.maxSize {
		r.logger.Info("stack-label-truncated", lager.Data{"path": path, "max-size": r.maxSize})
		data = trimPartialRune(data[:r.maxSize])
	}

	return data, nil
}

// trimPartialRune drops a multi-byte character cut off at the end of data.
func trimPartialRune(data []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(data); i++ {
		if utf8.RuneStart(data[len(data)-i]) {
			if utf8.FullRune(data[len(data)-i:]) {
				return data
			}
			return data[:len(data)-i]
		}
	}

	return data
}
