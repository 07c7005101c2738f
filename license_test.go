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

package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var licenseChecks = []string{
	"Copyright",
	"CloudFoundry.org Foundation, Inc.",
	"www.apache.org",
}

var generatedMarker = []byte("// Code generated")

var _ = Describe("our go source code", func() {
	It("has license headers", func() {
		var missingHeader []string

		err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				// Skip what the go tool skips, and vendored code
				name := info.Name()
				if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "vendor" || name == "testdata") {
					return filepath.SkipDir
				}
				return nil
			}

			if filepath.Ext(path) != ".go" {
				return nil
			}

			bs, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if bytes.HasPrefix(bs, generatedMarker) {
				return nil
			}

			// The check strings above should be near the top of the file.
			if len(bs) > 512 {
				bs = bs[:512]
			}

			for _, check := range licenseChecks {
				if !strings.Contains(string(bs), check) {
					missingHeader = append(missingHeader, path)
					break
				}
			}

			return nil
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(missingHeader).To(BeEmpty(), "These files are missing license headers!")
	})
})
