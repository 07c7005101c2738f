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

package bosh

import (
	"os"
	"path/filepath"
)

// DefaultRoot is the standard root directory for all bosh jobs. Job
// configuration is expected to be in a directory somewhere inside this one.
const DefaultRoot = "/var/vcap"

// Env represents the BOSH directory layout that hostpage is deployed into.
// Tests point it at a temporary directory instead of DefaultRoot.
type Env struct {
	root string
}

// NewEnv creates a new environment with a particular directory as its root. If
// root is empty then the DefaultRoot will be used.
func NewEnv(root string) *Env {
	if root == "" {
		root = DefaultRoot
	}

	return &Env{
		root: root,
	}
}

func (e *Env) Root() string {
	return e.root
}

// JobDir returns the directory where a job can find its templated BOSH
// configuration.
func (e *Env) JobDir(job string) string {
	return filepath.Join(e.root, "jobs", job)
}

// JobConfig returns the path of a named configuration file rendered for a
// job, e.g. /var/vcap/jobs/hostpage/config/hostpage.yml.
func (e *Env) JobConfig(job, name string) string {
	return filepath.Join(e.JobDir(job), "config", name)
}

// ExistingJobConfig is JobConfig but reports false when the file has not been
// rendered onto this machine.
func (e *Env) ExistingJobConfig(job, name string) (string, bool) {
	path := e.JobConfig(job, name)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}

	return path, true
}
