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

// Package hostinfo resolves the network name of the machine hostpage is
// running on. Several sources are supported because containers, BOSH VMs and
// plain hosts disagree on which one is authoritative.
package hostinfo

import (
	"errors"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/sys/unix"
)

const (
	SourceOS       = "os"
	SourceUname    = "uname"
	SourceHostInfo = "host-info"
)

var ErrEmptyHostname = errors.New("hostname is empty")

type Resolver interface {
	Hostname() (string, error)
}

// Sources lists the names accepted by NewResolver.
func Sources() []string {
	return []string{SourceOS, SourceUname, SourceHostInfo}
}

// NewResolver returns the Resolver for a configured source name. The empty
// string selects SourceOS.
func NewResolver(source string) (Resolver, error) {
	switch source {
	case "", SourceOS:
		return OSResolver{}, nil
	case SourceUname:
		return UnameResolver{}, nil
	case SourceHostInfo:
		return HostInfoResolver{}, nil
	default:
		return nil, fmt.Errorf("unknown hostname source: %s", source)
	}
}

// OSResolver asks the Go runtime, which reads the kernel hostname.
type OSResolver struct{}

func (OSResolver) Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", err
	}

	return nonEmpty(name)
}

// UnameResolver returns the node name reported by uname(2).
type UnameResolver struct{}

func (UnameResolver) Hostname() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}

	return nonEmpty(unix.ByteSliceToString(uts.Nodename[:]))
}

// HostInfoResolver returns the hostname gopsutil collects alongside the rest
// of the host information.
type HostInfoResolver struct{}

func (HostInfoResolver) Hostname() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("host info: %w", err)
	}

	return nonEmpty(info.Hostname)
}

// StaticResolver always returns Name.
type StaticResolver struct {
	Name string
}

func (r StaticResolver) Hostname() (string, error) {
	return nonEmpty(r.Name)
}

func nonEmpty(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyHostname
	}

	return name, nil
}
