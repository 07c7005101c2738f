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

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"gopkg.in/yaml.v3"

	"hostpage/hostinfo"
)

const (
	DefaultListenAddress   = ":8080"
	DefaultTitle           = "Server Hostname"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = "5s"
	DefaultDocumentRoot    = "/var/www/html"
	DefaultStackLabelFile  = "stack.txt"
	DefaultStackLabelSize  = "4K"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"error": true,
	"fatal": true,
}

type Config struct {
	ListenAddress   string     `yaml:"listen_address"`
	Title           string     `yaml:"title"`
	LogLevel        string     `yaml:"log_level"`
	ShutdownTimeout string     `yaml:"shutdown_timeout"`
	Hostname        Hostname   `yaml:"hostname"`
	StackLabel      StackLabel `yaml:"stack_label"`
}

type Hostname struct {
	Source string `yaml:"source"`
}

type StackLabel struct {
	Enabled      bool   `yaml:"enabled"`
	DocumentRoot string `yaml:"document_root"`
	File         string `yaml:"file"`
	MaxSize      string `yaml:"max_size"`
}

// Default returns the configuration used when no file has been rendered: the
// stack label is read from /var/www/html/stack.txt.
func Default() *Config {
	return &Config{
		ListenAddress:   DefaultListenAddress,
		Title:           DefaultTitle,
		LogLevel:        DefaultLogLevel,
		ShutdownTimeout: DefaultShutdownTimeout,
		Hostname: Hostname{
			Source: hostinfo.SourceOS,
		},
		StackLabel: StackLabel{
			Enabled:      true,
			DocumentRoot: DefaultDocumentRoot,
			File:         DefaultStackLabelFile,
			MaxSize:      DefaultStackLabelSize,
		},
	}
}

// ParseConfig reads a YAML file on top of Default. Keys missing from the file
// keep their default values.
func ParseConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ListenAddress == "" {
		return errors.New("invalid config: listen_address")
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid config: log_level %q", c.LogLevel)
	}

	if _, err := c.ShutdownGrace(); err != nil {
		return fmt.Errorf("invalid config: shutdown_timeout: %s", err)
	}

	if _, err := hostinfo.NewResolver(c.Hostname.Source); err != nil {
		return fmt.Errorf("invalid config: hostname.source: %s", err)
	}

	return c.StackLabel.Validate()
}

func (c *Config) ShutdownGrace() (time.Duration, error) {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 0, err
	}

	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", d)
	}

	return d, nil
}

func (s StackLabel) Validate() error {
	if !s.Enabled {
		return nil
	}

	if s.File == "" {
		return errors.New("invalid config: stack_label.file")
	}

	if _, err := s.MaxBytes(); err != nil {
		return fmt.Errorf("invalid config: stack_label.max_size: %s", err)
	}

	return nil
}

// MaxBytes parses MaxSize, e.g. "4K" or "1MB".
func (s StackLabel) MaxBytes() (int64, error) {
	size, err := bytefmt.ToBytes(s.MaxSize)
	if err != nil {
		return 0, err
	}

	return int64(size), nil
}
