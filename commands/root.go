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

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/spf13/cobra"

	"hostpage/bosh"
	"hostpage/config"
	"hostpage/handlers"
	"hostpage/stacklabel"
)

const (
	jobName        = "hostpage"
	configFileName = "hostpage.yml"
)

var (
	configPath   string
	logger       lager.Logger
	noStackLabel bool
	showVersion  bool
)

var boshEnv = bosh.NewEnv(os.Getenv("HOSTPAGE_BOSH_ROOT"))

func init() {
	RootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "print hostpage version")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a hostpage.yml configuration file")
	RootCmd.PersistentFlags().BoolVar(&noStackLabel, "no-stack-label", false, "never show the stack label")
}

var RootCmd = &cobra.Command{
	Long:              "Serves a page showing the hostname of this machine and its deployment stack",
	RunE:              root,
	Short:             "Serves a page showing the hostname of this machine",
	SilenceErrors:     true,
	Use:               "hostpage",
	PersistentPreRunE: rootPre,
}

func rootPre(cmd *cobra.Command, _ []string) error {
	if showVersion {
		version(cmd, []string{})
		os.Exit(0)
	}

	return nil
}

func root(cmd *cobra.Command, args []string) error {
	return errors.New("must specify a command")
}

// loadConfig reads --config, falling back to the configuration rendered into
// the BOSH job and finally to the built-in defaults.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		if jobConfig, ok := boshEnv.ExistingJobConfig(jobName, configFileName); ok {
			path = jobConfig
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.ParseConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if noStackLabel {
		cfg.StackLabel.Enabled = false
	}

	return cfg, nil
}

func setupLogger(cfg *config.Config, w io.Writer) error {
	level, err := logLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger = lager.NewLogger("hostpage")
	logger.RegisterSink(lager.NewPrettySink(w, level))

	return nil
}

func logLevel(name string) (lager.LogLevel, error) {
	switch name {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.INFO, fmt.Errorf("unknown log level: %s", name)
	}
}

func newPageHandler(cfg *config.Config, resolver handlers.HostnameResolver) (*handlers.PageHandler, error) {
	var label handlers.LabelReader

	if cfg.StackLabel.Enabled {
		maxSize, err := cfg.StackLabel.MaxBytes()
		if err != nil {
			return nil, err
		}

		label = stacklabel.NewFileReader(
			logger,
			cfg.StackLabel.DocumentRoot,
			cfg.StackLabel.File,
			maxSize,
		)
	}

	return handlers.NewPageHandler(
		logger,
		clock.NewClock(),
		cfg.Title,
		resolver,
		label,
	), nil
}
