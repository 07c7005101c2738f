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
	"fmt"

	"github.com/spf13/cobra"

	"hostpage/exitstatus"
	"hostpage/handlers"
	"hostpage/hostinfo"
	"hostpage/presenters"
)

var renderHostname string

func init() {
	renderCommand.Flags().StringVar(&renderHostname, "hostname", "", "render this hostname instead of resolving it")
	RootCmd.AddCommand(renderCommand)
}

var renderCommand = &cobra.Command{
	Long:  "Writes the hostname page to stdout exactly as it would be served",
	RunE:  render,
	Short: "Writes the hostname page to stdout",
	Use:   "render",
}

func render(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout carries the page
	if err := setupLogger(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	var resolver handlers.HostnameResolver
	if renderHostname != "" {
		resolver = hostinfo.StaticResolver{Name: renderHostname}
	} else {
		resolver, err = hostinfo.NewResolver(cfg.Hostname.Source)
		if err != nil {
			return err
		}
	}

	handler, err := newPageHandler(cfg, resolver)
	if err != nil {
		return err
	}

	page, err := handler.BuildPage()
	if err != nil {
		return exitstatus.New(exitstatus.HostnameUnavailable, fmt.Errorf("failed to resolve hostname: %w", err))
	}

	return presenters.RenderPage(cmd.OutOrStdout(), page)
}
