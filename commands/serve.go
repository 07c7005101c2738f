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
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/spf13/cobra"

	"hostpage/hostinfo"
)

const readHeaderTimeout = 10 * time.Second

var listenAddress string

func init() {
	serveCommand.Flags().StringVarP(&listenAddress, "listen", "l", "", "address to listen on, overrides listen_address")
	RootCmd.AddCommand(serveCommand)
}

var serveCommand = &cobra.Command{
	Long:  "Serves the hostname page over HTTP until SIGTERM or SIGINT",
	RunE:  serve,
	Short: "Serves the hostname page",
	Use:   "serve",
}

func serve(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if listenAddress != "" {
		cfg.ListenAddress = listenAddress
	}

	if err := setupLogger(cfg, cmd.OutOrStdout()); err != nil {
		return err
	}

	grace, err := cfg.ShutdownGrace()
	if err != nil {
		return err
	}

	resolver, err := hostinfo.NewResolver(cfg.Hostname.Source)
	if err != nil {
		return err
	}

	handler, err := newPageHandler(cfg, resolver)
	if err != nil {
		return err
	}

	logger = logger.Session("serve", lager.Data{
		"hostname-source": cfg.Hostname.Source,
		"stack-label":     cfg.StackLabel.Enabled,
	})
	logger.Info("starting")
	defer logger.Info("complete")

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		logger.Error("failed-to-listen", err, lager.Data{"listen-address": cfg.ListenAddress})
		return err
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve(listener)
	}()

	logger.Info("listening", lager.Data{"bound-address": listener.Addr().String()})

	select {
	case err := <-errs:
		logger.Error("failed-to-serve", err)
		return err
	case <-ctx.Done():
	}

	logger.Info("draining", lager.Data{"grace": grace.String()})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed-to-drain", err)
		return err
	}

	return nil
}
