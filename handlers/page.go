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

package handlers

import (
	"bytes"
	"net/http"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	uuid "github.com/satori/go.uuid"

	"hostpage/presenters"
)

const contentTypeHTML = "text/html; charset=utf-8"

//go:generate mockgen -destination=mock_handlers/mocks.go -package=mock_handlers . HostnameResolver,LabelReader

// HostnameResolver looks up the name of the machine serving the page.
type HostnameResolver interface {
	Hostname() (string, error)
}

// LabelReader returns the stack label and whether one is present.
type LabelReader interface {
	Label() (string, bool)
}

// PageHandler serves the hostname page on every method and path. It keeps no
// per-request state, so one PageHandler serves concurrent requests.
type PageHandler struct {
	logger   lager.Logger
	clock    clock.Clock
	title    string
	resolver HostnameResolver
	label    LabelReader
}

// NewPageHandler creates a PageHandler. A nil label switches the stack label
// off: the label source is then never consulted.
func NewPageHandler(
	logger lager.Logger,
	clock clock.Clock,
	title string,
	resolver HostnameResolver,
	label LabelReader,
) *PageHandler {
	return &PageHandler{
		logger:   logger,
		clock:    clock,
		title:    title,
		resolver: resolver,
		label:    label,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := h.clock.Now()
	logger := h.logger.Session("serve-page", lager.Data{
		"request-id": uuid.NewV4().String(),
		"method":     r.Method,
		"path":       r.URL.Path,
	})

	page, err := h.BuildPage()
	if err != nil {
		logger.Error("failed-to-resolve-hostname", err)
		writeServerError(w)
		return
	}

	var body bytes.Buffer
	if err := presenters.RenderPage(&body, page); err != nil {
		logger.Error("failed-to-render-page", err)
		writeServerError(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := body.WriteTo(w); err != nil {
		logger.Info("failed-to-write-response", lager.Data{"error": err.Error()})
		return
	}

	logger.Debug("served", lager.Data{
		"duration":    h.clock.Since(started).String(),
		"stack-label": page.StackName != "",
	})
}

// BuildPage resolves the values shown on the page. The hostname is looked up
// and the label read again on every call.
func (h *PageHandler) BuildPage() (presenters.Page, error) {
	hostname, err := h.resolver.Hostname()
	if err != nil {
		return presenters.Page{}, err
	}

	page := presenters.Page{
		Title:    h.title,
		Hostname: hostname,
	}
	if h.label != nil {
		page.StackName, _ = h.label.Label()
	}

	return page, nil
}

func writeServerError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
