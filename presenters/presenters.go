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

package presenters

import (
	"errors"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"
)

// Page is everything shown on the hostname page. StackName is optional; the
// stack block is left out entirely when it is empty.
type Page struct {
	Title     string
	Hostname  string
	StackName string
}

// Hermetic functions only, so identical pages always render to identical bytes.
var pageTemplate = template.Must(template.New("page").Funcs(sprig.HermeticHtmlFuncMap()).Parse(pageHTML))

// RenderPage writes page as an HTML document. Every value is escaped for its
// context by html/template.
func RenderPage(w io.Writer, page Page) error {
	if page.Hostname == "" {
		return errors.New("page has no hostname")
	}

	return pageTemplate.Execute(w, page)
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
    <title>{{ .Title | default "Server Hostname" }}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background-color: #f5f5f5;
        }
        .container {
            text-align: center;
            background-color: white;
            padding: 40px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 {
            color: #333;
            margin-bottom: 20px;
        }
        .stack-name {
            font-size: 20px;
            color: #666;
            font-weight: bold;
            padding: 15px;
            background-color: #e8f4f8;
            border-radius: 4px;
            display: inline-block;
            margin-bottom: 20px;
        }
        .hostname {
            font-size: 24px;
            color: #0073aa;
            font-weight: bold;
            padding: 20px;
            background-color: #f0f0f0;
            border-radius: 4px;
            display: inline-block;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{ .Title | default "Server Hostname" }}</h1>
        {{- if .StackName }}
        <div class="stack-name">Stack: {{ .StackName }}</div>
        {{- end }}
        <div class="hostname">{{ .Hostname }}</div>
    </div>
</body>
</html>
`
