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

// Package exitstatus allows an exit status to be pushed through an error
// shaped hole. The status survives wrapping with fmt.Errorf("%w") so commands
// can add context on the way out without losing it.
package exitstatus

import (
	"errors"
	"fmt"
)

// Status codes returned by the hostpage CLI in addition to the generic 1.
const (
	HostnameUnavailable = 2
)

// Error represents an error and an associated exit status to propagate.
type Error struct {
	Status int
	Err    error
}

// New annotates err with an exit status. A nil err stays nil.
func New(status int, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Status: status, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (exit status %d)", e.Err, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FromError collects the exit status from the passed error if it exists. If it
// finds an error without status code information then it returns 1.
func FromError(err error) int {
	if err == nil {
		return 0
	}

	var serr *Error
	if errors.As(err, &serr) {
		return serr.Status
	}

	return 1
}
