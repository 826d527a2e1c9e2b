// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package dataset

import "fmt"

type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("csv file not found: %s", e.Path)
}

type MalformedCSVError struct {
	Path string
	Line int
	Err  error
}

func (e *MalformedCSVError) Error() string {
	return fmt.Sprintf("malformed csv %s at line %d: %v", e.Path, e.Line, e.Err)
}

func (e *MalformedCSVError) Unwrap() error {
	return e.Err
}

type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in %s", e.Column, e.Path)
}

type DuplicateKeyError struct {
	Path   string
	Column string
	Value  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s %q in %s", e.Column, e.Value, e.Path)
}
