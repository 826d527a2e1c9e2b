// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("file not found")
	err := Wrap("reading english csv", inner)
	assert.Equal(t, "reading english csv: file not found", err.Error())
	assert.Equal(t, inner, Unwrap(err))
}

func TestWrapf(t *testing.T) {
	inner := fmt.Errorf("exit status 128")
	err := Wrapf(inner, "cloning %q", "https://github.com/OWASP/ASVS.git")
	assert.Equal(t, `cloning "https://github.com/OWASP/ASVS.git": exit status 128`, err.Error())
	assert.Equal(t, inner, Unwrap(err))
}

func TestContains(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := Wrap("outer", inner)
	assert.True(t, Contains(err, inner))
	assert.True(t, Contains(err, "boom"))
	assert.True(t, Contains(err, "outer: boom"))
	assert.False(t, Contains(err, "bang"))
	assert.False(t, Contains(nil, "boom"))
	assert.True(t, Contains(nil, nil))
	assert.False(t, Contains(err, 12))
}
