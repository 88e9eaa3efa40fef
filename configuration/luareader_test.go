// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
)

type sample struct {
	Count   int      `gluamapper:"count"`
	Maximum int      `gluamapper:"maximum"`
	Name    string   `gluamapper:"name"`
	Insert  []int    `gluamapper:"insert"`
	Nested  nested   `gluamapper:"nested"`
	Tags    []string `gluamapper:"tags"`
}

type nested struct {
	Enabled bool `gluamapper:"enabled"`
}

const sampleConfig = `
local M = {}
M.count = 25
M.name = "sample:" .. arg[0]:match("[^/]*$")
M.insert = { 7, 3, 9 }
M.nested = { enabled = true }
return M
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("create temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParse(t *testing.T) {
	fileName, cleanup := writeFile(t, sampleConfig)
	defer cleanup()

	s := &sample{
		Maximum: 100, // default not present in file
	}
	err := configuration.ParseConfigurationFile(fileName, s)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, 25, s.Count, "wrong count")
	assert.Equal(t, 100, s.Maximum, "default was overwritten")
	assert.Equal(t, "sample:test.conf", s.Name, "wrong name")
	assert.Equal(t, []int{7, 3, 9}, s.Insert, "wrong insert list")
	assert.True(t, s.Nested.Enabled, "nested value not set")
}

func TestParseMissingFile(t *testing.T) {
	s := &sample{}
	err := configuration.ParseConfigurationFile("/no/such/directory/test.conf", s)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
	assert.True(t, fault.IsErrNotFound(err), "not a not found error")
}

func TestParseNotPointer(t *testing.T) {
	fileName, cleanup := writeFile(t, sampleConfig)
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, sample{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")

	n := 5
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")
}

func TestParseSyntaxError(t *testing.T) {
	fileName, cleanup := writeFile(t, "return {{{")
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &sample{})
	assert.NotNil(t, err, "syntax error not detected")
}
