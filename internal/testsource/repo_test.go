// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package testsource_test

import (
	"bufio"
	"bytes"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "../.."

func TestLicenseHeader(t *testing.T) {
	t.Parallel()

	const spdx = "// SPDX-License-Identifier: Apache-2.0\n"

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			switch name := d.Name(); {
			case path == root:
				return nil

			case name == "testdata", strings.HasPrefix(name, "_"), strings.HasPrefix(name, "."):
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_string.go") {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		_, rest, ok := bytes.Cut(src, []byte(spdx))
		if !assert.Truef(t, ok, "%s: missing license header", path) {
			return nil
		}

		assert.Truef(t, bytes.HasPrefix(rest, []byte("\n")) && !bytes.HasPrefix(rest, []byte("\n\n")),
			"%s: want exactly one blank line after the license header", path)

		head, _, _ := bytes.Cut(src, []byte("\nimport"))

		formatted, err := format.Source(head)
		if assert.NoErrorf(t, err, "%s: header does not parse", path) {
			assert.Equalf(t, string(head), string(formatted), "%s: header is not gofmt formatted", path)
		}

		return nil
	})
	require.NoError(t, err)
}

func TestDomainStack(t *testing.T) {
	t.Parallel()

	spec, err := os.ReadFile(filepath.Join(root, "SPEC_FULL.md"))
	require.NoError(t, err)

	_, section, ok := strings.Cut(string(spec), "\n# DOMAIN STACK\n")
	require.True(t, ok, "SPEC_FULL.md has no DOMAIN STACK section")

	section, _, _ = strings.Cut(section, "\n# ")

	mod, err := os.Open(filepath.Join(root, "go.mod"))
	require.NoError(t, err)
	defer mod.Close()

	var direct []string

	for s, block := bufio.NewScanner(mod), false; s.Scan(); {
		line := strings.TrimSpace(s.Text())

		switch {
		case line == "require (":
			block = true

		case line == ")":
			block = false

		case block && !strings.HasSuffix(line, "// indirect"):
			if path, _, ok := strings.Cut(line, " "); ok {
				direct = append(direct, path)
			}
		}
	}

	require.NotEmpty(t, direct)

	for _, path := range direct {
		assert.Containsf(t, section, path, "module %s has no component in the domain stack", path)
	}
}
