// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

/*
Package gclplugin provides golangci-lint plugin integration for the [dealguard] analyzer.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/dealguard
	    import: fillmore-labs.com/dealguard/gclplugin
	    version: v0.0.1

2. Run `golangci-lint custom` from your project root.

This will create a custom `golangci-lint` executable in your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - dealguard
	  settings:
	    custom:
	      dealguard:
	        type: module
	        description: "dealguard checks Design-by-Contract decorators."
	        original-url: "https://fillmore-labs.com/dealguard"
	        settings:
	          typed: true    # resolve names with type information
	          report: false  # report the contracts of every decorated function
	          inherit: true  # check deal.Inherit decorators
	          unknown: true  # report malformed decorators and unknown contracts

4. Run the linter:

	./golangci-lint run .

# Settings

All settings are optional. An unset key keeps the analyzer default.

  - typed (default true): resolve decorator names, embedded types and contract variables
    through type information. With false the plugin asks golangci-lint for syntax only and
    names are matched by identifier, so aliased embeddings are not followed.
  - report (default false): report the contracts of every decorated function (dg:con).
  - inherit (default true): report deal.Inherit on plain functions and on types that
    embed nothing with contracts (dg:inh).
  - unknown (default true): report decorators that do not parse and unknown deal
    contracts (dg:unk).

Generated files are always analyzed, golangci-lint filters their diagnostics itself.

[dealguard]: https://github.com/fillmore-labs/dealguard#dealguard
*/
package gclplugin
