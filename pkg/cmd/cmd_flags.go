// Copyright 2026 The mcpkg Authors. All rights reserved.
// This file provides all the flags in the mcpkg cli.
package cmd

const FLAG_VERBOSE = "verbose"
const FLAG_COMPACT = "compact"
const FLAG_INSTALLED = "installed"
const FLAG_PATH = "path"
const FLAG_CATEGORY = "category"
const FLAG_TYPE = "type"
