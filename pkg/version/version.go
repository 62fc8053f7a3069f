// Copyright 2026 The mcpkg Authors. All rights reserved.

package version

// version will be set by build flags.
var version string

// GetVersionInStr() will return the version of mcpkg.
func GetVersionInStr() string {
	if len(version) == 0 {
		// If version is not set by build flags, return the version constant.
		return McpkgAbiVersion.String()
	}
	return version
}

// McpkgVersionType is the version type of mcpkg.
type McpkgVersionType string

// String() will transform McpkgVersionType to string.
func (v McpkgVersionType) String() string {
	return string(v)
}

// The version of mcpkg.
const McpkgAbiVersion McpkgVersionType = "0.1.0"
