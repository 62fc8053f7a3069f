package errors

import "errors"

var VendorRequest = errors.New("mcpkg: the vendor rejected the download request")
var MalformedCatalog = errors.New("mcpkg: malformed pack catalog")
var InvalidVersion = errors.New("mcpkg: invalid version format")
var NoLocalCache = errors.New("mcpkg: no local pack database found")
var PackNotFound = errors.New("mcpkg: pack not found in the local pack database")
var UnparsablePackFilename = errors.New("mcpkg: failed to parse the name and version from the pack file name")
var FailedDownload = errors.New("mcpkg: failed to download packs")
var FailedInstall = errors.New("mcpkg: failed to install pack")
var InternalBug = errors.New("mcpkg: internal bug, please contact us and we will fix the problem.")

// Invalid Options Format Errors
// Invalid 'mcpkg install'
var InvalidInstallOptions = errors.New("mcpkg: invalid 'mcpkg install' argument, you must provide at least one pack.")

// Invalid 'mcpkg search'
var InvalidSearchOptions = errors.New("mcpkg: invalid 'mcpkg search' argument, the pack type must be one of 'data', 'crafting' or 'resource'.")
