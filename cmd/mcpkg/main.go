// Copyright 2026 The mcpkg Authors. All rights reserved.

package main

import (
	"os"

	"mcpkg.io/mcpkg/pkg/client"
	"mcpkg.io/mcpkg/pkg/cmd"
	"mcpkg.io/mcpkg/pkg/reporter"
)

func main() {
	reporter.InitReporter(false)
	mcpkgcli, err := client.NewMcpkgClient()
	if err != nil {
		reporter.Fatal(err)
	}
	app := cmd.NewMcpkgApp(mcpkgcli)
	err = app.Run(os.Args)
	if err != nil {
		reporter.Fatal(err)
	}
}
