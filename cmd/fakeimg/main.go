// Package main is the entry point for the fakeimg CLI
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/goliatone/go-fakeimage/internal/cli"
)

// set at build time via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	root := cli.NewRootCommand(cli.WithBuildInfo(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Built:   buildTime,
	}))
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
