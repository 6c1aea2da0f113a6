// Package main is the entry point for the devtodo CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/devtodo/internal/app"
	"github.com/runoshun/devtodo/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command with args.
// The container is created lazily so that help and config template work
// without touching storage.
func run(args []string, stdout, stderr io.Writer) error {
	rootCmd := cli.NewRootCommand(app.New, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
