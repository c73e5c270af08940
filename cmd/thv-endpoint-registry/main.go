// Package main is the entry point for the endpoint registry server.
package main

import (
	"os"

	"github.com/stacklok/toolhive-endpoint-registry/cmd/thv-endpoint-registry/app"
)

func main() {
	// JSON logs go to stderr so stdout stays clean for `version --format json`
	app.SetupLogging(os.Stderr)

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
