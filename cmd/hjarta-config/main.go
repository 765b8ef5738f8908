// Package main provides the entry point for hjarta-config.
//
// hjarta-config resolves, merges and prints layered configuration files,
// which makes it handy for checking what an application will actually see.
package main

import (
	"fmt"
	"os"

	"github.com/0xalexb/hjarta-config/internal/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
