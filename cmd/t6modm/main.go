package main

import (
	"fmt"
	"os"

	"github.com/t6modm/t6modm/internal/cli"
	"github.com/t6modm/t6modm/pkg/errors"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.NewRenderer(os.Stderr).RenderError(err))
		os.Exit(errors.ExitCode(err))
	}
}
