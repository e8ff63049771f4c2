package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/t6modm/t6modm/internal/cli"
	"github.com/t6modm/t6modm/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "T6MODM",
		Section: "1",
		Source:  "t6modm " + version.Version,
		Manual:  "t6modm manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
