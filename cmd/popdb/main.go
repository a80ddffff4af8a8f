package main

import (
	"fmt"
	"os"

	"github.com/hsiuhsiu/popdb-go/internal/cli"
	"github.com/hsiuhsiu/popdb-go/internal/styles"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error(err.Error()))
		os.Exit(cli.ExitCode(err))
	}
}
