package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/7blacky7/ranobe/cmd"
)

func main() {
	err := cmd.NewCLI().ExecuteContext(context.Background())
	if errors.Is(err, cmd.ErrReported) {
		os.Exit(1)
	}
	cobra.CheckErr(err)
}
