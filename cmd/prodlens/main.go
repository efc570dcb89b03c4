package main

import (
	"context"
	"os"

	"github.com/build-flow-labs/prodlens/internal/prodlens/cli"
)

func main() {
	if err := cli.RootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
