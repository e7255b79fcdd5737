// Command calc evaluates arithmetic expressions.
package main

import (
	"os"

	"github.com/zephyrtronium/calculator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
