// Command undeniable serves the claim appeal form and offers offline tools
// to check the insurer directory and render a letter.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
