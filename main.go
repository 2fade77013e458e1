// ABOUTME: Entry point for the milhas CLI
// ABOUTME: Command-line front-end for the loyalty-points wallet API

package main

import (
	"fmt"
	"os"

	"github.com/milhasdev/milhas-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
