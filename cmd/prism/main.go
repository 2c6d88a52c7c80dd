package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/prism/pkg/styles"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		seq := styles.Style{Color: styles.ColorRed}.Sequence()
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", seq, err, styles.Reset)
		os.Exit(1)
	}
}
