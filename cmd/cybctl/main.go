// Command cybctl decodes, encodes, and compares Cyberiada-GraphML and
// legacy yEd diagrams from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "cybctl",
		Short:         "Decode, encode, and diff HSM GraphML diagrams",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newProfileCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cybctl: %v\n", err)
		os.Exit(1)
	}
}
