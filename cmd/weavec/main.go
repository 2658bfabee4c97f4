// Command weavec builds declarative kernel descriptions to textual IR.
//
// Usage:
//
//	weavec build [flags] <kernel.yaml>
//
// Examples:
//
//	weavec build kernel.yaml             # Print IR to stdout
//	weavec build -o kernel.ir kernel.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/weave/kernel"
)

const weaveVersion = "0.1.0-dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weavec",
		Short: "weavec compiles kernel descriptions to IR",
		Long: `weavec reads a declarative YAML kernel description, builds its
loop nest and body through the weave builders, and prints the
resulting IR in textual form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newBuildCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newBuildCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build <kernel.yaml>",
		Short: "Build a kernel description to textual IR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			text, err := kernel.Compile(src)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the weavec version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weavec version %s\n", weaveVersion)
		},
	}
}
