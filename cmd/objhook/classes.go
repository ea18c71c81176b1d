package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/daimatz/objhook/pkg/objrt"
)

func newClassesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the host runtime's classes and methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			rt, err := bootHost(cfg)
			if err != nil {
				return err
			}
			printClasses(cmd.OutOrStdout(), rt)
			return nil
		},
	}
}

func printClasses(w io.Writer, rt *objrt.Runtime) {
	for _, c := range rt.Classes() {
		if c.Super() != nil {
			fmt.Fprintf(w, "%s : %s\n", c.Name(), c.Super().Name())
		} else {
			fmt.Fprintln(w, c.Name())
		}
		for _, m := range c.Methods() {
			fmt.Fprintf(w, "  %-56s %s\n", m.Signature(), m.Types())
		}
	}
}
