// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/squarematrix/matrix"
	"github.com/katalvlaran/squarematrix/menu"
	"github.com/spf13/cobra"
)

func newEvalCmd(c *cli) *cobra.Command {
	var a, b []int

	cmd := &cobra.Command{
		Use:   "eval [operations]",
		Short: "Apply operations to two matrices given on the command line",
		Long: `Runs one dispatch without prompting. Elements are listed row by row;
the extension is the integer square root of the element count.

Example:
  sqmatrix eval --a 1,2,3,4 --b 4,3,2,1 "+ determinant"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := matrix.FromFlat(a...)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			second, err := matrix.FromFlat(b...)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}

			d, err := menu.NewDispatcher(c.cfg.Dispatch, c.logger)
			if err != nil {
				return err
			}
			out := menu.NewPrinter(cmd.OutOrStdout(), menu.NewStyler(c.cfg.Output.Color))
			req := &menu.Request{
				Input:  strings.Join(args, " "),
				First:  first,
				Second: second,
				Out:    out,
			}

			return d.Dispatch(cmd.Context(), req)
		},
	}

	cmd.Flags().IntSliceVar(&a, "a", nil, "elements of matrix 1, row-major (comma separated)")
	cmd.Flags().IntSliceVar(&b, "b", nil, "elements of matrix 2, row-major (comma separated)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}
