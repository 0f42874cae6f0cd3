package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skyregion/octpoly"
)

var opOutput string

var opCmd = &cobra.Command{
	Use:   "op <union|intersect|subtract> <a-ring-file> <b-ring-file>",
	Short: "Combine two rings and print the resulting area",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		octpoly.SetLogger(logger())
		a, err := readRing(args[1])
		if err != nil {
			return err
		}
		b, err := readRing(args[2])
		if err != nil {
			return err
		}

		var result *octpoly.OctahedronPolygon
		switch args[0] {
		case "union":
			result = octpoly.Union(a, b)
		case "intersect":
			result = octpoly.Intersect(a, b)
		case "subtract":
			result = octpoly.Subtract(a, b)
		default:
			return errors.Errorf("unknown op %q: want union, intersect or subtract", args[0])
		}

		fmt.Println(fmtSteradians(result.Area()))
		if opOutput != "" {
			return writePolygon(opOutput, result)
		}
		return nil
	},
}

func init() {
	opCmd.Flags().StringVarP(&opOutput, "output", "o", "", "write the resulting polygon to this file")
	RootCmd.AddCommand(opCmd)
}
