package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skyregion/octpoly"
)

var containsCmd = &cobra.Command{
	Use:   "contains <ring-file> <ra_deg> <dec_deg>",
	Short: "Report whether a point lies inside a ring of RA/Dec points",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		octpoly.SetLogger(logger())
		p, err := readRing(args[0])
		if err != nil {
			return err
		}
		ra, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		dec, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return err
		}
		fmt.Println(p.ContainsPoint(octpoly.PointFromRADec(ra, dec)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(containsCmd)
}
