package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyregion/octpoly"
)

var areaCmd = &cobra.Command{
	Use:   "area <ring-file>",
	Short: "Print the area, in steradians, enclosed by a ring of RA/Dec points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		octpoly.SetLogger(logger())
		p, err := readRing(args[0])
		if err != nil {
			return err
		}
		fmt.Println(fmtSteradians(p.Area()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(areaCmd)
}
