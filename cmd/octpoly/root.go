// Command octpoly is a small front-end over the octpoly library: build
// a polygon from a ring of RA/Dec points, combine polygons, and query
// area or point containment, grounded on dgraph's cobra-based CLI
// layout (dgraph/cmd/root.go, x/subcommand.go).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the entry point every subcommand registers itself under
// via init(). Each subcommand lives in its own file, mirroring how
// dgraph's cmd package is laid out.
var RootCmd = &cobra.Command{
	Use:   "octpoly",
	Short: "Spherical polygon algebra over octahedral-projected regions",
}

var verbose bool

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func logger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
