// Command pnpack converts PNG sprites into the packed raster format a
// WASM-4-style fantasy console expects, optionally compressing them with
// the PnTree codec, and reports compression statistics for a batch of
// sprites.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tinysprite/pntree/internal/batchlog"
)

var (
	logFile string
	verbose bool
	logger  = zap.NewNop()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pnpack",
		Short:         "Png compression and data generation tool for WASM-4-style consoles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := batchlog.New(logFile, verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "rotate batch logs to this file in addition to stderr")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newAnalyzeCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
