package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tinysprite/pntree/codec"
	"github.com/tinysprite/pntree/sprite"
)

// outputType is the convert subcommand's output format, matching the
// original tool's OutputType enum (src/convert.rs), minus the never-
// implemented Rust source-embed variant.
type outputType int

const (
	outputRaw outputType = iota
	outputText
)

func newConvertCmd() *cobra.Command {
	var (
		compress bool
		rawFile  string
		textFile string
	)

	cmd := &cobra.Command{
		Use:   "convert PATH",
		Short: "Converts PNG files matching PATH for use with a WASM-4-style console",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outType := outputRaw
			outFile := rawFile
			if textFile != "" {
				outType = outputText
				outFile = textFile
			}
			return runConvert(args[0], outFile, outType, compress)
		},
	}
	cmd.Flags().BoolVarP(&compress, "compress", "c", false, "compress these files with the smallest available codec")
	cmd.Flags().StringVar(&rawFile, "raw", "", "write a single binary file concatenating every converted sprite")
	cmd.Flags().StringVar(&textFile, "text", "", "write a human-readable listing of every converted sprite")
	cmd.MarkFlagsOneRequired("raw", "text")
	cmd.MarkFlagsMutuallyExclusive("raw", "text")
	return cmd
}

func runConvert(pattern, outFile string, outType outputType, compress bool) error {
	stream, err := newPNGStream(pattern)
	if err != nil {
		return err
	}

	out, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "create output file %s", outFile)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	converted := 0
	for {
		item, convErr, ok := stream.Next()
		if !ok {
			break
		}
		if convErr != nil {
			logger.Warn("skipping file", zap.Error(convErr))
			continue
		}

		s, normErr := sprite.Normalize(item.Frame)
		if normErr != nil {
			logger.Warn("skipping file", zap.String("name", item.Name), zap.Error(normErr))
			continue
		}

		wire, assembleErr := assembleWith(s, compress)
		if assembleErr != nil {
			logger.Warn("skipping file", zap.String("name", item.Name), zap.Error(assembleErr))
			continue
		}

		if err := writeConverted(w, item.Name, s, wire, outType); err != nil {
			return errors.Wrapf(err, "write converted sprite %s", item.Name)
		}
		converted++
	}

	logger.Info("convert finished", zap.Int("converted", converted))
	return nil
}

func assembleWith(s *sprite.Sprite, compress bool) ([]byte, error) {
	if compress {
		return codec.AssembleSmallest(s)
	}
	return codec.Assemble("uncompressed", s)
}

func writeConverted(w *bufio.Writer, name string, s *sprite.Sprite, wire []byte, outType outputType) error {
	switch outType {
	case outputRaw:
		_, err := w.Write(wire)
		return err
	case outputText:
		_, err := fmt.Fprintf(w, "%s: %dx%d, %d bpp, %d bytes: % x\n", name, s.Width, s.Height, int(s.BPP), len(wire), wire)
		return err
	default:
		return fmt.Errorf("convert: unknown output type %d", outType)
	}
}
