package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tinysprite/pntree/codec"
	"github.com/tinysprite/pntree/pntree"
	"github.com/tinysprite/pntree/sprite"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze PATH",
		Short: "Analyzes PNG files matching PATH and reports their compression statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0])
		},
	}
}

func runAnalyze(pattern string) error {
	stream, err := newPNGStream(pattern)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	fmt.Println("Analyzing images...")

	analyzed := 0
	for {
		item, streamErr, ok := stream.Next()
		if !ok {
			break
		}
		if streamErr != nil {
			logger.Warn("skipping file", zap.Error(streamErr))
			fmt.Printf("%v, continuing with other files\n", streamErr)
			continue
		}
		if err := analyzeOne(p, item); err != nil {
			logger.Warn("analyze failed", zap.String("name", item.Name), zap.Error(err))
			fmt.Printf("Encountered error processing sprite %s: %v\n", item.Name, err)
			continue
		}
		analyzed++
	}

	logger.Info("analyze finished", zap.Int("analyzed", analyzed))
	return nil
}

func analyzeOne(p *message.Printer, item *pngStreamItem) error {
	fmt.Printf("Analyzing %s...\n", item.Name)

	s, err := sprite.Normalize(item.Frame)
	if err != nil {
		return err
	}

	rawWire, err := codec.Assemble("uncompressed", s)
	if err != nil {
		return err
	}
	compressedWire, err := codec.Assemble("pntree", s)
	if err != nil {
		return err
	}

	rawSize := len(rawWire)
	compressedSize := len(compressedWire)
	reduction := 0.0
	if rawSize > 0 {
		reduction = 100 * (1 - float64(compressedSize)/float64(rawSize))
	}

	if len(compressedWire) < 6 {
		return fmt.Errorf("analyze %s: compressed wire too short to carry a pntree header", item.Name)
	}
	header := pntree.ParseHeader([2]byte{compressedWire[4], compressedWire[5]})

	p.Printf(
		"\nSprite %s is %d B in native format, and can be compressed to %d B.\n"+
			"Compression method: PnTree\n"+
			"Statistics: split bitplanes=%t, xor bitplanes=%t, delta-encoded %d times, "+
			"jump delta-encoded %d times with %d pixel jump\n"+
			"That's a %.1f%% size reduction.\n",
		item.Name, rawSize, compressedSize,
		header.Split, header.Xor, header.SeqDeltaPasses,
		header.JumpDeltaPasses, header.JumpDeltaSize,
		reduction,
	)
	return nil
}
