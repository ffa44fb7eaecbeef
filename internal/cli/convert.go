package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apoint123/lyconv/internal/lyric"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert a lyric file between ASS, QRC and LYS",
	Long: `Convert a lyric file between ASS, QRC and Lyricify Syllable formats.

With --direction the conversion is explicit and the output path is
required. Without it the direction is chosen from the input extension:
.qrc and .lys convert to ASS; .ass converts to LYS when it carries
dual-singer or background role tags, otherwise to QRC. In automatic
mode the output is written next to the input with a _converted suffix.

Examples:
  lyconv convert lyrics.ass
  lyconv convert lyrics.ass out.qrc -d ass2qrc
  lyconv convert lyrics.qrc out.ass -d 2a
  lyconv convert lyrics.ass --extract-lrc`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("direction", "d", "", "Conversion direction (ass2qrc|2q, qrc2ass|2a, ass2lys|2l, lys2ass|l2a)")
	convertCmd.Flags().
		Bool("extract-lrc", false, "Also extract translation/romanization LRC files from an ASS input")
}

// driver signature shared by the four conversions
type conversionFn func(io.Reader, io.Writer) (bool, error)

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	direction, _ := cmd.Flags().GetString("direction")
	extractLRC, _ := cmd.Flags().GetBool("extract-lrc")

	conv := lyric.New(logger, lyric.WithHeader(headerFromConfig()))

	var (
		action     conversionFn
		outputPath string
	)

	if direction != "" {
		if len(args) < 2 {
			return fmt.Errorf("--direction requires an explicit output path")
		}
		outputPath = args[1]

		switch strings.ToLower(direction) {
		case "ass2qrc", "2q":
			action = conv.ASSToQRC
		case "qrc2ass", "2a":
			action = conv.QRCToASS
		case "ass2lys", "2l":
			action = conv.ASSToLYS
		case "lys2ass", "l2a":
			action = conv.LYSToASS
		default:
			return fmt.Errorf("invalid conversion direction %q", direction)
		}
	} else {
		var outputExt string
		var err error
		action, outputExt, err = autoDirection(conv, inputPath)
		if err != nil {
			return err
		}

		if len(args) > 1 {
			outputPath = args[1]
		} else {
			stem := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
			outputPath = stem + "_converted" + outputExt
		}
	}

	logger.Infow("Starting conversion",
		"input", inputPath,
		"output", outputPath,
	)

	warned, err := convertFile(action, inputPath, outputPath)
	if err != nil {
		return err
	}
	if warned {
		logger.Warnw("Conversion finished with warnings", "output", outputPath)
	} else {
		fmt.Printf("Converted successfully: %s\n", outputPath)
	}

	if extractLRC && isASSPath(inputPath) {
		if err := extractLRCFiles(conv, inputPath); err != nil {
			return err
		}
	}

	return nil
}

// autoDirection picks the conversion for an input based on its
// extension, probing ASS files for alignment roles.
func autoDirection(conv *lyric.Converter, inputPath string) (conversionFn, string, error) {
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".qrc":
		return conv.QRCToASS, ".ass", nil
	case ".lys":
		return conv.LYSToASS, ".ass", nil
	case ".ass":
		in, err := os.Open(inputPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s: %w", inputPath, err)
		}
		defer in.Close()

		hasRoles, err := lyric.HasAlignmentRoles(in)
		if err != nil {
			return nil, "", err
		}
		if hasRoles {
			return conv.ASSToLYS, ".lys", nil
		}
		return conv.ASSToQRC, ".qrc", nil
	default:
		return nil, "", fmt.Errorf(
			"cannot infer conversion direction from extension of %s", inputPath,
		)
	}
}

func convertFile(action conversionFn, inputPath, outputPath string) (bool, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", outputPath, err)
	}

	warned, err := action(in, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close %s: %w", outputPath, cerr)
	}
	return warned, err
}

func isASSPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ass")
}
