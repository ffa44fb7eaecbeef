package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apoint123/lyconv/internal/lyric"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [input.ass]",
	Short: "Extract translation and romanization tracks to LRC files",
	Long: `Extract auxiliary tracks from an ASS file into LRC files.

Translation lines (style "ts" or "trans" with an "x-lang:<code>" Name
tag) are written to <input>.<code>.lrc, one file per language.
Romanization lines (style "roma") are written to <input>.roma.lrc.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if !isASSPath(inputPath) {
		return fmt.Errorf("expected an .ass file, got %s", filepath.Ext(inputPath))
	}

	conv := lyric.New(logger, lyric.WithHeader(headerFromConfig()))
	return extractLRCFiles(conv, inputPath)
}

// extractLRCFiles runs both LRC extractions against inputPath and
// writes one file per track next to it.
func extractLRCFiles(conv *lyric.Converter, inputPath string) error {
	stem := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inputPath, err)
	}
	translations, _, err := conv.ExtractTranslations(in)
	in.Close()
	if err != nil {
		return err
	}

	if len(translations) == 0 {
		logger.Infow("No translation lines found", "input", inputPath)
	}
	for lang, lines := range translations {
		path := fmt.Sprintf("%s.%s.lrc", stem, lang)
		if err := writeLRCFile(path, lines); err != nil {
			return err
		}
		fmt.Printf("Extracted translation: %s\n", path)
	}

	in, err = os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inputPath, err)
	}
	roma, _, err := conv.ExtractRomanization(in)
	in.Close()
	if err != nil {
		return err
	}

	if len(roma) == 0 {
		logger.Infow("No romanization lines found", "input", inputPath)
		return nil
	}
	path := stem + ".roma.lrc"
	if err := writeLRCFile(path, roma); err != nil {
		return err
	}
	fmt.Printf("Extracted romanization: %s\n", path)

	return nil
}

func writeLRCFile(path string, lines []lyric.LRCLine) error {
	if err := os.WriteFile(path, []byte(lyric.FormatLRC(lines)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
