package cli

import (
	"fmt"
	"strings"

	"github.com/apoint123/lyconv/internal/logging"
	"github.com/apoint123/lyconv/internal/lyric"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose bool
	cfgFile string
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lyconv",
	Short: "Convert karaoke lyrics between ASS, QRC and Lyricify Syllable",
	Long: `Lyconv converts time-synchronized lyric files between the ASS
subtitle format, the QRC lyric format and the Lyricify Syllable (.lys)
format, preserving per-word karaoke timing.

It can also extract translation and romanization tracks from ASS files
into plain LRC files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)
		return initConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "Config file (default none; env vars use the LYCONV_ prefix)")
}

func initConfig() error {
	header := lyric.DefaultHeader()
	viper.SetDefault("header.font_name", header.FontName)
	viper.SetDefault("header.font_size", header.FontSize)
	viper.SetDefault("header.play_res_x", header.PlayResX)
	viper.SetDefault("header.play_res_y", header.PlayResY)

	viper.SetEnvPrefix("LYCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func headerFromConfig() lyric.HeaderOptions {
	return lyric.HeaderOptions{
		FontName: viper.GetString("header.font_name"),
		FontSize: viper.GetInt("header.font_size"),
		PlayResX: viper.GetInt("header.play_res_x"),
		PlayResY: viper.GetInt("header.play_res_y"),
	}
}
