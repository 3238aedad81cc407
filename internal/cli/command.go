package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/define/internal"
)

// CreateRootCommand creates and configures the root cobra command. Flags
// that have a config key are bound to v.
func CreateRootCommand(flags *Flags, v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "define [flags] phrase...",
		Short: "Dictionary, thesaurus and translation lookup",
		Long: `define looks up an English word or phrase.

Without a mode flag it prints the definition with IPA transcription,
an example sentence, synonyms, and French and German translations.

Examples:
  define ubiquitous               # Full report
  define -d ubiquitous            # Definition only
  define -p ubiquitous            # Play the pronunciation
  define -fr "piece of cake"      # French translation only

Flags must come before the phrase; everything after the first word is
part of the phrase.`,
		Args:          cobra.ArbitraryArgs,
		Version:       internal.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	setupFlags(rootCmd, flags, v)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags, v *viper.Viper) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.define.yaml)")

	// Mode flags
	cmd.Flags().BoolVarP(&flags.Definition, "definition", "d", false, "Only show the definition")
	cmd.Flags().BoolVarP(&flags.Thesaurus, "thesaurus", "t", false, "Search the thesaurus")
	cmd.Flags().BoolVarP(&flags.Pronounce, "pronounce", "p", false, "Play the pronunciation")
	cmd.Flags().BoolVar(&flags.Example, "example", false, "Only show an example sentence (also -eg)")
	cmd.Flags().BoolVar(&flags.French, "french", false, "Show the French translation (also -fr)")
	cmd.Flags().BoolVar(&flags.German, "german", false, "Show the German translation (also -de)")

	// Local flags
	cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Log requests and extraction details to stderr")
	cmd.Flags().StringVar(&flags.Player, "player", "", "Media player for -p, e.g. \"mpv\" (default: first one found)")

	cmd.Flags().SetNormalizeFunc(normalizeFlagName)
	cmd.Flags().SetInterspersed(false)

	// Bind flags to viper
	bindFlagsToViper(cmd, v)
}

func bindFlagsToViper(cmd *cobra.Command, v *viper.Viper) {
	v.BindPFlag("audio.player", cmd.Flags().Lookup("player"))
	v.BindPFlag("log.verbose", cmd.Flags().Lookup("verbose"))
}

// InitConfig initializes viper configuration. A missing default config
// file is not an error; a missing explicit one is.
func InitConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error getting home directory: %w", err)
		}

		// Search config in home directory with name ".define" (without extension)
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".define")
	}

	// Environment variables, e.g. DEFINE_HTTP_TIMEOUT for http.timeout
	v.SetEnvPrefix("DEFINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey(v *viper.Viper) string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return v.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey(v *viper.Viper) string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return v.GetString("translation.gemini_key")
}
