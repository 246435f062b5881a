package cmd

import (
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/glyphs/internal/icons"
	"go.dot.industries/glyphs/internal/theme"
)

var (
	flagUserDir    string
	flagBuiltinDir string
	flagTheme      string
	flagTrueColor  string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Icon flavor resolver for terminal tools",
	Long: `glyphs resolves named icon flavors: TOML documents mapping file
types, diagnostic severities, and symbol kinds to glyphs and colors.
Flavors inherit from one another, user files override shipped ones, and
colors degrade cleanly on terminals without true-color support.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagUserDir, "user-dir", "", "user flavor directory (defaults to the user config directory)")
	rootCmd.PersistentFlags().StringVar(&flagBuiltinDir, "builtin-dir", "", "builtin flavor directory (defaults to the compiled-in flavors)")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", theme.DefaultName, "theme supplying fallback diagnostic colors")
	rootCmd.PersistentFlags().StringVar(&flagTrueColor, "true-color", "auto", "true-color output: auto, always, or never")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cobra.OnInitialize(initLogger)
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}

// userDir returns the user directory for one flavor family ("icons" or
// "themes"). An empty result disables user overrides.
func userDir(family string) string {
	if flagUserDir != "" {
		return filepath.Join(flagUserDir, family)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(configDir, "glyphs", family)
}

// builtinDir returns the builtin directory for one flavor family, or an
// empty string to use the compiled-in documents.
func builtinDir(family string) string {
	if flagBuiltinDir == "" {
		return ""
	}
	return filepath.Join(flagBuiltinDir, family)
}

func newMaterializer() *icons.Materializer {
	return icons.NewMaterializer(userDir("icons"), builtinDir("icons"))
}

func newThemeLoader() *theme.Loader {
	return theme.NewLoader(userDir("themes"), builtinDir("themes"))
}

func loadTheme() (*theme.Theme, error) {
	return newThemeLoader().Load(flagTheme)
}

// supportsTrueColor resolves the --true-color flag, probing the terminal
// when set to auto.
func supportsTrueColor() bool {
	switch flagTrueColor {
	case "always":
		return true
	case "never":
		return false
	}

	return termenv.ColorProfile() == termenv.TrueColor
}
