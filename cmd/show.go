package cmd

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/glyphs/internal/icons"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [flavor]",
	Short: "Materialize a flavor and print its icon tables",
	Long: `Resolves a flavor through its inheritance chain, applies the active
theme and the terminal's color capability, and prints every icon it
defines. Without an argument the builtin default flavor is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	name := icons.DefaultName
	if len(args) == 1 {
		name = args[0]
	}

	th, err := loadTheme()
	if err != nil {
		return err
	}

	trueColor := supportsTrueColor()

	fl, err := newMaterializer().Materialize(name, th, trueColor)
	if err != nil {
		return err
	}

	log.Debug().
		Str("flavor", fl.Name).
		Str("theme", th.Name()).
		Bool("true_color", trueColor).
		Msg("materialized flavor")

	fmt.Printf("Flavor: %s\n", fl.Name)

	fmt.Println("\nDiagnostics:")
	fmt.Printf("  %s error\n", renderIcon(fl.Diagnostic.Error))
	fmt.Printf("  %s warning\n", renderIcon(fl.Diagnostic.Warning))
	fmt.Printf("  %s info\n", renderIcon(fl.Diagnostic.Info))
	fmt.Printf("  %s hint\n", renderIcon(fl.Diagnostic.Hint))

	fmt.Printf("\nMime types (%d):\n", len(fl.MimeType))
	for _, key := range sortedIconKeys(fl.MimeType) {
		fmt.Printf("  %s %s\n", renderIcon(fl.MimeType[key]), key)
	}

	fmt.Printf("\nSymbol kinds (%d):\n", len(fl.SymbolKind))
	for _, key := range sortedIconKeys(fl.SymbolKind) {
		fmt.Printf("  %s %s\n", renderIcon(fl.SymbolKind[key]), key)
	}

	return nil
}

// renderIcon styles a glyph for terminal output. Colorless icons print
// bare.
func renderIcon(ic icons.Icon) string {
	glyph := string(ic.Glyph)
	if ic.Style == nil || ic.Style.Color == "" {
		return glyph
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ic.Style.Color)).
		Render(glyph)
}

func sortedIconKeys(m map[string]icons.Icon) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
