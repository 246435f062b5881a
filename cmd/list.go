package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available icon flavors and themes",
	Long: `Shows every flavor name discoverable across the builtin registry,
the builtin directory, and the user directory. A name present in more
than one place is the same logical flavor and appears once.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	flavors := newMaterializer().Names()
	themes := newThemeLoader().Names()

	log.Debug().
		Int("flavors", len(flavors)).
		Int("themes", len(themes)).
		Msg("discovered documents")

	fmt.Printf("Icon flavors (%d):\n", len(flavors))
	for _, name := range flavors {
		fmt.Printf("  %s\n", name)
	}

	fmt.Printf("\nThemes (%d):\n", len(themes))
	for _, name := range themes {
		fmt.Printf("  %s\n", name)
	}

	return nil
}
