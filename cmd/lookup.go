package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.dot.industries/glyphs/internal/icons"
)

var flagLookupFlavor string

func init() {
	lookupCmd.Flags().StringVarP(&flagLookupFlavor, "flavor", "f", icons.DefaultName, "flavor to look icons up in")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <path>...",
	Short: "Print the icon a flavor assigns to each file path",
	Long: `Looks each path up by its extension, or by full file name for
dotfiles and extension-less names. Paths the flavor has no icon for are
printed without one; that is not an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	th, err := loadTheme()
	if err != nil {
		return err
	}

	fl, err := newMaterializer().Materialize(flagLookupFlavor, th, supportsTrueColor())
	if err != nil {
		return err
	}

	for _, path := range args {
		ic, ok := fl.ForPath(path)
		if !ok {
			fmt.Printf("  %s\n", path)
			continue
		}
		fmt.Printf("%s %s\n", renderIcon(ic), path)
	}

	return nil
}
