package cmd

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <flavor>",
	Short: "Print the fully merged document for a flavor",
	Long: `Resolves a flavor's inheritance chain and prints the merged TOML
document before typed conversion. Useful for debugging which ancestor a
field comes from.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	doc, err := newMaterializer().Resolve(args[0])
	if err != nil {
		return err
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding merged document: %w", err)
	}

	fmt.Print(string(data))

	return nil
}
