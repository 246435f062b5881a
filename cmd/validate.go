package cmd

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// validateConcurrency bounds how many documents are checked at once.
const validateConcurrency = 8

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every discoverable flavor and theme",
	Long: `Resolves each icon flavor and theme through its inheritance chain
and checks it against the strict schema. Reports parse errors, bad
inherits references, inheritance cycles, and unknown fields.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	m := newMaterializer()
	tl := newThemeLoader()

	flavors := m.Names()
	themes := tl.Names()

	var mu sync.Mutex
	failures := make(map[string]error)

	g := new(errgroup.Group)
	g.SetLimit(validateConcurrency)

	for _, name := range flavors {
		name := name
		g.Go(func() error {
			if err := m.Check(name); err != nil {
				mu.Lock()
				failures["flavor "+name] = err
				mu.Unlock()
			}
			return nil
		})
	}

	for _, name := range themes {
		name := name
		g.Go(func() error {
			if _, err := tl.Load(name); err != nil {
				mu.Lock()
				failures["theme "+name] = err
				mu.Unlock()
			}
			return nil
		})
	}

	// Checks record failures instead of returning them, so Wait cannot
	// fail here.
	_ = g.Wait()

	log.Debug().
		Int("flavors", len(flavors)).
		Int("themes", len(themes)).
		Int("failures", len(failures)).
		Msg("validation finished")

	for _, name := range flavors {
		printResult("flavor", name, failures["flavor "+name])
	}
	for _, name := range themes {
		printResult("theme", name, failures["theme "+name])
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d document(s) have errors", len(failures))
	}

	fmt.Printf("\nAll %d documents are valid.\n", len(flavors)+len(themes))

	return nil
}

func printResult(family, name string, err error) {
	if err != nil {
		fmt.Printf("%s %s: ERROR - %s\n", family, name, err)
		return
	}
	fmt.Printf("%s %s: valid\n", family, name)
}
