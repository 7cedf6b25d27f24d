// Package categorize handles item categorization commands
package categorize

import (
	"fmt"

	"hylin/einvoice-csv/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize an item name using the keyword rules",
	Long: `Categorize an item name using the configured keyword groups. Useful
for checking which category a purchase would land in.

Example:
  einvoice-csv categorize --item "拿鐵咖啡"`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.ItemName, "item", "n", "", "Item name to categorize")
	_ = Cmd.MarkFlagRequired("item")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	if root.ItemName == "" {
		return fmt.Errorf("item name is required (use --item)")
	}

	category := root.App.GetCategorizer().Categorize(root.ItemName)
	fmt.Printf("%s -> %s\n", root.ItemName, category)
	return nil
}
