package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List available categories and their items",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cats, err := loadCatalogs()
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(cats)
			}

			for _, cat := range cats {
				fmt.Printf("%s (%s) - %d items\n", cat.Name, cat.ID, len(cat.Items))
				for _, it := range cat.Items {
					fmt.Printf("  %s %s (%s)\n", it.Glyph, it.Name, it.ID)
				}
			}
			return nil
		},
	}
}
