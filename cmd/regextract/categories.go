package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the recognized categories",
	Long: `List every category extract and follow recognize, in output order,
including those defined by --patterns files.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().Bool("regex", false, "Also print each category's regular expression")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, vip)
	if err != nil {
		return err
	}
	defer a.Close()

	showRegex, _ := cmd.Flags().GetBool("regex")

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, info := range a.ex.Describe() {
		source := "builtin"
		if !info.Builtin {
			source = "custom"
		}
		if showRegex {
			_, err = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, source, info.Description, info.Pattern)
		} else {
			_, err = fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, source, info.Description)
		}
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
