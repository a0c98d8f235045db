package main

import (
	"fmt"
	"os"

	"github.com/lewtec/iconchanger/internal/repository"
	"github.com/spf13/cobra"
)

// iconsCmd represents the icons command
var iconsCmd = &cobra.Command{
	Use:   "icons <database>",
	Short: "List the icon catalog",
	Long:  `List every icon the server has loaded, in rotation order, with how many status responses carried it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); os.IsNotExist(err) {
			return fmt.Errorf("database not found: %s", args[0])
		}
		db, err := repository.Open(args[0])
		if err != nil {
			return err
		}
		defer db.Close()

		icons, err := repository.NewIconRepository(db).List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "position\tfilename\tserved\tsha256")
		for _, icon := range icons {
			position := fmt.Sprint(icon.Position)
			if !icon.Active {
				position = "-"
			}
			fmt.Fprintf(out, "%s\t%s\t%d\t%s\n", position, icon.Filename, icon.Served, icon.SHA256)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iconsCmd)
}
