package main

import (
	"fmt"

	"github.com/go-git/go-billy/v6/osfs"
	"github.com/lewtec/iconchanger/iconchanger"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <icons-dir>",
	Short: "Validate every icon of a folder",
	Long:  `Report, in rotation order, which .png files of a folder would be used as icons and why the others are skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := osfs.New(args[0])
		paths, err := iconchanger.ListIconFiles(fsys, ".")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		valid := 0
		for _, path := range paths {
			icon, err := iconchanger.ValidateIcon(fsys, path)
			if err != nil {
				fmt.Fprintf(out, "SKIP\t%s\t%s\n", path, err)
				continue
			}
			valid++
			fmt.Fprintf(out, "OK\t%s\t%s\n", icon.Name(), icon.SHA256())
		}
		fmt.Fprintf(out, "%d of %d icons usable\n", valid, len(paths))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
