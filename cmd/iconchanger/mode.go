package main

import (
	"fmt"

	"github.com/lewtec/iconchanger/iconchanger"
	"github.com/spf13/cobra"
)

// modeCmd represents the mode command
var modeCmd = &cobra.Command{
	Use:   "mode [random|sequential]",
	Short: "Show or set the icon rotation mode",
	Long: `Without arguments print the mode stored in the config file, creating it when missing.
With an argument overwrite the config file. Running servers pick it up on restart.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"random", "sequential"},
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		store := iconchanger.NewConfigStore(configFile)

		if len(args) == 0 {
			mode, err := store.Load()
			if err != nil {
				return fmt.Errorf("failed to load mode config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		}

		mode, err := iconchanger.ParseMode(args[0])
		if err != nil {
			return err
		}
		if err := store.Save(mode); err != nil {
			return fmt.Errorf("failed to save mode config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "mode set to %s in %s\n", mode, configFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)

	modeCmd.Flags().StringP("config", "c", iconchanger.DefaultSettings().ConfigFile, "Mode config file path")
}
