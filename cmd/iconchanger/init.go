package main

import (
	"fmt"
	"os"

	"github.com/lewtec/iconchanger/iconchanger"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample settings file, the icons folder and the mode config",
	Long: `Initialize a new icon changer setup by creating:
- A sample settings file (iconchanger.yaml)
- The icons directory
- The mode config file with sequential-mode=false

Example:
  iconchanger init
  iconchanger init --settings server/iconchanger.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsFile, _ := cmd.Flags().GetString("settings")
		out := cmd.OutOrStdout()

		if _, err := os.Stat(settingsFile); os.IsNotExist(err) {
			fmt.Fprintf(out, "Creating sample settings file: %s\n", settingsFile)
			if err := iconchanger.WriteSampleSettings(settingsFile); err != nil {
				return fmt.Errorf("failed to create settings file: %w", err)
			}
		} else {
			fmt.Fprintf(out, "Settings file already exists: %s\n", settingsFile)
		}

		settings, err := iconchanger.LoadSettings(settingsFile)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		fmt.Fprintf(out, "Creating icons directory: %s\n", settings.IconsDir)
		if err := iconchanger.EnsureDir(settings.IconsDir); err != nil {
			return err
		}

		mode, err := iconchanger.NewConfigStore(settings.ConfigFile).Load()
		if err != nil {
			return fmt.Errorf("failed to load mode config: %w", err)
		}
		fmt.Fprintf(out, "Mode config %s: %s\n", settings.ConfigFile, mode)

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  1. Put 64x64 .png icons into %s\n", settings.IconsDir)
		fmt.Fprintf(out, "  2. Start the server: iconchanger %s\n", settingsFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("settings", "s", "iconchanger.yaml", "Settings file to create")
}
