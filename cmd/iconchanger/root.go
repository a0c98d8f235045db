/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/lewtec/iconchanger/iconchanger"
	"github.com/lewtec/iconchanger/internal/domain"
	"github.com/lewtec/iconchanger/internal/repository"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iconchanger [settings.yaml]",
	Short: "Serve a server status with a rotating icon",
	Long: strings.TrimSpace(`
Answer server status queries with a favicon picked from a folder of 64x64 PNG icons,
either at random or in a fixed order set by sequential-mode in the config file.
    `),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd, args)
		if err != nil {
			return err
		}

		changer, err := iconchanger.New(iconchanger.Options{
			IconsDir:   settings.IconsDir,
			ConfigFile: settings.ConfigFile,
		})
		if err != nil {
			return fmt.Errorf("failed to load icons: %w", err)
		}

		db, err := repository.Open(settings.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		catalog := repository.NewIconRepository(db)
		if err := syncCatalog(cmd.Context(), catalog, changer.Icons()); err != nil {
			return fmt.Errorf("failed to sync catalog: %w", err)
		}

		server := &iconchanger.StatusServer{
			Changer:  changer,
			Metadata: settings.Metadata(),
			Recorder: catalog,
		}

		log.Printf("Icons: %s", settings.IconsDir)
		log.Printf("Config: %s", settings.ConfigFile)
		log.Printf("Database: %s", settings.Database)
		log.Printf("Icons loaded: %d (%s)", len(changer.Icons()), changer.Mode())
		log.Printf("Starting server on: %s", settings.Addr)

		return http.ListenAndServe(settings.Addr, server.GetHTTPHandler())
	},
}

func loadSettings(cmd *cobra.Command, args []string) (*iconchanger.Settings, error) {
	if len(args) == 1 {
		settings, err := iconchanger.LoadSettings(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		return settings, nil
	}
	settings := iconchanger.DefaultSettings()
	if v, _ := cmd.Flags().GetString("icons"); v != "" {
		settings.IconsDir = v
	}
	if v, _ := cmd.Flags().GetString("config"); v != "" {
		settings.ConfigFile = v
	}
	if v, _ := cmd.Flags().GetString("database"); v != "" {
		settings.Database = v
	}
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		settings.Addr = v
	}
	return &settings, nil
}

func syncCatalog(ctx context.Context, catalog domain.IconRepository, icons iconchanger.Collection) error {
	entries := make([]*domain.Icon, len(icons))
	for i, icon := range icons {
		entries[i] = &domain.Icon{SHA256: icon.SHA256(), Filename: icon.Name()}
	}
	return catalog.Sync(ctx, entries)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("Error executing command: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Only used when no settings file is given
	rootCmd.Flags().StringP("icons", "i", "", "Icons directory path")
	rootCmd.Flags().StringP("config", "c", "", "Mode config file path")
	rootCmd.Flags().StringP("database", "d", "", "Catalog database file path")
	rootCmd.Flags().StringP("addr", "a", "", "Address to bind the status server")
}
