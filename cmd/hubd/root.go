package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/infrastructure/config"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "hubd",
	Short: "Realtime messaging hub for personal, group, and community channels",
}

// Execute runs the root command; called by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}

func init() {
	// Deferred so --config can override the path before viper reads it.
	cobra.OnInitialize(func() {
		if err := config.Init(configFile); err != nil {
			log.Fatal(err.Error())
		}
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a TOML config file")
}
