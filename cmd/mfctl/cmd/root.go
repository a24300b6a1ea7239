// Package cmd - mfctl CLI commands.
package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mfctl",
	Short: "Magic Formula screener dashboard - CLI",
	Long: `Magic Formula screener dashboard - CLI

Commands:
    serve       Run the dashboard API server
    export      Export the visible ranking slice as CSV
    sectors     Print the sector index of the dataset
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sectorsCmd)
}

// initConfig reads the .env file if present; plain environment variables
// work too.
func initConfig() error {
	path := cfgFile
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if verbose {
			fmt.Println("Warning: .env file not found, using environment variables")
		}
	}
	return nil
}
