package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkellis099/Model-Screener/internal/pkg/config"
	"github.com/dkellis099/Model-Screener/internal/store"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Print the sector index of the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dataStore := store.New(cfg.Dataset.Path)
		if err := dataStore.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}

		for _, s := range dataStore.Sectors() {
			fmt.Println(s)
		}
		return nil
	},
}
