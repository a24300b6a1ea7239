package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkellis099/Model-Screener/internal/export"
	"github.com/dkellis099/Model-Screener/internal/pkg/config"
	"github.com/dkellis099/Model-Screener/internal/service/screener"
	"github.com/dkellis099/Model-Screener/internal/store"
)

var (
	exportSector string
	exportLimit  int
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the visible ranking slice as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dataStore := store.New(cfg.Dataset.Path)
		if err := dataStore.Load(); err != nil {
			// Same policy as the server: an unreadable dataset exports
			// a header-only CSV rather than failing.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		records := dataStore.Records()

		// Drive the view the way the dashboard does: select a sector
		// (which resets the cursor to one page), then load more until
		// the requested limit or the filtered total is reached.
		view := screener.NewViewState()
		if exportSector != "" {
			view.SelectSector(exportSector)
		}
		total := view.FilteredTotal(records)
		for view.DisplayCount < exportLimit && view.DisplayCount < total {
			view.LoadMore(total)
		}
		visible := view.Visible(records)
		if len(visible) > exportLimit {
			visible = visible[:exportLimit]
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()

		if err := export.WriteCSV(f, visible); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}

		fmt.Printf("Exported %d rows to %s\n", len(visible), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSector, "sector", screener.SectorAll, "sector filter")
	exportCmd.Flags().IntVar(&exportLimit, "limit", screener.DefaultPageSize, "maximum rows to export")
	exportCmd.Flags().StringVar(&exportOut, "out", export.FileName, "output file path")
}
