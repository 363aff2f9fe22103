package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"graphotimer/internal/data/excel"
	"graphotimer/internal/data/store"
	"graphotimer/internal/util"
)

var (
	exportExcel string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export all entries to an Excel workbook",
		RunE:  runExport,
	}
)

func init() {
	exportCmd.Flags().StringVar(&exportExcel, "excel", "",
		"Excel filename to write")
	exportCmd.MarkFlagRequired("excel")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := store.Open(cfg.Store, cfg.DataFile)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entries to export")
	}

	if err := excel.WriteAll(exportExcel, entries); err != nil {
		return err
	}
	util.LogInfof("Exported %d entries to %s", len(entries), exportExcel)
	cmd.Printf("Exported %d entries to %s\n", len(entries), exportExcel)
	return nil
}
