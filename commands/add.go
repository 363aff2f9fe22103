package commands

import (
	"github.com/spf13/cobra"

	"graphotimer/internal/core/model"
	"graphotimer/internal/data/excel"
	"graphotimer/internal/data/store"
	"graphotimer/internal/util"
)

var (
	addDate   string
	addStart  string
	addEnd    string
	addAction string
	addExcel  string

	addCmd = &cobra.Command{
		Use:   "add",
		Short: "Record one activity entry",
		RunE:  runAdd,
	}
)

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "today",
		"Date (default: today, format: YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addStart, "start-time", "",
		"Start time (HH:MM)")
	addCmd.Flags().StringVar(&addEnd, "end-time", "",
		"End time (HH:MM)")
	addCmd.Flags().StringVar(&addAction, "action-name", "",
		"Action name")
	addCmd.Flags().StringVar(&addExcel, "excel", "",
		"Excel filename to also save the entry to")
	addCmd.MarkFlagRequired("start-time")
	addCmd.MarkFlagRequired("end-time")
	addCmd.MarkFlagRequired("action-name")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := addDate
	if date == "today" {
		date = util.GetTimeProvider().Today()
	}

	entry, err := model.NewEntry(date, addStart, addEnd, addAction)
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Store, cfg.DataFile)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Append(entry); err != nil {
		return err
	}

	if addExcel != "" {
		if err := excel.AppendEntry(addExcel, entry); err != nil {
			return err
		}
		util.LogInfof("Entry saved to %s", addExcel)
	}

	util.LogInfof("Added: %s (%.0f minutes)", entry.ActionName, entry.DurationMinutes)
	cmd.Printf("Added: %s (%.0f minutes)\n", entry.ActionName, entry.DurationMinutes)
	return nil
}
