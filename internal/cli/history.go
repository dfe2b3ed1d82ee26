package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"interview-practice/internal/export"
	"interview-practice/internal/ui"
)

var (
	historyLimit int

	exportFormat string
	exportOut    string
	exportCopy   bool
)

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of sessions to list (0 = all)")

	exportCmd.Flags().StringVar(&exportFormat, "format", "md", "export format: md or json")
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "directory to write the export to")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "copy the export to the clipboard instead of writing a file")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed interview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := deps.openHistory()
		if err != nil {
			return err
		}
		if h == nil {
			// история отключена: показываем сохраненные JSON файлы
			ids, err := deps.files.ListResults()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Print(ui.RenderHistory(nil))
				return nil
			}
			fmt.Printf("📂 Results in %s:\n", deps.files.Dir())
			for _, id := range ids {
				fmt.Printf("• %s\n", id)
			}
			return nil
		}
		defer h.Close()

		entries, err := h.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderHistory(entries))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <interview-id>",
	Short: "Show the summary and transcript of a completed session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := deps.loadResult(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(ui.RenderSummary(result.Summary))
		fmt.Println(ui.RenderTranscript(result.Timeline()))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <interview-id>",
	Short: "Export a session summary as Markdown or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		result, err := deps.loadResult(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if exportCopy {
			data, err := export.Render(result.Summary, format)
			if err != nil {
				return err
			}
			if err := export.CopyToClipboard(string(data)); err != nil {
				fmt.Fprintf(os.Stderr, "⚠️ Could not copy to clipboard: %v\n", err)
			} else {
				fmt.Println("📋 Summary copied to clipboard!")
				return nil
			}
		}

		path, err := export.WriteFile(exportOut, result.Summary, format, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("📄 Summary written to %s\n", path)
		return nil
	},
}
