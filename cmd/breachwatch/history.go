package breachwatch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/breachwatch/breachwatch/internal/audit"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scan runs",
		RunE:  runHistory,
	}
	cmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "max runs to show")
	rootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cwd, _ := os.Getwd()
	records, err := audit.NewLog(cwd).History()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println("No scan history.")
			return nil
		}
		return err
	}
	if len(records) == 0 {
		fmt.Println("No scan history.")
		return nil
	}
	if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
		records = records[:flagHistoryLimit]
	}
	table := tablewriter.NewTable(os.Stdout)
	table.Header("WHEN", "DATASET", "SELECTION", "MATCHES", "RISK")
	for _, r := range records {
		sel := r.Domain
		if sel == "" {
			sel = r.EmailList
		}
		_ = table.Append([]string{
			r.Timestamp.Format(time.RFC3339),
			r.Dataset,
			sel,
			strconv.Itoa(r.TotalMatches),
			fmt.Sprintf("%.2f (%s)", r.RiskScore, r.RiskBand),
		})
	}
	return table.Render()
}
