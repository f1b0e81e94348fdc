package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the persisted traceability report",
		Run:   runReport,
	}

	RootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	repo := openRepository(cfg)

	report, err := repo.ReadReport()
	if err != nil {
		exitErr("read report", err)
	}

	printDoc(report)
}
