package cli

import (
	"aura/internal/export"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export persisted test cases as ticket payloads",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	repo := openRepository(cfg)

	records, _, err := repo.ReadTestCases()
	if err != nil {
		exitErr("read test cases", err)
	}

	printDoc(export.NewBatch(records))
}
