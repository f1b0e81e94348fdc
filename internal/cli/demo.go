package cli

import (
	"fmt"

	"aura/internal/core"
	"aura/internal/export"

	"github.com/spf13/cobra"
)

var demoRequirements = []struct {
	source string
	text   string
}{
	{
		source: "REQ-001",
		text: "The system must authenticate healthcare providers before allowing " +
			"access to patient records, in compliance with HIPAA regulations.",
	},
	{
		source: "REQ-002",
		text: "Clinicians shall retrieve lab results for a patient and the system " +
			"shall log every access to the medical record.",
	},
	{
		source: "REQ-003",
		text:   "The system shall generate a monthly usage summary for administrators.",
	},
}

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run canned healthcare requirements through the pipeline",
		Run:   runDemo,
	}

	RootCmd.AddCommand(cmd)
}

func runDemo(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	gen, err := newGenerator(cfg)
	if err != nil {
		exitErr("create generator", err)
	}

	fmt.Println("🏥 aura test case generation demo")
	fmt.Println("─────────────────────────────────")

	for _, req := range demoRequirements {
		records := gen.Process(req.text, req.source)
		fmt.Printf("\n%s: %d test case(s)\n", req.source, len(records))
		for _, record := range records {
			fmt.Printf("  %s  [%s/%s]  %s\n", record.ID, record.Priority, record.RiskLevel, record.Title)
		}
	}

	session := gen.Session()
	report := core.BuildReport(session)

	fmt.Printf("\nSession %s: %d test cases from %d sources\n",
		session.ID(), report.TotalTestCases, report.RequirementSources)

	fmt.Println("\nCompliance coverage:")
	for standard, count := range report.ComplianceCoverage {
		fmt.Printf("  %-32s %d\n", standard, count)
	}

	fmt.Println("\nRisk distribution:")
	for level, count := range report.RiskDistribution {
		fmt.Printf("  %-10s %d\n", level, count)
	}

	batch := export.NewBatch(session.Records())
	fmt.Printf("\nExport batch %s with %d ticket(s) ready.\n", batch.ID, len(batch.Tickets))
}
