package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"aura/internal/core"
	"aura/internal/repository"
	"aura/pkg/schema"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "process [file...]",
		Short: "Generate test cases from requirement files (use - for stdin)",
		Long: "Reads requirement statements, one per non-empty line, generates test " +
			"cases for each, and persists the session artifacts under .aura/.",
		Args: cobra.MinimumNArgs(1),
		Run:  runProcess,
	}

	RootCmd.AddCommand(cmd)
}

func runProcess(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	gen, err := newGenerator(cfg)
	if err != nil {
		exitErr("create generator", err)
	}

	repo := openRepository(cfg)
	lock := repository.NewFileLock(repo.LockPath(), "cli")
	if err := lock.Acquire(); err != nil {
		exitErr("acquire lock", err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: release lock: %v\n", err)
		}
	}()

	requirements := 0
	for _, arg := range args {
		lines, source, err := readRequirements(arg, cfg.SourceLabel)
		if err != nil {
			exitErr("read requirements", err)
		}
		for _, line := range lines {
			gen.Process(line, source)
			requirements++
		}
	}

	session := gen.Session()
	report := core.BuildReport(session)
	if err := repo.WriteSessionArtifacts(session.ID(), session.Records(), session.Ledger(), report); err != nil {
		exitErr("write artifacts", err)
	}

	printDoc(map[string]any{
		"session_id":   session.ID(),
		"requirements": requirements,
		"test_cases":   report.TotalTestCases,
		"artifacts":    repo.Dir(),
	})
}

// readRequirements reads one requirement per non-empty line. The source label
// is the filename unless a label was set explicitly.
func readRequirements(arg, defaultSource string) ([]string, string, error) {
	var reader io.Reader
	source := defaultSource

	if arg == "-" {
		reader = os.Stdin
		source = defaultSource
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		reader = f
		if sourceLabel == "" {
			source = arg
		}
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, "", err
	}
	if len(source) > schema.SourceLabelMax {
		source = source[:schema.SourceLabelMax]
	}
	return lines, source, nil
}
