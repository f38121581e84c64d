package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/analyze"
	"github.com/kbencic/budgeteer/internal/cli"
	"github.com/kbencic/budgeteer/internal/classify"
	"github.com/kbencic/budgeteer/internal/model"
	"github.com/kbencic/budgeteer/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Analyze OFX/QFX statement exports",
		Long: `Analyze financial transactions from OFX or QFX (Quicken) files exported
from your bank. Multiple files are merged into one analysis.

Examples:
  budgeteer import-ofx ~/Downloads/statement_jan.qfx
  budgeteer import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().Bool("save", true, "persist the analysis for preset/baseline commands")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}
	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	parser := ofx.NewParser()
	var transactions []model.Transaction
	for _, file := range allFiles {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}
		txns, err := parser.ParseFile(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		transactions = append(transactions, txns...)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	mappings, err := store.ListMappings(ctx)
	if err != nil {
		return err
	}

	fileName := filepath.Base(allFiles[0])
	if len(allFiles) > 1 {
		fileName = fmt.Sprintf("%s (+%d more)", fileName, len(allFiles)-1)
	}

	analyzer := analyze.New()
	data := analyzer.AnalyzeTransactions(transactions, fileName, mappings)

	classifier := classify.NewClassifier(classify.DefaultRules())
	stats := classify.Stats(classify.ApplyMappings(classifier.ClassifyAll(transactions), mappings))

	fmt.Print(cli.RenderAnalysis(data, stats, currencySymbol()))

	if save {
		if err := store.SaveImportedData(ctx, data); err != nil {
			return err
		}
		fmt.Println(cli.SubtleStyle.Render("Analysis saved. Apply it with 'budgeteer baseline'."))
	}

	return nil
}
