package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/analyze"
	"github.com/kbencic/budgeteer/internal/classify"
	"github.com/kbencic/budgeteer/internal/cli"
	"github.com/kbencic/budgeteer/internal/common"
	"github.com/kbencic/budgeteer/internal/revolut"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file.csv]",
		Short: "Analyze a bank statement CSV export",
		Long: `Parse a Revolut CSV export, categorize every expense transaction and
show per-category spending statistics. Custom merchant mappings stored with
'budgeteer mappings add' are applied automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().Bool("save", true, "persist the analysis for preset/baseline commands")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")
	filePath := args[0]

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	csvText := string(content)

	result := revolut.Validate(csvText)
	fmt.Print(cli.RenderValidation(result))
	if !result.IsValid {
		return common.NewUserError("CSV validation failed", common.ErrInvalidCSV)
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

	var bar *progressbar.ProgressBar
	analyzer := analyze.New(analyze.WithProgress(func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Classifying transactions..."),
			)
		}
		_ = bar.Set(done)
	}))

	data := analyzer.Analyze(csvText, filePath, mappings)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	// Stats need the classified list again; re-running the pure pipeline
	// is cheap at statement sizes.
	parser := revolut.NewParser()
	classifier := classify.NewClassifier(classify.DefaultRules())
	categorized := classify.ApplyMappings(classifier.ClassifyAll(parser.Parse(csvText)), mappings)
	stats := classify.Stats(categorized)

	fmt.Print(cli.RenderAnalysis(data, stats, currencySymbol()))

	if save {
		if err := store.SaveImportedData(ctx, data); err != nil {
			return err
		}
		fmt.Println(cli.SubtleStyle.Render("Analysis saved. Apply it with 'budgeteer baseline'."))
	}

	return nil
}
