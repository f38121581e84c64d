package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kbencic/budgeteer/internal/budget"
	"github.com/kbencic/budgeteer/internal/classify"
	"github.com/kbencic/budgeteer/internal/model"
	"github.com/kbencic/budgeteer/internal/revolut"
)

// RenderValidation formats a structural CSV check for the terminal.
func RenderValidation(result revolut.ValidationResult) string {
	var b strings.Builder

	if result.IsValid {
		b.WriteString(SuccessStyle.Render("✓ CSV structure looks valid"))
		b.WriteString("\n")
	}
	for _, e := range result.Errors {
		b.WriteString(ErrorStyle.Render("✗ " + e))
		b.WriteString("\n")
	}
	for _, w := range result.Warnings {
		b.WriteString(WarningStyle.Render("⚠ " + w))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderAnalysis formats a completed statement analysis.
func RenderAnalysis(data model.ImportedSpendingData, stats classify.Statistics, currency string) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Spending analysis — %s", data.FileName)))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%s to %s (%d months) • %d transactions • %s%.2f total",
		data.DateRange.Start, data.DateRange.End, data.MonthsInRange,
		data.TotalTransactions, currency, data.TotalExpenses)))
	b.WriteString("\n\n")

	// Categories sorted by total spend, largest first.
	categories := make([]string, 0, len(data.CategoryBreakdown))
	for category := range data.CategoryBreakdown {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return data.CategoryBreakdown[categories[i]].Total > data.CategoryBreakdown[categories[j]].Total
	})

	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-18s %10s %6s %10s %10s", "Category", "Total", "Count", "Avg", "Monthly")))
	b.WriteString("\n")
	for _, category := range categories {
		d := data.CategoryBreakdown[category]
		b.WriteString(fmt.Sprintf("%-18s %s%9.2f %6d %s%9.2f %s%9.2f\n",
			category, currency, d.Total, d.Count, currency, d.Average, currency, d.MonthlyAverage))
		for _, m := range d.TopMerchants {
			b.WriteString(SubtleStyle.Render(fmt.Sprintf("    %s — %s%.2f (%d)", m.Name, currency, m.Amount, m.Count)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Categorized %d of %d (%.1f%%), %d high / %d medium / %d low confidence\n",
		stats.Categorized, stats.Total, stats.CategorizationRate,
		stats.HighConfidence, stats.MediumConfidence, stats.LowConfidence))

	if len(data.Uncategorized) > 0 {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render(fmt.Sprintf("⚠ %d uncategorized transactions:", len(data.Uncategorized))))
		b.WriteString("\n")
		for _, txn := range data.Uncategorized {
			b.WriteString(SubtleStyle.Render(fmt.Sprintf("    %s — %s%.2f", txn.Description, currency, -txn.Amount)))
			b.WriteString("\n")
		}
		b.WriteString(SubtleStyle.Render("  Use 'budgeteer mappings add' to categorize them, then re-run analyze."))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderCalculated formats the derived budget values.
func RenderCalculated(state model.BudgetState, calc model.CalculatedValues, currency string) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Budget overview"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Income               %s%.2f\n", currency, state.Income))
	b.WriteString(fmt.Sprintf("Total expenses       %s%.2f (essential %s%.2f, discretionary %s%.2f)\n",
		currency, calc.TotalExpenses, currency, calc.EssentialTotal, currency, calc.DiscretionaryTotal))

	surplusLine := fmt.Sprintf("Surplus              %s%.2f", currency, calc.Surplus)
	if calc.Surplus < 0 {
		b.WriteString(ErrorStyle.Render(surplusLine + "  (deficit)"))
		b.WriteString("\n")
	} else {
		b.WriteString(surplusLine)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Invested monthly     %s%.0f (split %.0f%%)\n", currency, calc.TotalInvestmentAmount, state.InvestmentSplit))
	b.WriteString(fmt.Sprintf("  ETF %s%.0f • BTC %s%.0f • ETH %s%.0f\n",
		currency, calc.ETFAmount, currency, calc.BTCAmount, currency, calc.ETHAmount))
	b.WriteString(fmt.Sprintf("Buffer               %s%.2f\n", currency, calc.Buffer))
	b.WriteString(fmt.Sprintf("Savings rate         %.1f%%\n", calc.SavingsRate))

	return b.String()
}

// RenderYearProjection formats the 12-month simulation.
func RenderYearProjection(p budget.YearProjection, currency string) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("12-month projection"))
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-5s %10s %10s %10s %10s %12s", "Month", "ETF", "BTC", "ETH", "Buffer", "Total value")))
	b.WriteString("\n")
	for i, label := range p.Labels {
		b.WriteString(fmt.Sprintf("%-5s %10.0f %10.0f %10.0f %10.0f %12.0f\n",
			label, p.ETF[i], p.BTC[i], p.ETH[i], p.Buffer[i], p.TotalValue[i]))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Invested %s%.0f, ending value %s%.0f, growth %s%.0f\n",
		currency, p.TotalInvested, currency, p.EndingAmount, currency, p.Growth))
	if p.BufferLimitReachedMonth >= 0 {
		b.WriteString(SuccessStyle.Render(fmt.Sprintf("Buffer limit reached in %s; switched to 100%% investment.", p.Labels[p.BufferLimitReachedMonth])))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderDecadeProjection formats the 10-year estimate.
func RenderDecadeProjection(d budget.DecadeProjection, currency string) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("10-year projection"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Monthly contribution %s%.0f\n", currency, d.MonthlyAmount))
	b.WriteString(fmt.Sprintf("Total invested       %s%.0f\n", currency, d.TotalInvested))
	b.WriteString(fmt.Sprintf("Estimated value      %s%.0f\n", currency, d.EstimatedValue))
	b.WriteString(fmt.Sprintf("Estimated profit     %s%.0f\n", currency, d.Profit))

	return b.String()
}

// RenderCategories formats the expense catalog with current values.
func RenderCategories(expenses map[string]float64, currency string) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Expense categories"))
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-16s %-14s %10s %8s", "Category", "Group", "Current", "Max")))
	b.WriteString("\n")
	for _, cat := range model.ExpenseCategories {
		b.WriteString(fmt.Sprintf("%-16s %-14s %s%9.0f %8.0f\n",
			cat.ID, cat.Group, currency, expenses[cat.ID], cat.Max))
	}

	// Custom categories last, alphabetically.
	var custom []string
	for id := range expenses {
		if _, ok := model.CatalogCategory(id); !ok {
			custom = append(custom, id)
		}
	}
	sort.Strings(custom)
	for _, id := range custom {
		b.WriteString(fmt.Sprintf("%-16s %-14s %s%9.0f %8s\n", id, "custom", currency, expenses[id], "-"))
	}

	return b.String()
}

// RenderMappings formats the custom merchant mappings.
func RenderMappings(mappings map[string]string) string {
	if len(mappings) == 0 {
		return SubtleStyle.Render("No custom mappings.") + "\n"
	}

	descriptions := make([]string, 0, len(mappings))
	for d := range mappings {
		descriptions = append(descriptions, d)
	}
	sort.Strings(descriptions)

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Custom merchant mappings"))
	b.WriteString("\n")
	for _, d := range descriptions {
		b.WriteString(fmt.Sprintf("%-40s → %s\n", d, mappings[d]))
	}
	return b.String()
}
