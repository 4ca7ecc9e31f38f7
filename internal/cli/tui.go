package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/tileplan/pkg/pipeline"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// noCursor renders a comparison table without a selected row.
const noCursor = -1

// =============================================================================
// Comparison table
// =============================================================================

// comparisonRows builds one table row per planned pattern.
func comparisonRows(results []*pipeline.Result, cursor int) [][]string {
	rows := make([][]string, 0, len(results))
	for i, res := range results {
		d := res.Report.Results
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows = append(rows, []string{
			marker,
			res.Generation.Pattern,
			fmt.Sprintf("%d", res.Generation.FullTiles),
			fmt.Sprintf("%d", res.Generation.CutTiles),
			formatPercent(res.Generation.WastePercentage),
			fmt.Sprintf("%d", d.PurchaseTiles),
			string(d.Complexity),
			fmt.Sprintf("%.1f h", d.InstallTimeHours),
			formatMoney(d.Cost.Total),
		})
	}
	return rows
}

// bestIndex returns the result that needs the fewest tiles to buy.
func bestIndex(results []*pipeline.Result) int {
	best := 0
	for i, res := range results {
		if res.Report.Results.PurchaseTiles < results[best].Report.Results.PurchaseTiles {
			best = i
		}
	}
	return best
}

// comparisonTable renders results side by side. The cheapest pattern in
// tiles is highlighted; cursor marks the selected row, or noCursor for none.
func comparisonTable(results []*pipeline.Result, cursor int) string {
	best := bestIndex(results)
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Pattern", "Full", "Cut", "Waste", "Buy", "Complexity", "Time", "Cost").
		Rows(comparisonRows(results, cursor)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == cursor:
				return base.Foreground(colorCyan).Bold(true)
			case row == best:
				return base.Foreground(colorGreen)
			case col == 4 && results[row].Generation.WastePercentage > 20:
				return base.Foreground(colorYellow)
			}
			return base.Foreground(colorWhite)
		})

	return t.Render()
}

// =============================================================================
// patternPicker - Interactive pattern selection
// =============================================================================

// patternPicker is the bubbletea model for choosing one of the compared
// patterns.
type patternPicker struct {
	results  []*pipeline.Result
	cursor   int
	selected *pipeline.Result
}

func newPatternPicker(results []*pipeline.Result) patternPicker {
	return patternPicker{results: results, cursor: bestIndex(results)}
}

func (m patternPicker) Init() tea.Cmd {
	return nil
}

func (m patternPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.results) > 0 {
			m.selected = m.results[m.cursor]
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m patternPicker) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Pattern"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")
	b.WriteString(comparisonTable(m.results, m.cursor))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.results))))
	b.WriteString("\n")

	return b.String()
}
