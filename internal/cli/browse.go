package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kyodera/kanjipath/pkg/dag"
	"github.com/kyodera/kanjipath/pkg/kanji"
)

var (
	colorCyan  = lipgloss.Color("36")  // primary
	colorWhite = lipgloss.Color("255") // values
	colorDim   = lipgloss.Color("240") // muted text

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNormal   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel    = lipgloss.NewStyle().Foreground(colorDim).Width(11)
	styleDetail   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// newBrowseCmd creates the browse command, an interactive viewer over the
// ordered character list.
func newBrowseCmd(cfg *Config) *cobra.Command {
	var (
		method     string
		characters string
		terms      string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the study order interactively",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runBrowse(c.Context(), cfg, method, characters, terms)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "popularity", "ranking method (popularity|descendants|strokes|none)")
	cmd.Flags().StringVar(&characters, "characters", "", "character list file (overrides config)")
	cmd.Flags().StringVar(&terms, "terms", "", "EDICT2 dictionary file (overrides config)")

	return cmd
}

func runBrowse(ctx context.Context, cfg *Config, method, characters, terms string) error {
	records, err := loadRecords(ctx, cfg, characters)
	if err != nil {
		return err
	}
	cmp, err := comparatorFor(ctx, cfg, method, terms)
	if err != nil {
		return err
	}
	graph, err := kanji.BuildGraph(records)
	if err != nil {
		return err
	}
	if err := graph.OrderBy(cmp); err != nil {
		return err
	}

	model := newBrowseModel(method, graph.Nodes())
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// browseModel is the bubbletea model for the ordered character browser. The
// left pane lists characters in study order; the right pane shows details
// for the one under the cursor.
type browseModel struct {
	method string
	nodes  []dag.View[kanji.Character]
	cursor int
	offset int
	height int
}

func newBrowseModel(method string, nodes []dag.View[kanji.Character]) browseModel {
	return browseModel{method: method, nodes: nodes, height: 15}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
			}
		case "pgup":
			m.cursor = max(0, m.cursor-m.height)
		case "pgdown":
			m.cursor = min(len(m.nodes)-1, m.cursor+m.height)
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.nodes) - 1
		}
		m.clampOffset()
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-6)
		m.clampOffset()
	}
	return m, nil
}

func (m *browseModel) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m browseModel) View() string {
	if len(m.nodes) == 0 {
		return styleDim.Render("No characters loaded.")
	}

	var list strings.Builder
	end := min(m.offset+m.height, len(m.nodes))
	for i := m.offset; i < end; i++ {
		ch := m.nodes[i].Value()
		line := fmt.Sprintf("%4d  %s  %s", i+1, string(ch.Writing), ch.Meaning)
		if i == m.cursor {
			list.WriteString(styleSelected.Render("▸ " + line))
		} else {
			list.WriteString(styleNormal.Render("  " + line))
		}
		list.WriteString("\n")
	}

	header := styleTitle.Render(fmt.Sprintf("Study order (%s)", m.method)) + "\n" +
		styleDim.Render("↑/↓ navigate  g/G first/last  q quit") + "\n\n"
	panes := lipgloss.JoinHorizontal(lipgloss.Top, list.String(), m.detail())
	return header + panes
}

// detail renders the right-hand pane for the character under the cursor.
func (m browseModel) detail() string {
	node := m.nodes[m.cursor]
	ch := node.Value()

	row := func(label, value string) string {
		return styleLabel.Render(label) + styleNormal.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(string(ch.Writing)) + "\n\n")
	b.WriteString(row("Meaning", ch.Meaning))
	b.WriteString(row("Readings", strings.Join(ch.Readings, "、")))
	b.WriteString(row("Strokes", fmt.Sprintf("%d", ch.StrokeCount)))
	if ch.IsRadical {
		b.WriteString(row("Radical", "yes"))
	}
	if ch.Note != "" {
		b.WriteString(row("Note", ch.Note))
	}
	b.WriteString(row("Components", joinWritings(node.Parents())))
	b.WriteString(row("Used in", joinWritings(node.Children())))
	b.WriteString(row("Unlocks", fmt.Sprintf("%d", node.DescendantCount())))
	return styleDetail.Render(strings.TrimRight(b.String(), "\n"))
}

func joinWritings(views []dag.View[kanji.Character]) string {
	if len(views) == 0 {
		return "—"
	}
	var b strings.Builder
	for _, v := range views {
		b.WriteRune(v.Value().Writing)
	}
	return b.String()
}
