package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/monitor"
	"resolution-monitoring/internal/reconcile"
)

const headerHeight = 6

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func padToWidth(s string, width int) string {
	current := runewidth.StringWidth(s)
	if current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}

// truncateToWidth cuts s to at most width display cells, marking the cut with "...".
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func separatorLine(width int) string {
	if width < 2 {
		return strings.Repeat("─", width)
	}
	return "├" + strings.Repeat("─", width-2) + "┤"
}

func formatInfoLine(text string, width int) string {
	if width < 2 {
		return padToWidth(text, width)
	}
	return "│" + padToWidth(truncateToWidth(text, width-2), width-2) + "│"
}

// UpdateMsg is sent when a new snapshot is available
type UpdateMsg struct {
	Snapshot monitor.Snapshot
}

// Model holds the TUI state
type Model struct {
	snapshot monitor.Snapshot
	loaded   bool
	selected int // index into snapshot.Resolutions
	width    int
	height   int
}

// NewModel creates a new TUI model
func NewModel() Model {
	return Model{}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case UpdateMsg:
		m.snapshot = msg.Snapshot
		m.loaded = true
		if n := len(m.snapshot.Resolutions); m.selected >= n {
			m.selected = max(n-1, 0)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			if m.selected < len(m.snapshot.Resolutions)-1 {
				m.selected++
			}
		case "left", "h", "shift+tab":
			if m.selected > 0 {
				m.selected--
			}
		}
	}

	return m, nil
}

func (m Model) current() (monitor.ResolutionView, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Resolutions) {
		return monitor.ResolutionView{}, false
	}
	return m.snapshot.Resolutions[m.selected], true
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || !m.loaded {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderVoters())
}

// renderHeader renders the account, network and resolution columns
func (m Model) renderHeader() string {
	colWidth := (m.width - 4) / 3
	rightColWidth := m.width - colWidth*2 - 4
	snap := m.snapshot

	account := "account: not connected"
	if snap.HasAccount {
		account = "account: " + ledger.FormatAddress(snap.Account.Hex())
	}
	roleNames := "roles: none"
	if names := snap.Roles.Names(); len(names) > 0 {
		roleNames = "roles: " + strings.Join(names, ", ")
	}
	admin := "administration: hidden"
	if snap.Roles.CanAdminister() {
		admin = "administration: visible"
	}
	leftLines := []string{
		account,
		fmt.Sprintf("whitelisted: %s", yesNo(snap.Roles.IsWhitelisted)),
		roleNames,
		admin,
	}

	middleLines := []string{
		fmt.Sprintf("network: %s (%d)", snap.Network.Name, snap.Network.ChainID),
		"contract: " + ledger.FormatAddress(snap.Contract.Hex()),
		"updated: " + snap.Time.Format("15:04:05"),
	}

	rightLines := []string{"no resolution"}
	if view, ok := m.current(); ok {
		rightLines = []string{
			fmt.Sprintf("resolution #%d (%d/%d)", view.ID, m.selected+1, len(snap.Resolutions)),
			fmt.Sprintf("voters: %d", view.Votes.Total()),
		}
		if view.HasTally {
			rightLines = append(rightLines, fmt.Sprintf("tally: pour=%d contre=%d neutre=%d",
				view.Tally.Pour, view.Tally.Contre, view.Tally.Neutre))
		}
		if view.Synthetic {
			rightLines = append(rightLines, "demonstration data")
		}
	}

	maxLines := max(len(leftLines), len(middleLines), len(rightLines))
	var rows []string
	for i := 0; i < maxLines; i++ {
		rows = append(rows, fmt.Sprintf("│ %s │ %s │ %s │",
			padToWidth(truncateToWidth(lineAt(leftLines, i), colWidth-2), colWidth-2),
			padToWidth(truncateToWidth(lineAt(middleLines, i), colWidth-2), colWidth-2),
			padToWidth(truncateToWidth(lineAt(rightLines, i), rightColWidth-2), rightColWidth-2)))
	}

	topBorder := fmt.Sprintf("┌%s┬%s┬%s┐",
		strings.Repeat("─", colWidth),
		strings.Repeat("─", colWidth),
		strings.Repeat("─", rightColWidth))

	separator := fmt.Sprintf("├%s┴%s┴%s┤",
		strings.Repeat("─", colWidth),
		strings.Repeat("─", colWidth),
		strings.Repeat("─", rightColWidth))

	return topBorder + "\n" + strings.Join(rows, "\n") + "\n" + separator
}

// renderVoters renders one column of voters per vote type
func (m Model) renderVoters() string {
	view, ok := m.current()
	if !ok {
		return formatInfoLine("no resolution to show", m.width) + "\n" + bottomBorder(m.width)
	}

	cols := len(ledger.VoteTypes)
	separatorWidth := runewidth.StringWidth("│")
	colWidth := (m.width - separatorWidth*(cols+1)) / cols
	if colWidth < 16 {
		colWidth = 16
	}

	formatRow := func(cells []string) string {
		for i, cell := range cells {
			cells[i] = padToWidth(truncateToWidth(cell, colWidth), colWidth)
		}
		line := "│" + strings.Join(cells, "│") + "│"
		if w := runewidth.StringWidth(line); w < m.width {
			line = line[:len(line)-len("│")] + strings.Repeat(" ", m.width-w) + "│"
		}
		return line
	}

	var lines []string
	heading := make([]string, 0, cols)
	for _, vt := range ledger.VoteTypes {
		heading = append(heading, fmt.Sprintf(" %s (%d)", vt, len(view.Votes[vt])))
	}
	lines = append(lines, titleStyle.Render(formatRow(heading)))

	rows := 0
	for _, vt := range ledger.VoteTypes {
		rows = max(rows, len(view.Votes[vt]))
	}
	// header, voter heading, legend and borders
	if maxRows := m.height - headerHeight - 4; maxRows >= 0 && rows > maxRows {
		rows = maxRows
	}

	for row := 0; row < rows; row++ {
		cells := make([]string, 0, cols)
		for _, vt := range ledger.VoteTypes {
			entries := view.Votes[vt]
			if row >= len(entries) {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, voterCell(row, entries[row], m.snapshot))
		}
		line := formatRow(cells)
		if rowHasPending(view.Votes, row) {
			line = pendingStyle.Render(line)
		}
		lines = append(lines, line)
	}

	legend := "←/→ resolution, q quit | ✅ on ledger, ⏳ pending, * you"
	if view.Synthetic {
		legend = "DEMO DATA | " + legend
	}

	return strings.Join(lines, "\n") + "\n" + separatorLine(m.width) + "\n" + formatInfoLine(legend, m.width) + "\n" + bottomBorder(m.width)
}

func voterCell(row int, e reconcile.VoterEntry, snap monitor.Snapshot) string {
	you := " "
	if snap.HasAccount && e.Address == snap.Account {
		you = "*"
	}
	return fmt.Sprintf("%3d %s %s%s", row+1, voteSymbol(e), ledger.FormatAddress(e.Address.Hex()), you)
}

func rowHasPending(g reconcile.Grouping, row int) bool {
	for _, entries := range g {
		if row < len(entries) && entries[row].Pending {
			return true
		}
	}
	return false
}

// voteSymbol returns the symbol for a voter entry
func voteSymbol(e reconcile.VoterEntry) string {
	if e.Pending {
		return "⏳"
	}
	return "✅"
}

func bottomBorder(width int) string {
	if width < 2 {
		return strings.Repeat("─", width)
	}
	return "└" + strings.Repeat("─", width-2) + "┘"
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Run starts the TUI program and feeds it snapshots until updateCh is closed.
func Run(updateCh <-chan monitor.Snapshot) error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())

	go func() {
		for snap := range updateCh {
			p.Send(UpdateMsg{Snapshot: snap})
		}
		// Channel closed, quit TUI
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
