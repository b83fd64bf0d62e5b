package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/kudos-clicker/internal/blurb"
	"github.com/tatianab/kudos-clicker/internal/engine"
)

// Blurber writes flavor text for an uploaded story.
type Blurber interface {
	Write(ctx context.Context, req blurb.Request) (string, error)
}

type pane int

const (
	paneTagShop pane = iota
	paneMyTags
	paneUpgrades
	paneCount
)

var paneTitles = [paneCount]string{"TAG SHOP", "MY TAGS", "UPGRADES"}

const maxLogLines = 200

type model struct {
	state   *engine.GameState
	blurber Blurber
	period  time.Duration

	pane    pane
	cursor  [paneCount]int
	ticking bool
	uploads int

	logLines []string
	viewport viewport.Model
	help     help.Model
	width    int
	height   int
}

var (
	kudosStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))
)

func NewModel(state *engine.GameState, blurber Blurber) model {
	return model{
		state:    state,
		blurber:  blurber,
		period:   state.Balance().TickPeriod,
		viewport: viewport.New(40, 20),
		help:     help.New(),
		logLines: []string{"Welcome! Press space to upload your first story."},
	}
}

// tickMsg is the automation timer firing.
type tickMsg time.Time

type blurbMsg struct {
	text string
	err  error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.45)
		m.viewport.Height = msg.Height - 4
		m.viewport.SetContent(m.renderLog())

	case tickMsg:
		m.ticking = false
		before := m.state.Kudos()
		m.state.Update(engine.Tick{At: time.Time(msg)})
		if gained := m.state.Kudos() - before; gained > 0 {
			m.appendLog(fmt.Sprintf("Your clones uploaded stories: +%.1f kudos", gained))
		}
		cmd := m.scheduleTick()
		return m, cmd

	case blurbMsg:
		if msg.err != nil {
			log.Printf("blurb failed: %v", msg.err)
			m.appendLog(descStyle.Render("(summary unavailable)"))
			return m, nil
		}
		m.appendLog(descStyle.Render("  " + msg.text))
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.Upload):
		before := m.state.Kudos()
		m.state.Update(engine.Upload{})
		m.uploads++
		m.appendLog(fmt.Sprintf("Story #%d uploaded: +%.1f kudos", m.uploads, m.state.Kudos()-before))
		return m, m.writeBlurb()

	case key.Matches(msg, keys.Pane):
		m.pane = (m.pane + 1) % paneCount

	case key.Matches(msg, keys.Up):
		if m.cursor[m.pane] > 0 {
			m.cursor[m.pane]--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor[m.pane] < m.rows()-1 {
			m.cursor[m.pane]++
		}

	case key.Matches(msg, keys.Select):
		m.selectRow()
		m.clampCursors()
		cmd := m.scheduleTick()
		return m, cmd
	}

	return m, nil
}

// selectRow turns the highlighted row into an intent.
func (m *model) selectRow() {
	i := m.cursor[m.pane]
	switch m.pane {
	case paneTagShop:
		shop := m.state.TagShop()
		if i >= len(shop) {
			return
		}
		tag, ok := shop[i].Tag()
		if !ok {
			m.appendLog("Keep writing to reveal this tag.")
			return
		}
		m.state.Update(engine.BuyTag{Slot: shop[i]})
		if m.state.IsUnlocked(tag.Name) {
			log.Printf("bought tag %q", tag.Name)
			m.appendLog(fmt.Sprintf("Unlocked tag %s. Activate it under MY TAGS.", tag.Name))
		} else {
			m.appendLog(fmt.Sprintf("Not enough kudos for %s (%d).", tag.Name, tag.Cost))
		}

	case paneMyTags:
		tags := m.state.UnlockedTags()
		if i >= len(tags) {
			return
		}
		m.state.Update(engine.ToggleTag{Name: tags[i].Name})

	case paneUpgrades:
		shop := m.state.UpgradeShop()
		if i >= len(shop) {
			return
		}
		up, ok := shop[i].Upgrade()
		if !ok {
			m.appendLog("Keep writing to reveal this upgrade.")
			return
		}
		if m.state.SoldOut(up.Name) {
			m.appendLog(fmt.Sprintf("%s is sold out.", up.Name))
			return
		}
		before := m.state.UpgradeCount(up.Name)
		cost, _ := m.state.NextUpgradeCost(up.Name)
		m.state.Update(engine.BuyUpgrade{Slot: shop[i]})
		if m.state.UpgradeCount(up.Name) > before {
			log.Printf("bought upgrade %q (stack %d)", up.Name, before+1)
			m.appendLog(fmt.Sprintf("Bought %s. %s", up.Name, up.FlavorText))
		} else {
			m.appendLog(fmt.Sprintf("Not enough kudos for %s (%d).", up.Name, cost))
		}
	}
}

// scheduleTick subscribes to the automation timer when it is needed and
// not already pending.
func (m *model) scheduleTick() tea.Cmd {
	if m.ticking || !m.state.AutomationActive() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.period, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) writeBlurb() tea.Cmd {
	if m.blurber == nil {
		return nil
	}
	req := blurb.Request{Uploads: m.uploads}
	for _, t := range m.state.UnlockedTags() {
		if t.Active {
			req.Tags = append(req.Tags, t.Name)
		}
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		text, err := m.blurber.Write(ctx, req)
		return blurbMsg{text, err}
	}
}

func (m *model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m model) rows() int {
	switch m.pane {
	case paneTagShop:
		return len(m.state.TagShop())
	case paneMyTags:
		return len(m.state.UnlockedTags())
	default:
		return len(m.state.UpgradeShop())
	}
}

// clampCursors keeps cursors in range after a purchase shrinks a list.
func (m *model) clampCursors() {
	saved := m.pane
	for p := pane(0); p < paneCount; p++ {
		m.pane = p
		if n := m.rows(); m.cursor[p] >= n {
			m.cursor[p] = max(n-1, 0)
		}
	}
	m.pane = saved
}

func (m model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatus(),
		"",
		m.renderPane(),
	)
	right := logStyle.Height(m.viewport.Height).Render(m.viewport.View())
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(max(m.width-m.viewport.Width-4, 40)).Render(left),
		right,
	)
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, main, m.help.View(keys)) + "\n"
}

func (m model) renderStatus() string {
	s := m.state
	status := kudosStyle.Render(fmt.Sprintf("%.1f kudos", s.Kudos())) +
		descStyle.Render(fmt.Sprintf("  (best %.1f)", s.HighestKudos()))
	status += "\n" + fmt.Sprintf("Next upload: +%.2f  (tags %.2f, upgrades %.2f)",
		s.UploadReward(), s.TagBonus(), s.UpgradeBonus())
	if s.AutomationActive() {
		status += "\n" + fmt.Sprintf("%d clone(s) uploading every %s",
			s.UpgradeCount(engine.CloneUpgrade), m.period)
	}
	return status
}

func (m model) renderPane() string {
	var tabs []string
	for p := pane(0); p < paneCount; p++ {
		if p == m.pane {
			tabs = append(tabs, titleStyle.Render(paneTitles[p]))
		} else {
			tabs = append(tabs, descStyle.Render(paneTitles[p]))
		}
	}

	var rows []string
	switch m.pane {
	case paneTagShop:
		rows = m.tagShopRows()
	case paneMyTags:
		rows = m.myTagRows()
	case paneUpgrades:
		rows = m.upgradeRows()
	}
	if len(rows) == 0 {
		rows = []string{descStyle.Render("(empty)")}
	}
	for i := range rows {
		if i == m.cursor[m.pane] {
			rows[i] = selectedStyle.Render("> ") + rows[i]
		} else {
			rows[i] = "  " + rows[i]
		}
	}
	return strings.Join(tabs, "  ") + "\n\n" + strings.Join(rows, "\n")
}

func (m model) tagShopRows() []string {
	var rows []string
	for _, slot := range m.state.TagShop() {
		tag, ok := slot.Tag()
		if !ok {
			rows = append(rows, lockedStyle.Render("??? (keep writing)"))
			continue
		}
		cats := make([]string, len(tag.Categories))
		for i, c := range tag.Categories {
			cats[i] = c.String()
		}
		rows = append(rows, fmt.Sprintf("%s  %s  %d kudos",
			tag.Name, descStyle.Render("["+strings.Join(cats, ", ")+"]"), tag.Cost))
	}
	return rows
}

func (m model) myTagRows() []string {
	var rows []string
	for _, t := range m.state.UnlockedTags() {
		box := "[ ]"
		if t.Active {
			box = "[x]"
		}
		rows = append(rows, box+" "+t.Name)
	}
	return rows
}

func (m model) upgradeRows() []string {
	var rows []string
	for _, slot := range m.state.UpgradeShop() {
		up, ok := slot.Upgrade()
		if !ok {
			rows = append(rows, lockedStyle.Render("??? (keep writing)"))
			continue
		}
		price := "SOLD OUT"
		if !m.state.SoldOut(up.Name) {
			cost, _ := m.state.NextUpgradeCost(up.Name)
			price = fmt.Sprintf("%d kudos", cost)
		}
		rows = append(rows, fmt.Sprintf("%s  %d/%d  %s\n    %s",
			up.Name, m.state.UpgradeCount(up.Name), up.MaxCount, price, descStyle.Render(up.Desc)))
	}
	return rows
}

func (m model) renderLog() string {
	return strings.Join(m.logLines, "\n")
}

func Run(state *engine.GameState, blurber Blurber) error {
	p := tea.NewProgram(NewModel(state, blurber), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
