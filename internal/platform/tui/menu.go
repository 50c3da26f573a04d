package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gems/internal/core"
	"github.com/vovakirdan/tui-gems/internal/games/gems"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// menuEntries are the choices of the main menu, in display order.
var menuEntries = []string{
	"Campaign (10 levels)",
	"Endless Mode",
	"Select Level...",
	"High Scores",
}

const (
	entryCampaign = iota
	entryEndless
	entryLevels
	entryScores
)

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string // "gems" or "gems_endless"
	Level           int    // 0 = start from the beginning, 1-10 = specific level
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// MenuModel lets users choose the game mode and starting level.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	result        *MenuResult
	quitting      bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, len(menuEntries))
	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, len(menuEntries))
	case MenuActionScoreboard:
		return m.finish(MenuResult{WantsScoreboard: true})
	case MenuActionSelect:
		switch m.cursor {
		case entryCampaign:
			return m.finish(MenuResult{GameID: "gems"})
		case entryEndless:
			return m.finish(MenuResult{GameID: "gems_endless"})
		case entryLevels:
			m.inLevelSelect = true
			m.levelCursor = 0
		case entryScores:
			return m.finish(MenuResult{WantsScoreboard: true})
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.levelCursor = core.Clamp(m.levelCursor-1, 0, gems.LevelCount()-1)
	case MenuActionDown:
		m.levelCursor = core.Clamp(m.levelCursor+1, 0, gems.LevelCount()-1)
	case MenuActionSelect:
		return m.finish(MenuResult{GameID: "gems", Level: m.levelCursor + 1})
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	r.Config = m.config
	m.result = &r
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.result != nil {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m MenuModel) viewModeSelect() string {
	width := m.config.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("◆ G E M S ◆", width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Match three or more", width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		line := centerText("  "+entry, width)
		if i == m.cursor {
			line = menuCursorStyle.Render(centerText("> "+entry, width))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHelpStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	width := m.config.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("SELECT LEVEL", width)))
	b.WriteString("\n\n")

	for i, lvl := range gems.Levels {
		text := fmt.Sprintf("%2d. %-12s %4d pts  %2d moves  %d gems", lvl.ID, lvl.Name, lvl.Target, lvl.Moves, lvl.Palette)
		line := centerText("  "+text, width)
		if i == m.levelCursor {
			line = menuCursorStyle.Render(centerText("> "+text, width))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHelpStyle.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", width)))

	return b.String()
}

// Result returns the selection, or nil while the user is still choosing.
func (m MenuModel) Result() *MenuResult {
	return m.result
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Result() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return *m.Result(), nil
}
