package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/pkg/content"
	"github.com/jwebster45206/adventure-engine/pkg/game"
)

const PlaceHolderText = "Type a command..."

var (
	storyPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(1)

	statusPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

// Messages from the game goroutine to the UI.
type (
	sayMsg    struct{ text string }
	askMsg    struct{ prompt string }
	statusMsg struct {
		status   string
		location string
		weather  string
		lastSave string
	}
	gameOverMsg struct{ err error }
)

// teaPrompter bridges the blocking game loop and the bubbletea event loop.
type teaPrompter struct {
	program *tea.Program
	answers chan string
}

func (p *teaPrompter) Say(msg string) {
	p.program.Send(sayMsg{text: msg})
}

func (p *teaPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.program.Send(askMsg{prompt: prompt})
	select {
	case a := <-p.answers:
		return a, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type line struct {
	text string
	user bool
}

// AdventureUI is the BubbleTea model for the console game.
type AdventureUI struct {
	answers  chan<- string
	viewport viewport.Model
	input    textinput.Model
	lines    []line
	prompt   string
	waiting  bool
	status   statusMsg
	notice   string
	ready    bool
	width    int
	height   int
	err      error

	showQuitModal bool
}

func NewAdventureUI(answers chan<- string) AdventureUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 200
	ti.Focus()

	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	return AdventureUI{
		answers:  answers,
		viewport: vp,
		input:    ti,
	}
}

func (m AdventureUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m AdventureUI) storyWidth() int {
	return int(float64(m.width)*0.7) - 4
}

// writeStory rewraps the whole transcript for the current width.
func (m *AdventureUI) writeStory() {
	width := m.viewport.Width - 4
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("ADVENTURE") + "\n\n")
	for _, l := range m.lines {
		if l.user {
			b.WriteString(userStyle.Render("> "+l.text) + "\n")
			continue
		}
		b.WriteString(narratorStyle.Render(wordwrap.String(l.text, width)) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m AdventureUI) writeStatus() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("STATUS") + "\n\n")
	if m.status.location != "" {
		fmt.Fprintf(&b, "Location:\n%s\n\n", m.status.location)
	}
	if m.status.weather != "" {
		fmt.Fprintf(&b, "Weather:\n%s\n\n", m.status.weather)
	}
	for _, part := range strings.Split(m.status.status, " | ") {
		if part != "" {
			b.WriteString(wordwrap.String(part, 24) + "\n")
		}
	}
	if m.status.lastSave != "" {
		fmt.Fprintf(&b, "\nLast save:\n%s\n", m.status.lastSave)
	}
	b.WriteString("\nKeys:\n")
	b.WriteString("• Enter: Send\n")
	b.WriteString("• Ctrl+Y: Copy save name\n")
	b.WriteString("• Esc: Quit\n")
	if m.notice != "" {
		b.WriteString("\n" + promptStyle.Render(m.notice) + "\n")
	}
	return b.String()
}

func (m AdventureUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.storyWidth() - 2
		m.viewport.Height = m.height - 5
		m.input.Width = m.storyWidth() - 6
		m.ready = true
		m.writeStory()

	case sayMsg:
		m.lines = append(m.lines, line{text: msg.text})
		m.writeStory()

	case askMsg:
		m.prompt = msg.prompt
		m.waiting = true
		if p := strings.TrimSpace(msg.prompt); p != ">" {
			m.lines = append(m.lines, line{text: p})
			m.writeStory()
		}

	case statusMsg:
		m.status = msg

	case gameOverMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
			m.writeStory()
		}
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			m.notice = m.copyLastSave()
			return m, nil
		case tea.KeyEnter:
			if !m.waiting {
				return m, nil
			}
			answer := m.input.Value()
			m.input.Reset()
			m.waiting = false
			m.lines = append(m.lines, line{text: answer, user: true})
			m.writeStory()
			return m, m.sendAnswer(answer)
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m AdventureUI) sendAnswer(answer string) tea.Cmd {
	answers := m.answers
	return func() tea.Msg {
		answers <- answer
		return nil
	}
}

func (m AdventureUI) copyLastSave() string {
	if m.status.lastSave == "" {
		return "Nothing saved yet."
	}
	if err := clipboard.WriteAll(m.status.lastSave); err != nil {
		return "Clipboard unavailable."
	}
	return "Copied " + m.status.lastSave
}

func (m AdventureUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case gameOverMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.input.Focus()
				return m, textinput.Blink
			}
		}

	default:
		// Game output keeps arriving behind the modal.
		next, cmd := m.withoutModal().Update(msg)
		ui := next.(AdventureUI)
		ui.showQuitModal = true
		return ui, cmd
	}

	return m, nil
}

func (m AdventureUI) withoutModal() AdventureUI {
	m.showQuitModal = false
	return m
}

func (m AdventureUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved progress will be lost. Type 'save' first to keep it.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m AdventureUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	storyWidth := m.storyWidth()
	statusWidth := m.width - storyWidth - 4

	storyPanel := storyPanelStyle.Width(storyWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			separatorStyle.Render(strings.Repeat("─", max(storyWidth-4, 1))),
			m.input.View(),
		),
	)
	statusPanel := statusPanelStyle.Width(statusWidth).Height(m.height - 2).Render(m.writeStatus())

	return lipgloss.JoinHorizontal(lipgloss.Top, storyPanel, statusPanel)
}

func runTUI(ctx context.Context, pack *content.Pack, opts game.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	answers := make(chan string, 1)
	p := tea.NewProgram(NewAdventureUI(answers), tea.WithAltScreen(), tea.WithMouseCellMotion())

	prompter := &teaPrompter{program: p, answers: answers}
	opts.IO = prompter
	s := game.NewSession(pack, opts)

	report := func(s *game.Session) {
		p.Send(statusMsg{
			status:   s.Player.Status(),
			location: s.World.CurrentLocation,
			weather:  string(s.World.Weather),
			lastSave: s.LastSave,
		})
	}

	gameErr := make(chan error, 1)
	go func() {
		err := play(ctx, s, report)
		gameErr <- err
		p.Send(gameOverMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	cancel()

	select {
	case err := <-gameErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	default:
	}
	return nil
}
