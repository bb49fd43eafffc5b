package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"memo/internal/logs"
	"memo/internal/memos/data"
	"memo/internal/memos/service"
)

// menuState is the step of the menu the next line of input answers.
type menuState int

const (
	stateMenu menuState = iota
	stateCreateTitle
	stateCreateContent
	stateReadSelect
	stateDeleteSelect
	stateDeleteConfirm
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeOk
	noticeWarn
	noticeError
)

const (
	choiceCreate = "1"
	choiceList   = "2"
	choiceRead   = "3"
	choiceDelete = "4"
	choiceExit   = "5"
)

// Model is the interactive memo menu. Each submitted line advances the
// state machine by one step; every sub-flow ends back at the menu.
type Model struct {
	svc   service.MemoService
	input textinput.Model
	state menuState

	output     []string
	notice     string
	noticeKind noticeKind

	pendingTitle string
	choices      []data.Memo
	target       data.Memo

	width    int
	quitting bool
}

// NewModel creates the menu on top of svc.
func NewModel(svc service.MemoService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return Model{
		svc:   svc,
		input: ti,
		state: stateMenu,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.exit()
		case "enter":
			line := m.input.Value()
			m.input.Reset()
			return m.submit(line)
		case "esc":
			if m.state != stateMenu {
				m.backToMenu()
				m.setNotice(noticeWarn, "Cancelled.")
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	m.notice = ""
	m.noticeKind = noticeNone

	switch m.state {
	case stateMenu:
		return m.handleChoice(line)
	case stateCreateTitle:
		m.handleTitle(line)
	case stateCreateContent:
		m.handleContent(line)
	case stateReadSelect:
		m.handleReadSelect(line)
	case stateDeleteSelect:
		m.handleDeleteSelect(line)
	case stateDeleteConfirm:
		m.handleDeleteConfirm(line)
	}
	return m, nil
}

func (m Model) handleChoice(line string) (tea.Model, tea.Cmd) {
	m.output = nil

	switch strings.TrimSpace(line) {
	case choiceCreate:
		m.state = stateCreateTitle
	case choiceList:
		m.showList()
	case choiceRead:
		m.startSelection(stateReadSelect)
	case choiceDelete:
		m.startSelection(stateDeleteSelect)
	case choiceExit:
		return m.exit()
	default:
		m.setNotice(noticeWarn, "Invalid choice. Please try again.")
	}
	return m, nil
}

func (m Model) exit() (tea.Model, tea.Cmd) {
	logs.Logger.Infow("menu exit requested")
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) handleTitle(line string) {
	if err := service.ValidateTitle(line); err != nil {
		m.backToMenu()
		m.setNotice(noticeWarn, "A title is required. Returning to the menu.")
		return
	}
	m.pendingTitle = line
	m.state = stateCreateContent
}

func (m *Model) handleContent(line string) {
	title := m.pendingTitle
	m.backToMenu()

	memo, err := m.svc.Create(title, line)
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		m.setNotice(noticeWarn, "Content is required. Returning to the menu.")
	case errors.Is(err, data.ErrInvalidTitle):
		m.setNotice(noticeWarn, "Titles cannot contain / or \\. Returning to the menu.")
	case err != nil:
		m.setNotice(noticeError, "Could not save memo: "+err.Error())
	default:
		m.setNotice(noticeOk, "Memo saved: "+memo.ID)
	}
}

func (m *Model) showList() {
	memos, err := m.svc.List()
	if err != nil {
		m.setNotice(noticeError, "Could not list memos: "+err.Error())
		return
	}
	if len(memos) == 0 {
		m.setNotice(noticeWarn, "No memos saved.")
		return
	}

	m.output = []string{TitleStyle.Render("Memo list")}
	for i, memo := range memos {
		m.output = append(m.output, fmt.Sprintf("%d. %s (%s)", i+1, memo.Title, memo.Stamp))
	}
}

// startSelection snapshots the listing so the number the user types refers
// to what was shown, even if the directory changes in the meantime.
func (m *Model) startSelection(next menuState) {
	memos, err := m.svc.List()
	if err != nil {
		m.setNotice(noticeError, "Could not list memos: "+err.Error())
		return
	}
	if len(memos) == 0 {
		m.setNotice(noticeWarn, "No memos saved.")
		return
	}

	m.choices = memos
	m.output = []string{TitleStyle.Render("Memo list")}
	for i, memo := range memos {
		m.output = append(m.output, fmt.Sprintf("%d. %s", i+1, memo.Title))
	}
	m.state = next
}

func (m *Model) handleReadSelect(line string) {
	memo, err := service.SelectByIndex(m.choices, line)
	m.backToMenu()
	if err != nil {
		m.setNotice(noticeWarn, "Invalid selection. Returning to the menu.")
		return
	}

	content, err := m.svc.Get(memo.ID)
	switch {
	case errors.Is(err, data.ErrNotFound):
		m.setNotice(noticeWarn, "That memo could not be found.")
		return
	case err != nil:
		m.setNotice(noticeError, "Could not read memo: "+err.Error())
		return
	}

	m.output = []string{
		TitleStyle.Render("Memo"),
		"Title: " + memo.Title,
		"Created: " + memo.Stamp,
		"Content:",
		content,
	}
}

func (m *Model) handleDeleteSelect(line string) {
	memo, err := service.SelectByIndex(m.choices, line)
	if err != nil {
		m.backToMenu()
		m.setNotice(noticeWarn, "Invalid selection. Returning to the menu.")
		return
	}
	m.target = memo
	m.state = stateDeleteConfirm
}

func (m *Model) handleDeleteConfirm(line string) {
	target := m.target
	m.backToMenu()

	if !strings.EqualFold(strings.TrimSpace(line), "y") {
		m.setNotice(noticeWarn, "Deletion cancelled.")
		return
	}

	ok, err := m.svc.Delete(target.ID)
	switch {
	case err != nil:
		m.setNotice(noticeError, "Could not delete memo: "+err.Error())
	case !ok:
		m.setNotice(noticeWarn, "That memo could not be found.")
	default:
		m.setNotice(noticeOk, "Memo deleted: "+target.ID)
	}
}

func (m *Model) backToMenu() {
	m.state = stateMenu
	m.pendingTitle = ""
	m.choices = nil
	m.target = data.Memo{}
	m.output = nil
}

func (m *Model) setNotice(kind noticeKind, text string) {
	m.noticeKind = kind
	m.notice = text
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) View() string {
	if m.quitting {
		return "Shutting down.\n"
	}

	var b strings.Builder

	if len(m.output) > 0 {
		box := OutputStyle
		if m.width > 0 {
			box = box.Width(m.width - 2)
		}
		b.WriteString(box.Render(strings.Join(m.output, "\n")))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(m.noticeStyle().Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.promptView())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("[enter] submit  [esc] back to menu  [ctrl+c] quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) promptView() string {
	switch m.state {
	case stateCreateTitle:
		return PromptStyle.Render("Enter a memo title:")
	case stateCreateContent:
		return PromptStyle.Render("Enter the memo content:")
	case stateReadSelect:
		return PromptStyle.Render(fmt.Sprintf("Choose a memo to read (1-%d):", len(m.choices)))
	case stateDeleteSelect:
		return PromptStyle.Render(fmt.Sprintf("Choose a memo to delete (1-%d):", len(m.choices)))
	case stateDeleteConfirm:
		return WarnStyle.Render(fmt.Sprintf("Really delete '%s'? (y/n)", m.target.Title))
	}

	lines := []string{
		TitleStyle.Render("===== Memo Manager ====="),
		"1. Write a new memo",
		"2. List memos",
		"3. Read a memo",
		"4. Delete a memo",
		"5. Exit",
		PromptStyle.Render("Choose an option (1-5):"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) noticeStyle() lipgloss.Style {
	switch m.noticeKind {
	case noticeOk:
		return OkStyle
	case noticeError:
		return ErrorStyle
	default:
		return WarnStyle
	}
}
