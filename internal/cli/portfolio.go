package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/stockfolio/internal/core"
)

const fmtField = " %s\n %s\n"

var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = focusedStyle
	noStyle       = lipgloss.NewStyle()
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activePane    = paneStyle.BorderForeground(lipgloss.Color("205"))
	selectedRow   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	viewButton    = blurredStyle.Render("[ View ]")
	activeButton  = focusedStyle.Render("[ View ]")
	helpLineStyle = blurredStyle
)

var fieldLabels = map[core.Field]string{
	core.FieldID:        "User ID:",
	core.FieldFirstName: "First Name:",
	core.FieldLastName:  "Last Name:",
	core.FieldAddress:   "Address:",
	core.FieldCity:      "City:",
	core.FieldEmail:     "Email:",
}

type pane int

const (
	paneUsers pane = iota
	paneForm
	panePortfolio
)

type keyMap struct {
	Quit   key.Binding
	Save   key.Binding
	Delete key.Binding
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	View   key.Binding
	Up     key.Binding
	Down   key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc")),
	Save:   key.NewBinding(key.WithKeys("ctrl+s")),
	Delete: key.NewBinding(key.WithKeys("ctrl+d")),
	Next:   key.NewBinding(key.WithKeys("tab")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab")),
	Select: key.NewBinding(key.WithKeys("enter")),
	View:   key.NewBinding(key.WithKeys("enter", "v")),
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
}

type userItem struct {
	entry core.ListEntry
}

func (i userItem) Title() string       { return i.entry.Label }
func (i userItem) Description() string { return "ID " + i.entry.ID }
func (i userItem) FilterValue() string { return i.entry.Label }

// Model is the terminal rendering surface. It implements core.Surface:
// the controllers push content into it and it calls back the single
// handler each render attached.
type Model struct {
	users    list.Model
	onSelect func(id string)

	inputs    []textinput.Model
	formFocus int

	rows      []core.PortfolioRow
	onView    func(symbol string)
	rowCursor int

	detail      map[core.DetailField]string
	detailShown bool

	actions map[core.Action]func()

	focus    pane
	status   string
	statusOK bool
	pending  []tea.Cmd
	quitting bool
}

var _ core.Surface = (*Model)(nil)

// NewModel creates an empty surface. Content arrives through core.App.Start.
func NewModel() *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 40, 20)
	l.Title = "Users"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := &Model{
		users:   l,
		inputs:  make([]textinput.Model, len(core.FormFields)),
		detail:  make(map[core.DetailField]string),
		actions: make(map[core.Action]func()),
	}

	var t textinput.Model
	for i, f := range core.FormFields {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256
		t.Placeholder = strings.TrimSuffix(fieldLabels[f], ":")

		if f == core.FieldID {
			t.CharLimit = 64
		}

		m.inputs[i] = t
	}

	return m
}

// RenderUsers replaces the list items and the selection handler.
func (m *Model) RenderUsers(entries []core.ListEntry, onSelect func(id string)) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = userItem{entry: e}
	}

	if cmd := m.users.SetItems(items); cmd != nil {
		m.pending = append(m.pending, cmd)
	}

	if n := len(items); n > 0 && m.users.Index() >= n {
		m.users.Select(n - 1)
	}

	m.onSelect = onSelect
}

// RenderPortfolio replaces the rows and the view handler.
func (m *Model) RenderPortfolio(rows []core.PortfolioRow, onView func(symbol string)) {
	m.rows = slices.Clone(rows)
	m.onView = onView
	m.rowCursor = 0
}

// SetField writes a form field.
func (m *Model) SetField(f core.Field, value string) {
	if i := slices.Index(core.FormFields, f); i >= 0 {
		m.inputs[i].SetValue(value)
	}
}

// FieldValue reads a form field as currently typed.
func (m *Model) FieldValue(f core.Field) string {
	if i := slices.Index(core.FormFields, f); i >= 0 {
		return m.inputs[i].Value()
	}

	return ""
}

// SetDetail writes a slot of the stock detail pane.
func (m *Model) SetDetail(f core.DetailField, value string) {
	m.detail[f] = value
}

// ShowDetail reveals the stock detail pane.
func (m *Model) ShowDetail() {
	m.detailShown = true
}

// DetailVisible reports whether the stock detail pane is shown.
func (m *Model) DetailVisible() bool {
	return m.detailShown
}

// BindAction binds a callback to a key action, replacing any previous one.
func (m *Model) BindAction(a core.Action, fn func()) {
	m.actions[a] = fn
}

// ReportResult updates the status line after a save or delete.
func (m *Model) ReportResult(a core.Action, applied bool) {
	m.statusOK = applied

	switch {
	case !applied:
		m.status = "no matching user"
	case a == core.ActionSave:
		m.status = "saved"
	case a == core.ActionDelete:
		m.status = "deleted"
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.users.SetSize(msg.Width/3-h, msg.Height-v-2)

		return m, nil

	case tea.KeyMsg:
		if m.focus == paneUsers && m.users.FilterState() == list.Filtering {
			m.users, cmd = m.users.Update(msg)
			return m, m.flush(cmd)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Save):
			m.trigger(core.ActionSave)
			return m, m.flush(nil)

		case key.Matches(msg, keys.Delete):
			m.trigger(core.ActionDelete)
			return m, m.flush(nil)

		case key.Matches(msg, keys.Next):
			return m, m.flush(m.cycleFocus(1))

		case key.Matches(msg, keys.Prev):
			return m, m.flush(m.cycleFocus(-1))
		}

		switch m.focus {
		case paneUsers:
			if key.Matches(msg, keys.Select) {
				if i, ok := m.users.SelectedItem().(userItem); ok && m.onSelect != nil {
					m.onSelect(i.entry.ID)
				}

				return m, m.flush(nil)
			}

			m.users, cmd = m.users.Update(msg)

			return m, m.flush(cmd)

		case panePortfolio:
			switch {
			case key.Matches(msg, keys.Up):
				if m.rowCursor > 0 {
					m.rowCursor--
				}
			case key.Matches(msg, keys.Down):
				if m.rowCursor < len(m.rows)-1 {
					m.rowCursor++
				}
			case key.Matches(msg, keys.View):
				if m.rowCursor < len(m.rows) && m.onView != nil {
					m.onView(m.rows[m.rowCursor].ViewTag)
				}
			}

			return m, m.flush(nil)
		}
	}

	// Filter results and spinner ticks belong to the list; keys reaching
	// this point belong to the focused input
	var listCmd tea.Cmd
	if _, ok := msg.(tea.KeyMsg); !ok {
		m.users, listCmd = m.users.Update(msg)
	}

	cmd = m.updateInputs(msg)

	return m, m.flush(tea.Batch(listCmd, cmd))
}

func (m *Model) trigger(a core.Action) {
	if fn, ok := m.actions[a]; ok {
		fn()
	}
}

// flush batches cmd with anything queued by renders during this update.
func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.pending, cmd)
	m.pending = nil

	return tea.Batch(cmds...)
}

// cycleFocus walks users -> each form field -> portfolio -> users.
func (m *Model) cycleFocus(step int) tea.Cmd {
	stops := len(m.inputs) + 2
	pos := 0

	switch m.focus {
	case paneForm:
		pos = 1 + m.formFocus
	case panePortfolio:
		pos = stops - 1
	}

	pos = (pos + step + stops) % stops

	switch {
	case pos == 0:
		m.focus = paneUsers
	case pos == stops-1:
		m.focus = panePortfolio
	default:
		m.focus = paneForm
		m.formFocus = pos - 1
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if m.focus == paneForm && i == m.formFocus {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle

			continue
		}

		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}

	return tea.Batch(cmds...)
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only the focused input reacts to keys
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	left := paneStyle
	if m.focus == paneUsers {
		left = activePane
	}

	middle := paneStyle
	if m.focus == paneForm {
		middle = activePane
	}

	right := paneStyle
	if m.focus == panePortfolio {
		right = activePane
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(m.users.View()),
		middle.Render(m.formView()),
		right.Render(m.portfolioView()+"\n"+m.detailView()),
	)

	s := body + "\n"

	if m.status != "" {
		style := warnStyle
		if m.statusOK {
			style = okStyle
		}

		s += style.Render(" "+m.status) + "\n"
	}

	s += helpLineStyle.Render(" tab/shift+tab: navigate • enter: select • v: view stock • ctrl+s: save • ctrl+d: delete • esc: quit")

	return docStyle.Render(s)
}

func (m *Model) formView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Edit User") + "\n\n")

	for i, f := range core.FormFields {
		_, _ = fmt.Fprintf(&b, fmtField, blurredStyle.Render(fieldLabels[f]), m.inputs[i].View())
	}

	return b.String()
}

func (m *Model) portfolioView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Portfolio") + "\n\n")

	if len(m.rows) == 0 {
		b.WriteString(blurredStyle.Render(" select a user") + "\n")
		return b.String()
	}

	_, _ = fmt.Fprintf(&b, " %-8s %10s\n", "Symbol", "Owned")

	for i, r := range m.rows {
		button := viewButton
		line := fmt.Sprintf(" %-8s %10s", r.Symbol, r.Owned)

		if m.focus == panePortfolio && i == m.rowCursor {
			button = activeButton
			line = selectedRow.Render(line)
		}

		_, _ = fmt.Fprintf(&b, "%s  %s\n", line, button)
	}

	return b.String()
}

func (m *Model) detailView() string {
	if !m.detailShown {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(m.detail[core.DetailName]) + "\n")
	_, _ = fmt.Fprintf(&b, " %s %s\n", blurredStyle.Render("Sector:  "), m.detail[core.DetailSector])
	_, _ = fmt.Fprintf(&b, " %s %s\n", blurredStyle.Render("Industry:"), m.detail[core.DetailIndustry])
	_, _ = fmt.Fprintf(&b, " %s %s\n", blurredStyle.Render("Address: "), m.detail[core.DetailAddress])
	_, _ = fmt.Fprintf(&b, " %s %s\n", blurredStyle.Render("Logo:    "), m.detail[core.DetailLogo])

	return b.String()
}
