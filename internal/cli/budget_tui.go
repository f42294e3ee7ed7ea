package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/felipearaujo/orcato/internal/budget"
	"github.com/felipearaujo/orcato/internal/cli/formatter"
	"github.com/felipearaujo/orcato/internal/contract"
	"github.com/felipearaujo/orcato/internal/domain"
)

// editorKeyMap defines the key bindings of the budget editor.
type editorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func defaultEditorKeys() editorKeyMap {
	return editorKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

// editorModel is the interactive discipline checklist. Every toggle
// recomputes synchronously through the session, so the totals in the
// footer are always current; persistence rides the session's debounced
// saver and is flushed by the caller on exit.
type editorModel struct {
	session *budget.Session
	rows    []domain.Discipline
	cursor  int
	status  string
	keys    editorKeyMap
}

func newEditorModel(app *App, session *budget.Session) editorModel {
	return editorModel{
		session: session,
		rows:    app.Catalog.All(),
		keys:    defaultEditorKeys(),
	}
}

func (m editorModel) Init() tea.Cmd { return nil }

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.status = ""

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.status = ""

	case key.Matches(keyMsg, m.keys.Toggle):
		m.status = ""
		code := m.rows[m.cursor].Code
		res, err := m.session.ToggleDiscipline(code)
		if err != nil {
			var toggleErr *contract.ToggleError
			if errors.As(err, &toggleErr) {
				m.status = toggleErr.Reason
			} else {
				m.status = err.Error()
			}
			break
		}
		if extra := len(res.Activated); extra > 1 {
			m.status = "also activated " + strings.Join(res.Activated[1:], ", ")
		}

	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Budget " + m.session.BudgetID()))
	b.WriteString("\n\n")

	result := m.session.Result()
	for i, d := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		value := ""
		if m.session.IsActive(d.Code) {
			value = "  " + formatter.Money(result.Lines[d.Code].Total)
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s%s\n",
			cursor,
			formatter.ActiveIndicator(m.session.IsActive(d.Code)),
			d.Name,
			formatter.CategoryBadge(d.Category),
			value,
		))
	}

	b.WriteString("\n")
	if m.session.Degraded() {
		b.WriteString(formatter.StyleYellow.Render("! catalog default pricing") + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %s    %s %s\n",
		formatter.Dim("Subtotal:"), formatter.Money(result.Subtotal),
		formatter.Bold("Total:"), formatter.StyleGreen.Render(formatter.Money(result.Total)),
	))

	if m.status != "" {
		b.WriteString(formatter.StyleYellow.Render(m.status) + "\n")
	}

	b.WriteString(formatter.Dim("space toggle · ↑/↓ move · q save & quit"))
	return b.String()
}

// runBudgetEditor runs the checklist until the user quits.
func runBudgetEditor(app *App, session *budget.Session) error {
	_, err := tea.NewProgram(newEditorModel(app, session)).Run()
	return err
}
