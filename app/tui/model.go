// Package tui is the interactive product list: a create form, the product
// table and an edit overlay.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mytheresa/product-price/app/listview"
)

type focus int

const (
	focusTitle focus = iota
	focusPrice
	focusTable
	numFocus
)

// outcomeMsg carries a finished network operation back to the event loop.
type outcomeMsg struct {
	listview.Outcome
}

// Model owns the list view state. Only Update mutates it; requests run as
// commands and report back with outcomeMsg.
type Model struct {
	ctx    context.Context
	ctl    *listview.Controller
	state  listview.State
	styles Styles

	title     textinput.Model
	price     textinput.Model
	editTitle textinput.Model
	editPrice textinput.Model

	focus     focus
	editField int
	cursor    int
	pending   int

	width  int
	height int
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Width = 30
	return ti
}

func New(ctx context.Context, ctl *listview.Controller) Model {
	m := Model{
		ctx:       ctx,
		ctl:       ctl,
		state:     listview.NewState(),
		styles:    DefaultStyles(),
		title:     newInput("Product Name"),
		price:     newInput("Price"),
		editTitle: newInput("Product Name"),
		editPrice: newInput("Price"),
	}
	m.title.Focus()
	return m
}

// State exposes the current view state.
func (m Model) State() listview.State { return m.state }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

func (m Model) run(op func(ctx context.Context) listview.Outcome) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return outcomeMsg{op(ctx)}
	}
}

func (m Model) load() tea.Cmd {
	return m.run(m.ctl.Load)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case outcomeMsg:
		if m.pending > 0 {
			m.pending--
		}
		m.state = m.state.Apply(msg.Outcome)
		m.syncInputs()
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state.Overlay == listview.OverlayOpen {
			return m.updateOverlay(msg)
		}
		return m.updateList(msg)
	}

	return m.forward(msg)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m, m.setFocus((m.focus + 1) % numFocus)
	case "shift+tab":
		return m, m.setFocus((m.focus + numFocus - 1) % numFocus)
	}

	if m.focus != focusTable {
		if msg.String() == "enter" {
			if !m.state.CanCreate() {
				return m, nil
			}
			draft := m.state.Draft
			m.pending++
			return m, m.run(func(ctx context.Context) listview.Outcome {
				return m.ctl.Create(ctx, draft)
			})
		}
		return m.forward(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Records)-1 {
			m.cursor++
		}
	case "r":
		m.pending++
		return m, m.load()
	case "e", "enter":
		rec, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.state = m.state.OpenEdit(rec)
		m.editTitle.SetValue(rec.Title)
		m.editPrice.SetValue(rec.Price)
		m.editTitle.CursorEnd()
		m.editPrice.CursorEnd()
		m.editField = 0
		m.editPrice.Blur()
		return m, m.editTitle.Focus()
	case "d", "delete":
		rec, ok := m.selected()
		if !ok {
			return m, nil
		}
		id := rec.ID
		m.pending++
		return m, m.run(func(ctx context.Context) listview.Outcome {
			return m.ctl.Delete(ctx, id)
		})
	}
	return m, nil
}

func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = m.state.CancelEdit()
		m.editTitle.Blur()
		m.editPrice.Blur()
		return m, nil
	case "enter":
		if !m.state.CanUpdate() {
			return m, nil
		}
		rec := m.state.Edit
		m.pending++
		return m, m.run(func(ctx context.Context) listview.Outcome {
			return m.ctl.Update(ctx, rec)
		})
	case "tab", "shift+tab", "up", "down":
		m.editField = 1 - m.editField
		if m.editField == 0 {
			m.editPrice.Blur()
			return m, m.editTitle.Focus()
		}
		m.editTitle.Blur()
		return m, m.editPrice.Focus()
	}
	return m.forward(msg)
}

// forward hands msg to the focused input and mirrors its value into the state.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.state.Overlay == listview.OverlayOpen {
		if m.editField == 0 {
			m.editTitle, cmd = m.editTitle.Update(msg)
			m.state = m.state.SetEditTitle(m.editTitle.Value())
		} else {
			m.editPrice, cmd = m.editPrice.Update(msg)
			m.state = m.state.SetEditPrice(m.editPrice.Value())
		}
		return m, cmd
	}

	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
		m.state = m.state.SetDraftTitle(m.title.Value())
	case focusPrice:
		m.price, cmd = m.price.Update(msg)
		m.state = m.state.SetDraftPrice(m.price.Value())
	}
	return m, cmd
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.price.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusPrice:
		return m.price.Focus()
	}
	return nil
}

func (m *Model) syncInputs() {
	if m.title.Value() != m.state.Draft.Title {
		m.title.SetValue(m.state.Draft.Title)
	}
	if m.price.Value() != m.state.Draft.Price {
		m.price.SetValue(m.state.Draft.Price)
	}
	if m.state.Overlay == listview.OverlayClosed {
		m.editTitle.Blur()
		m.editPrice.Blur()
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Records) {
		m.cursor = len(m.state.Records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (listview.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Records) {
		return listview.Record{}, false
	}
	return m.state.Records[m.cursor], true
}

func (m Model) View() string {
	if m.state.Overlay == listview.OverlayOpen {
		return m.overlayView()
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Product Price"))
	sb.WriteString("\n")

	sb.WriteString(m.inputView(m.title, m.focus == focusTitle))
	sb.WriteString("\n")
	sb.WriteString(m.inputView(m.price, m.focus == focusPrice))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Button.Render("Add"))
	sb.WriteString("\n\n")

	t := table{
		headers:  []string{"ID", "Product Name", "Price", "Actions"},
		selected: -1,
	}
	if m.focus == focusTable {
		t.selected = m.cursor
	}
	actions := m.styles.Edit.Render("[e] Edit") + " " + m.styles.Delete.Render("[d] Delete")
	for _, r := range m.state.Records {
		t.rows = append(t.rows, []string{r.ID.String(), r.Title, "$" + r.Price, actions})
	}
	sb.WriteString(t.View(m.styles))
	sb.WriteString("\n")

	help := "tab focus • enter add • ↑/↓ select • e edit • d delete • r reload • q quit"
	if m.pending > 0 {
		help = fmt.Sprintf("working (%d)… • %s", m.pending, help)
	}
	sb.WriteString(m.styles.Muted.Render(help))
	return sb.String()
}

func (m Model) inputView(ti textinput.Model, focused bool) string {
	style := m.styles.Input
	if focused {
		style = m.styles.Focused
	}
	return style.Render(ti.View())
}

func (m Model) overlayView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Edit Product"))
	sb.WriteString("\n")
	sb.WriteString(m.inputView(m.editTitle, m.editField == 0))
	sb.WriteString("\n")
	sb.WriteString(m.inputView(m.editPrice, m.editField == 1))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Save.Render("[enter] Save"))
	sb.WriteString("   ")
	sb.WriteString(m.styles.Muted.Render("[esc] Cancel"))

	box := m.styles.Overlay.Render(sb.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctl *listview.Controller) error {
	p := tea.NewProgram(New(ctx, ctl), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
