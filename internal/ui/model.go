package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/tapecart/internal/cart"
	"github.com/olivier-w/tapecart/internal/tape"
)

const (
	statusTTL   = 5 * time.Second
	cartTimeout = 5 * time.Second
)

// Cart is the subset of the cart store the widget needs.
type Cart interface {
	Add(ctx context.Context, sku, name string, qty int) (cart.Line, error)
	Total(ctx context.Context, sku string) (int, error)
}

// Product identifies what ADD TO CART commits.
type Product struct {
	SKU  string
	Name string
}

// Options configures a Model.
type Options struct {
	Control     *tape.Control
	RowsPerItem int
	Cart        Cart // nil disables ADD TO CART
	Product     Product
}

// Result is what the widget leaves behind when it quits.
type Result struct {
	Quantity int
	Added    []cart.Line
}

// Model is the Bubbletea model for the quantity tape.
type Model struct {
	ctl      *tape.Control
	layout   layout
	pxPerRow float64
	keys     keyMap
	help     help.Model
	gauge    progress.Model
	spinner  spinner.Model

	cart    Cart
	product Product
	inCart  int
	added   []cart.Line
	adding  bool

	// drag bookkeeping in screen rows
	dragY     int
	dragMoved bool

	ticking   bool
	status    string
	statusSeq int
	width     int
	height    int
	quitting  bool
}

// New creates a Model around an existing control.
func New(opts Options) Model {
	rows := opts.RowsPerItem
	if rows < 1 {
		rows = 1
	}
	sel := opts.Control.Selector()
	lay := newLayout(sel, rows)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ledBusyStyle

	g := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)
	g.Width = lay.width()

	return Model{
		ctl:      opts.Control,
		layout:   lay,
		pxPerRow: sel.ItemHeight() / float64(rows),
		keys:     newKeyMap(),
		help:     help.New(),
		gauge:    g,
		spinner:  s,
		cart:     opts.Cart,
		product:  opts.Product,
	}
}

func (m Model) Init() tea.Cmd {
	if m.cart == nil {
		return nil
	}
	c, sku := m.cart, m.product.SKU
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cartTimeout)
		defer cancel()
		total, err := c.Total(ctx, sku)
		return cartTotalMsg{total: total, err: err}
	}
}

// Result returns the final quantity and everything added to the cart.
func (m Model) Result() Result {
	return Result{Quantity: m.ctl.Value(), Added: m.added}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		if m.ctl.Tick() {
			return m, frameCmd(m.ctl.FPS())
		}
		m.ticking = false
		return m, nil

	case cartTotalMsg:
		if msg.err != nil {
			log.Printf("cart total: %v", msg.err)
			return m, nil
		}
		m.inCart = msg.total
		return m, nil

	case cartAddedMsg:
		m.adding = false
		if msg.err != nil {
			log.Printf("cart add: %v", msg.err)
			return m.setStatus(fmt.Sprintf("Add failed: %v", msg.err))
		}
		m.inCart = msg.total
		m.added = append(m.added, msg.line)
		log.Printf("added %d x %s", msg.line.Quantity, msg.line.SKU)
		return m.setStatus(fmt.Sprintf("Added %d × %s", msg.line.Quantity, m.productLabel()))

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.adding {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ValueChangedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(m.keys, msg) {
		if msg.String() == "esc" && m.ctl.Dragging() {
			m.ctl.CancelDrag()
			cmd := m.animate()
			return m, cmd
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return m.bump(m.ctl.Decrement())
	case key.Matches(msg, m.keys.Down):
		return m.bump(m.ctl.Increment())
	case key.Matches(msg, m.keys.First):
		return m.bump(m.ctl.Select(m.ctl.Selector().Min()))
	case key.Matches(msg, m.keys.Last):
		return m.bump(m.ctl.Select(m.ctl.Selector().Max()))
	case key.Matches(msg, m.keys.Jump):
		if d, ok := digit(msg); ok {
			return m.bump(m.ctl.Select(d))
		}
	case key.Matches(msg, m.keys.Add):
		return m.addToCart()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	lay := m.layout
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if _, ok := lay.inWindow(msg.X, msg.Y); ok {
				return m.bump(m.ctl.Decrement())
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if _, ok := lay.inWindow(msg.X, msg.Y); ok {
				return m.bump(m.ctl.Increment())
			}
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}

		if _, ok := lay.inWindow(msg.X, msg.Y); ok {
			m.ctl.BeginDrag()
			m.dragY = msg.Y
			m.dragMoved = false
			return m, nil
		}
		switch {
		case lay.up.contains(msg.X, msg.Y):
			return m.bump(m.ctl.Decrement())
		case lay.down.contains(msg.X, msg.Y):
			return m.bump(m.ctl.Increment())
		case lay.plate.contains(msg.X, msg.Y):
			return m.addToCart()
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.ctl.Dragging() {
			return m, nil
		}
		if dy := msg.Y - m.dragY; dy != 0 {
			m.ctl.DragBy(float64(dy) * m.pxPerRow)
			m.dragY = msg.Y
			m.dragMoved = true
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.ctl.Dragging() {
			return m, nil
		}
		if dy := msg.Y - m.dragY; dy != 0 {
			m.ctl.DragBy(float64(dy) * m.pxPerRow)
			m.dragMoved = true
		}
		if !m.dragMoved {
			// A tap selects the item under the pointer.
			if row, ok := lay.inWindow(msg.X, msg.Y); ok && row != lay.center {
				target := m.valueAtRow(row)
				m.ctl.CancelDrag()
				if m.ctl.Select(target) {
					cmd := m.animate()
					return m, tea.Batch(cmd, valueChangedCmd(target))
				}
				cmd := m.animate()
				return m, cmd
			}
		}
		v := m.ctl.EndDrag()
		cmd := m.animate()
		return m, tea.Batch(cmd, valueChangedCmd(v))
	}
	return m, nil
}

// valueAtRow resolves the tape item drawn at an interior row.
func (m Model) valueAtRow(row int) int {
	rel := float64(row-m.layout.center) * m.pxPerRow
	return m.ctl.Selector().Snap(m.ctl.Offset() - rel)
}

// bump finishes a button-style change: start the spring and announce the value.
func (m Model) bump(changed bool) (Model, tea.Cmd) {
	if !changed {
		return m, nil
	}
	cmd := m.animate()
	return m, tea.Batch(cmd, valueChangedCmd(m.ctl.Value()))
}

// animate starts the frame loop if the spring is moving and no loop is running.
func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.ctl.Animating() {
		return nil
	}
	m.ticking = true
	return frameCmd(m.ctl.FPS())
}

func (m Model) addToCart() (Model, tea.Cmd) {
	if m.cart == nil {
		return m.setStatus("Cart unavailable")
	}
	if m.adding {
		return m, nil
	}
	m.adding = true
	c, p, qty := m.cart, m.product, m.ctl.Value()
	add := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cartTimeout)
		defer cancel()
		line, err := c.Add(ctx, p.SKU, p.Name, qty)
		if err != nil {
			return cartAddedMsg{err: err}
		}
		total, err := c.Total(ctx, p.SKU)
		return cartAddedMsg{line: line, total: total, err: err}
	}
	return m, tea.Batch(add, m.spinner.Tick)
}

func (m Model) setStatus(s string) (Model, tea.Cmd) {
	m.status = s
	m.statusSeq++
	return m, statusExpireCmd(m.statusSeq)
}

func (m Model) productLabel() string {
	if m.product.Name != "" {
		return m.product.Name
	}
	return m.product.SKU
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	lay := m.layout
	sel := m.ctl.Selector()
	offset := m.ctl.Offset()

	led := ledOnStyle.Render("●")
	if m.adding {
		led = m.spinner.View()
	}

	gap := strings.Repeat(" ", columnGap)
	widget := lipgloss.JoinHorizontal(lipgloss.Top,
		renderTape(lay, sel, offset, m.pxPerRow),
		gap,
		renderButtons(lay, sel.CanDecrement(), sel.CanIncrement()),
		gap,
		renderPlate(lay, sel.Value(), m.inCart, led),
	)

	margin := strings.Repeat(" ", marginLeft)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(margin + headerStyle.Render("tapecart") + "\n")
	b.WriteString("\n")
	for _, line := range strings.Split(widget, "\n") {
		b.WriteString(margin + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(margin + m.gauge.ViewAs(fillRatio(sel, offset)) + "\n")
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(margin + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(margin + helpStyle.Render(m.help.View(m.keys)) + "\n")
	return b.String()
}

// fillRatio is how far along the tape the offset sits, in [0, 1].
func fillRatio(sel tape.Selector, offset float64) float64 {
	top, _ := sel.OffsetBounds()
	if top == 0 {
		return 1
	}
	r := offset / top
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
