package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/tapecart/internal/tape"
	"github.com/olivier-w/tapecart/internal/util"
)

var (
	rollerTexture = []string{"░", "▒", "▓", "▒"}
	gearFrames    = []string{"◐", "◓", "◑", "◒"}
)

const gearRatio = 2.5 // degrees per pixel

// renderTape draws the tape window: the numbers at their projected rows,
// center markers, and the copper roller scrolling with the offset.
func renderTape(l layout, sel tape.Selector, offset, pxPerRow float64) string {
	type cell struct {
		item tape.Item
		set  bool
	}
	cells := make([]cell, l.rows)
	for _, it := range tape.Project(sel, offset) {
		if !it.Visible() {
			continue
		}
		row := l.center + int(math.Round(it.Relative/pxPerRow))
		if row < 0 || row >= l.rows {
			continue
		}
		if cells[row].set && cells[row].item.Opacity >= it.Opacity {
			continue
		}
		cells[row] = cell{item: it, set: true}
	}

	shift := int(math.Floor(tape.RollerPhase(offset) / pxPerRow))
	gear := gearFrames[int(tape.GearAngle(offset, gearRatio)/90)%len(gearFrames)]

	blank := strings.Repeat(" ", l.numWidth)
	lines := make([]string, l.rows)
	for r := 0; r < l.rows; r++ {
		num := blank
		if c := cells[r]; c.set {
			num = itemStyle(c.item).Render(util.FormatQuantity(c.item.Value, l.numWidth))
		}
		left, right := " ", " "
		if r == l.center {
			left, right = selectedStyle.Render("▸"), selectedStyle.Render("◂")
		}
		roller := rollerTexture[mod(r-shift, len(rollerTexture))]
		if r == 0 || r == l.rows-1 {
			roller = gear
		}
		lines[r] = " " + left + " " + num + " " + right + " " + rollerStyle.Render(roller+roller)
	}
	return housingStyle.Width(l.inner).Render(strings.Join(lines, "\n"))
}

func itemStyle(it tape.Item) lipgloss.Style {
	switch {
	case it.Emphasis:
		return selectedStyle
	case it.Opacity >= 0.5 && it.Brightness >= 0.5:
		return nearStyle
	default:
		return farStyle
	}
}

// renderButtons draws the ▲/▼ column, sized to the tape housing height.
func renderButtons(l layout, canUp, canDown bool) string {
	btn := func(glyph string, enabled bool) string {
		s := buttonStyle
		if !enabled {
			s = disabledButtonStyle
		}
		return s.Width(buttonInner).Render(glyph)
	}
	gap := strings.Repeat(" ", buttonOuter)
	spacer := l.tape.h - 2 - 2*buttonTall
	parts := []string{gap, btn("▲", canUp)}
	for i := 0; i < spacer; i++ {
		parts = append(parts, gap)
	}
	parts = append(parts, btn("▼", canDown), gap)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderPlate draws the QUANTITY / ADD TO CART action plate.
func renderPlate(l layout, value, inCart int, led string) string {
	label := labelStyle.Render("QUANTITY")
	top := " " + label + strings.Repeat(" ", plateInner-2-lipgloss.Width(label)-lipgloss.Width(led)) + led + " "

	cartLine := ""
	if inCart > 0 {
		cartLine = " " + helpStyle.Render("in cart "+strconv.Itoa(inCart))
	}

	lines := []string{
		top,
		" " + helpStyle.Render(strings.Repeat("─", plateInner-2)),
		"",
		" " + addToStyle.Render("ADD TO"),
		" " + cartStyle.Render("CART"),
		" " + statusStyle.Render("× "+util.FormatQuantity(value, l.numWidth)),
		cartLine,
	}
	return housingStyle.Width(plateInner).Height(l.rows).Render(strings.Join(lines, "\n"))
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
