package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/tapecart/internal/cart"
)

type frameMsg time.Time

type statusExpiredMsg struct{ seq int }

type cartTotalMsg struct {
	total int
	err   error
}

type cartAddedMsg struct {
	line  cart.Line
	total int
	err   error
}

// ValueChangedMsg is emitted whenever the user settles on a new quantity.
type ValueChangedMsg struct{ Value int }

func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func statusExpireCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func valueChangedCmd(v int) tea.Cmd {
	return func() tea.Msg { return ValueChangedMsg{Value: v} }
}
