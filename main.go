package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/tapecart/internal/cart"
	"github.com/olivier-w/tapecart/internal/config"
	"github.com/olivier-w/tapecart/internal/sound"
	"github.com/olivier-w/tapecart/internal/tape"
	"github.com/olivier-w/tapecart/internal/ui"
)

func main() {
	var cfg config.Config
	var err error
	if len(os.Args) > 1 {
		cfg, err = config.LoadFile(os.Args[1])
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "tapecart")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	sel, err := tape.NewSelector(cfg.Selector.Min, cfg.Selector.Max, cfg.Selector.Value, cfg.Selector.ItemHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	spring := tape.SpringConfig{
		FPS:       cfg.Spring.FPS,
		Stiffness: cfg.Spring.Stiffness,
		Damping:   cfg.Spring.Damping,
		Mass:      cfg.Spring.Mass,
	}
	ctl := tape.NewControl(sel, spring, cfg.Drag.Elastic)

	clicker := openClicker(cfg.Sound)
	defer clicker.Close()
	ctl.OnChange(clickOnChange(clicker, ctl.Value()))

	opts := ui.Options{
		Control:     ctl,
		RowsPerItem: cfg.Selector.RowsPerItem,
		Product:     ui.Product{SKU: cfg.Product.SKU, Name: cfg.Product.Name},
	}
	store, err := openCart(cfg.Cart.Path)
	if err != nil {
		log.Printf("cart disabled: %v", err)
	} else {
		defer store.Close()
		opts.Cart = store
	}

	program := tea.NewProgram(ui.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, ok := finalModel.(ui.Model)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unexpected model type from selector\n")
		os.Exit(1)
	}
	fmt.Print(summary(m.Result(), opts.Product))
}

func openClicker(cfg config.SoundConfig) sound.Clicker {
	if !cfg.Enabled {
		return sound.Nop{}
	}
	sample := sound.Click(sound.DefaultClickLength)
	if cfg.Sample != "" {
		s, err := sound.Load(cfg.Sample)
		if err != nil {
			log.Printf("click sample: %v; using built-in click", err)
		} else {
			sample = s
		}
	}
	p, err := sound.New(sample, cfg.Volume)
	if err != nil {
		log.Printf("audio disabled: %v", err)
		return sound.Nop{}
	}
	return p
}

// clickOnChange returns the OnChange hook: it clicks only when the reported
// value differs from the last one, so a drag that snaps back stays silent.
func clickOnChange(c sound.Clicker, initial int) func(int) {
	last := initial
	return func(v int) {
		if v == last {
			return
		}
		last = v
		c.Click()
		log.Printf("quantity %d", v)
	}
}

func openCart(path string) (*cart.Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir cart dir: %w", err)
		}
	}
	return cart.OpenStore(path)
}

// summary is printed after the TUI exits.
func summary(res ui.Result, p ui.Product) string {
	name := p.Name
	if name == "" {
		name = p.SKU
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Quantity: %d\n", res.Quantity)
	if len(res.Added) == 0 {
		return b.String()
	}
	total := 0
	for _, l := range res.Added {
		total += l.Quantity
	}
	fmt.Fprintf(&b, "Added to cart: %d × %s in %d ", total, name, len(res.Added))
	if len(res.Added) == 1 {
		b.WriteString("line\n")
	} else {
		b.WriteString("lines\n")
	}
	return b.String()
}
