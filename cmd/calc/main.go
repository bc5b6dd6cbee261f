// Command calc is the terminal rendition of the calculator's main loop
// (§5 "single-threaded cooperative" scheduling model): a bubbletea
// program supplies the ≈500ms cursor-blink tick and the key FIFO that the
// original hardware's SBDI receiver and timer interrupt provided, and
// dispatches one key at a time into entry.Controller.HandleKey exactly as
// the firmware's main loop polls its FIFO and calls handle_key.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/nspire-go/neda/display"
	"github.com/nspire-go/neda/entry"
	"github.com/nspire-go/neda/glyph"
	"github.com/nspire-go/neda/keycode"
	"github.com/nspire-go/neda/sbdi"
)

const blinkInterval = 500 * time.Millisecond

// overlaySelectedStyle highlights the selected overlay row with a
// Foreground/Background pair, the same lipgloss colours display/terminal.go
// uses (as foregrounds only) for the framebuffer's on/off pixels.
var overlaySelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15"))

type blinkMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(blinkInterval, func(time.Time) tea.Msg { return blinkMsg{} })
}

type model struct {
	ctrl        *entry.Controller
	store       *glyph.Store
	cursorOn    bool
	keyboardDev string
}

func initialModel(keyboardDev string) model {
	return model{
		ctrl:        entry.New(glyph.NewStore()),
		store:       glyph.NewStore(),
		keyboardDev: keyboardDev,
	}
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if code, ok := keycode.FromTeaKey(msg); ok {
			m.ctrl.HandleKey(code)
		}
		return m, nil
	case blinkMsg:
		m.cursorOn = !m.cursorOn
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	fb := display.NewFramebuffer()
	m.ctrl.Tree.Draw(fb, m.store, m.ctrl.Tree.Root())
	if m.ctrl.ShowingResult() {
		if rt := m.ctrl.ResultTree(); rt != nil {
			rt.Draw(fb, m.store, rt.Root())
		}
	}
	out := display.RenderTerminal(fb) + "\n"
	if menu := renderOverlay(m.ctrl); menu != "" {
		out += menu
	}
	return out
}

// renderOverlay renders the controller's open overlay menu (Trig, Const,
// Func, Recall, ...) as a column-aligned text list below the framebuffer;
// returns "" when no overlay is open. Column width accounts for wide runes
// (e.g. the periodic-table overlay's element symbols) the way a fixed-width
// terminal grid actually needs, since len() on a string undercounts or
// overcounts relative to the cells a rune occupies.
func renderOverlay(c *entry.Controller) string {
	labels, selected, ok := c.OverlayLabels()
	if !ok || len(labels) == 0 {
		return ""
	}
	width := 0
	for _, l := range labels {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	var b strings.Builder
	for i, l := range labels {
		padded := runewidth.FillRight(l, width)
		if i == selected {
			b.WriteString(overlaySelectedStyle.Render(padded))
		} else {
			b.WriteString(padded)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func main() {
	keyboardDev := flag.String("keyboard", "", "SBDI keyboard device path; empty uses the terminal's own key reader")
	flag.Parse()

	// The framebuffer renders 64x32 terminal cells (128x64 pixels at one
	// character per 2x2 block); warn rather than fail when the host
	// terminal can't fit that, mirroring the teacher's own
	// term.GetSize-with-fallback check.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		const wantCols, wantRows = 64, 32
		if w < wantCols || h < wantRows {
			fmt.Fprintf(os.Stderr, "calc: terminal is %dx%d, display wants at least %dx%d\n", w, h, wantCols, wantRows)
		}
	}

	if *keyboardDev != "" {
		// Exercise the sbdi framer against a real serial device, per
		// §6.1: "exercised by cmd/calc only when a -keyboard device is
		// supplied; the default path still uses bubbletea's terminal
		// key reader."
		f, err := os.Open(*keyboardDev)
		if err != nil {
			fmt.Fprintln(os.Stderr, "calc: opening keyboard device:", err)
			os.Exit(1)
		}
		defer f.Close()
		go drainKeyboard(sbdi.NewReader(f))
	}

	p := tea.NewProgram(initialModel(*keyboardDev))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}

// drainKeyboard reads SBDI frames in the background; a real integration
// would forward decoded keys into the bubbletea program via p.Send, left
// as a TODO since there is no physical SBDI bus to test this against.
func drainKeyboard(r *sbdi.Reader) {
	for {
		if _, err := r.ReadFrame(); err != nil {
			return
		}
	}
}
