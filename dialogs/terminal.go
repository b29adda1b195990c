// Package dialogs provides blocking user notices: window.alert in the
// browser and a styled box on a terminal.
package dialogs

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Notifier shows a message the user has to acknowledge.
type Notifier interface {
	Alert(msg string)
}

var alertBorder = lipgloss.Color("#FFC107")

// Terminal writes each alert as a bordered box to w.
type Terminal struct {
	mu    sync.Mutex
	w     io.Writer
	style lipgloss.Style
}

// NewTerminal returns a Terminal notifier. Colors follow what w supports.
func NewTerminal(w io.Writer) *Terminal {
	r := lipgloss.NewRenderer(w)
	return &Terminal{
		w: w,
		style: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(alertBorder).
			Padding(0, 1),
	}
}

func (t *Terminal) Alert(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, t.style.Render(msg))
}
