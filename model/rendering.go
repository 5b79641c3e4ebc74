package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws snapshots to a terminal
type TerminalRenderer struct {
	// Out defaults to os.Stdout
	Out io.Writer
	// ClearScreen clears the terminal before each frame
	ClearScreen bool
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// OnTick renders one frame; it lets the renderer be registered as a tick observer
func (r *TerminalRenderer) OnTick(s Snapshot, generation int) {
	if r.ClearScreen {
		r.Clear()
	}
	fmt.Fprintf(r.out(), "Gen: %d | Living: %d\n", generation, s.Population())
	r.Display(s)
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(s Snapshot) {
	w := r.out()
	for row := range s.GetRows() {
		for col := range s.GetCols() {
			if s.Alive(row, col) {
				fmt.Fprint(w, gridPosBlock)
			} else {
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
