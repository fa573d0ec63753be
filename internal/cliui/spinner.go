// Package cliui provides small terminal UX helpers shared by the
// sudokuctl subcommands. Grounded on eng618-parable-bloom's
// pkg/ui/spinner.go, adapted to take its verbosity flag as an explicit
// field instead of reading a package-global.
package cliui

import (
	"fmt"
	"log"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps github.com/briandowns/spinner with start/stop/log
// helpers that avoid tearing the spinner line when interleaving log
// output, e.g. during a long --unique generation run.
type Spinner struct {
	s       *spinner.Spinner
	verbose bool
}

// NewSpinner builds a spinner carrying msg as its suffix. When verbose
// is true the spinner never actually starts animating, so piped/CI
// output stays line-oriented.
func NewSpinner(msg string, verbose bool) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s, verbose: verbose}
}

// Start begins the animation unless verbose mode is on.
func (sp *Spinner) Start() {
	if !sp.verbose {
		sp.s.Start()
	}
}

// Stop halts the animation.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

// UpdateMessage replaces the spinner's suffix text, e.g. to report a
// carving progress count.
func (sp *Spinner) UpdateMessage(format string, args ...interface{}) {
	sp.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// LogInfo stops the spinner, logs a message, and restarts it so the
// animation doesn't leave artifacts behind the log line.
func (sp *Spinner) LogInfo(format string, args ...interface{}) {
	wasRunning := sp.s.Active()
	if wasRunning {
		sp.s.Stop()
	}
	log.Printf(format, args...)
	if wasRunning && !sp.verbose {
		sp.s.Start()
	}
}
