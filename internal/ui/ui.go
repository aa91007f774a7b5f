package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI and blocks until it exits. Any of signals received
// while running kills the program.
func Run(opts Options, signals ...os.Signal) error {
	model := InitialModelWithOptions(opts)

	programOpts := []tea.ProgramOption{tea.WithoutSignalHandler()}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)

	if len(signals) > 0 {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, signals...)
		defer signal.Stop(sigChan)

		done := make(chan struct{})
		defer close(done)

		go func() {
			select {
			case sig := <-sigChan:
				log.Printf("Received signal: %v", sig)
				p.Kill()
			case <-done:
			}
		}()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
