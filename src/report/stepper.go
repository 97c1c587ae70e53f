package report

import (
	"errors"
	"fmt"

	"github.com/eiannone/keyboard"
)

var ErrQuit = errors.New("stopped from keyboard")

// Stepper pauses after every tick until a key is pressed. q, Esc or Ctrl+C
// stop the run.
type Stepper struct {
	Next    Reporter
	ReadKey func() (rune, keyboard.Key, error)
}

func NewStepper(next Reporter) *Stepper {
	return &Stepper{Next: next, ReadKey: keyboard.GetSingleKey}
}

func (s *Stepper) Tick(snapshot Snapshot) error {
	if err := s.Next.Tick(snapshot); err != nil {
		return err
	}
	char, key, err := s.ReadKey()
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}
	switch {
	case char == 'q', key == keyboard.KeyEsc, key == keyboard.KeyCtrlC:
		return ErrQuit
	}
	return nil
}

func (s *Stepper) Final(summary Summary) error {
	return s.Next.Final(summary)
}
