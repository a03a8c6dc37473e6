package input

import (
	"fmt"
	"time"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// Keyboard turns key presses into held pedal levels. The n-th key of a lane
// sets the lane to (n+1)/len(keys); the release key drops every lane to
// zero. Terminals report presses only, so a level holds until the next key.
type Keyboard struct {
	Pedals      *Pedals
	Layout      game.Layout
	Accelerator []rune
	Brake       []rune
	Release     rune

	// Transform is applied to a level before it is stored, e.g. to turn it
	// into a wheel angle.
	Transform func(float64) float64

	events <-chan keyboard.KeyEvent
}

func NewKeyboard(layout game.Layout, accelerator, brake string) *Keyboard {
	k := &Keyboard{
		Pedals:      NewPedals(),
		Layout:      layout,
		Accelerator: []rune(accelerator),
		Brake:       []rune(brake),
		Release:     ' ',
	}
	for _, lane := range layout.Lanes() {
		k.set(lane, 0)
	}
	return k
}

// Open starts listening to the terminal.
func (k *Keyboard) Open() error {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	k.events = events
	return nil
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}

// Poll applies the key events that occurred since the last frame and
// reports whether the player asked to quit.
func (k *Keyboard) Poll() bool {
	quit := false
	for n := len(k.events); n > 0; n-- {
		ev := <-k.events
		if ev.Err != nil {
			continue
		}
		if k.Apply(ev.Key, ev.Rune) {
			quit = true
		}
	}
	return quit
}

// Wait blocks until the next key event.
func (k *Keyboard) Wait() {
	<-k.events
}

// Apply handles one key and reports whether it was the quit key.
func (k *Keyboard) Apply(key keyboard.Key, r rune) bool {
	if key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
		return true
	}
	if key == keyboard.KeySpace {
		r = ' '
	}
	if r == k.Release {
		for _, lane := range k.Layout.Lanes() {
			k.set(lane, 0)
		}
		return false
	}
	if k.Layout == game.SingleLane {
		if level, ok := level(k.Accelerator, r); ok {
			k.set(game.Single, level)
		}
		return false
	}
	if level, ok := level(k.Accelerator, r); ok {
		k.set(game.Accelerator, level)
	}
	if level, ok := level(k.Brake, r); ok {
		k.set(game.Brake, level)
	}
	return false
}

func (k *Keyboard) Sample(lane game.Lane, now time.Duration) (float64, bool) {
	return k.Pedals.Sample(lane, now)
}

func (k *Keyboard) set(lane game.Lane, v float64) {
	if k.Transform != nil {
		v = k.Transform(v)
		k.Pedals.values[lane] = v
		return
	}
	k.Pedals.Set(lane, v)
}

func level(keys []rune, r rune) (float64, bool) {
	for i, c := range keys {
		if c == r {
			return float64(i+1) / float64(len(keys)), true
		}
	}
	return 0, false
}
