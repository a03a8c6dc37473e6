package parser

import "git.lost.host/meutraa/pedaldrill/internal/game"

type Parser interface {
	Parse(file string) (*Drill, error)
}

// Drill is a scripted keyframe list. Dropped counts the entries that were
// rejected as malformed.
type Drill struct {
	Name      string
	Keyframes []game.Keyframe
	Dropped   int
}
