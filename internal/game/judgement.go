package game

type Judgement uint8

const (
	None Judgement = iota
	Perfect
	Great
	Good
	OK
	Miss
)

// Judgements lists every grade a resolved target can carry, best first.
var Judgements = []Judgement{Perfect, Great, Good, OK, Miss}

func (j Judgement) String() string {
	switch j {
	case Perfect:
		return "PERFECT"
	case Great:
		return "GREAT"
	case Good:
		return "GOOD"
	case OK:
		return "OK"
	case Miss:
		return "MISS"
	}
	return "NONE"
}

func (j Judgement) IsHit() bool {
	return j >= Perfect && j <= OK
}
