// Package dice draws weighted random outcomes for game events.
//
// Every probabilistic branch in the game goes through an Engine so that a
// session can be replayed exactly under a fixed seed.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jwebster45206/d20"
)

// Nothing is the outcome of an entry that has no effect. It is drawn like any
// other outcome.
const Nothing = ""

// ErrInvalidWeights is returned when a table has no positive total weight or
// contains a negative weight.
var ErrInvalidWeights = errors.New("invalid weights")

// Entry is one weighted row of a Table.
type Entry struct {
	Outcome string `json:"outcome" yaml:"outcome"`
	Weight  int    `json:"weight" yaml:"weight"`
}

// Table is an ordered list of weighted outcomes.
type Table []Entry

// Total returns the sum of all weights in the table.
func (t Table) Total() int {
	total := 0
	for _, e := range t {
		total += e.Weight
	}
	return total
}

// Validate reports whether the table can be drawn from.
func (t Table) Validate() error {
	for _, e := range t {
		if e.Weight < 0 {
			return fmt.Errorf("%w: outcome %q has negative weight %d", ErrInvalidWeights, e.Outcome, e.Weight)
		}
	}
	if t.Total() == 0 {
		return fmt.Errorf("%w: total weight is zero", ErrInvalidWeights)
	}
	return nil
}

// Roller rolls dice notation such as "1d20" or "1d11+4". *d20.Roller
// satisfies it.
type Roller interface {
	Roll(notation string) (d20.RollOutcome, error)
}

// Engine draws outcomes from weighted tables by rolling an injected Roller.
type Engine struct {
	roller Roller
}

// New creates an Engine backed by the given roller.
func New(r Roller) *Engine {
	return &Engine{roller: r}
}

// NewSeeded creates an Engine with a fixed seed. A zero seed uses the current
// time, so draws are not reproducible.
func NewSeeded(seed int64) *Engine {
	if seed == 0 {
		return New(d20.NewRandomRoller())
	}
	return New(d20.NewRoller(seed))
}

// Roll rolls dice notation and returns the final value.
func (e *Engine) Roll(notation string) (int, error) {
	out, err := e.roller.Roll(notation)
	if err != nil {
		return 0, fmt.Errorf("roll %s: %w", notation, err)
	}
	return out.Value, nil
}

// MustRoll is like Roll but panics on bad notation.
func (e *Engine) MustRoll(notation string) int {
	v, err := e.Roll(notation)
	if err != nil {
		panic(fmt.Sprintf("dice: %v", err))
	}
	return v
}

// position rolls one die with n faces and returns a zero-based result.
func (e *Engine) position(n int) int {
	return e.MustRoll(fmt.Sprintf("1d%d", n)) - 1
}

// Draw selects one outcome with probability weight/total.
func (e *Engine) Draw(t Table) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	roll := e.position(t.Total())
	current := 0
	for _, entry := range t {
		current += entry.Weight
		if roll < current {
			return entry.Outcome, nil
		}
	}
	// Unreachable for a validated table.
	return t[len(t)-1].Outcome, nil
}

// MustDraw is like Draw but panics on an invalid table. It is meant for
// tables declared in code, where a zero total is a programming error.
func (e *Engine) MustDraw(t Table) string {
	outcome, err := e.Draw(t)
	if err != nil {
		panic(fmt.Sprintf("dice: %v", err))
	}
	return outcome
}

// Pick returns one of the options with equal probability.
func (e *Engine) Pick(options ...string) string {
	if len(options) == 0 {
		panic("dice: Pick called with no options")
	}
	return options[e.position(len(options))]
}

// Between returns a uniform integer in [lo, hi], rolled as 1d(hi-lo+1)
// offset by lo-1.
func (e *Engine) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return e.MustRoll(fmt.Sprintf("1d%d%+d", hi-lo+1, lo-1))
}

// scriptedRoller answers every roll from a fixed list, then with the lowest
// face.
type scriptedRoller struct {
	rolls []int
	next  int
}

func (s *scriptedRoller) Roll(notation string) (d20.RollOutcome, error) {
	r := 0
	if s.next < len(s.rolls) {
		r = s.rolls[s.next]
		s.next++
	}
	mod := 0
	if _, after, ok := strings.Cut(notation, "d"); ok {
		if i := strings.IndexAny(after, "+-"); i >= 0 {
			v, err := strconv.Atoi(after[i:])
			if err != nil {
				return d20.RollOutcome{}, err
			}
			mod = v
		}
	}
	return d20.RollOutcome{Value: r + 1 + mod, DiceRolls: []int{r + 1}}, nil
}

// Scripted returns an Engine that replays the given rolls. Each roll is the
// zero-based face shown: the position within a table's total weight, the
// option index for Pick, or the offset from lo for Between. Once the rolls
// run out every die shows its lowest face.
func Scripted(rolls ...int) *Engine {
	return New(&scriptedRoller{rolls: rolls})
}
