package engine

import (
	"fmt"
	"math/rand"
)

// Mode selects the value supply strategy for a session.
type Mode string

const (
	// ModeClassic deals and draws from a fixed cyclic pool of 1..19,
	// tracked by a cursor that persists for the whole session.
	ModeClassic Mode = "classic"
	// ModeRandom deals the same pool sequence but shuffles the positions,
	// and draws uniform pool values afterwards.
	ModeRandom Mode = "random"
	// ModeChaotic deals and draws independent uniform values from 1..9;
	// each draw doubles the live cell count.
	ModeChaotic Mode = "chaotic"
)

// poolSize is the length of the cyclic value pool used by the classic and
// random modes.
const poolSize = 19

// chaoticMax is the largest value the chaotic mode produces.
const chaoticMax = 9

// poolValue maps a cursor position onto the 1..19 pool, wrapping.
func poolValue(cursor int) int {
	return cursor%poolSize + 1
}

// deal produces the initial values for a session. Classic mode advances
// the session cursor so later draws continue the sequence; the other
// modes leave it untouched.
func deal(mode Mode, rules Rules, rng *rand.Rand, cursor *int) []int {
	vals := make([]int, rules.InitialDeal)
	switch mode {
	case ModeClassic:
		for i := range vals {
			vals[i] = poolValue(*cursor)
			*cursor++
		}
	case ModeRandom:
		// Same pool sequence as classic, then the positions are shuffled.
		for i := range vals {
			vals[i] = poolValue(i)
		}
		rng.Shuffle(len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
	case ModeChaotic:
		for i := range vals {
			vals[i] = rng.Intn(chaoticMax) + 1
		}
	default:
		panic(fmt.Sprintf("engine: unknown mode %q", mode))
	}
	return vals
}

// drawCount returns how many values an add-numbers draw appends: one in
// classic and random mode, max(1, live) in chaotic mode.
func drawCount(mode Mode, live int) int {
	switch mode {
	case ModeClassic, ModeRandom:
		return 1
	case ModeChaotic:
		if live > 1 {
			return live
		}
		return 1
	default:
		panic(fmt.Sprintf("engine: unknown mode %q", mode))
	}
}

// draw produces n values for the add-numbers tool, where n came from
// drawCount for the same board state.
func draw(mode Mode, rng *rand.Rand, cursor *int, n int) []int {
	vals := make([]int, n)
	switch mode {
	case ModeClassic:
		for i := range vals {
			vals[i] = poolValue(*cursor)
			*cursor++
		}
	case ModeRandom:
		for i := range vals {
			vals[i] = rng.Intn(poolSize) + 1
		}
	case ModeChaotic:
		for i := range vals {
			vals[i] = rng.Intn(chaoticMax) + 1
		}
	default:
		panic(fmt.Sprintf("engine: unknown mode %q", mode))
	}
	return vals
}

// knownMode reports whether id names a supply strategy.
func knownMode(id Mode) bool {
	switch id {
	case ModeClassic, ModeRandom, ModeChaotic:
		return true
	}
	return false
}
