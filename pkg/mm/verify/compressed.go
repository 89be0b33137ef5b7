package verify

import (
	"strings"

	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
)

// compressedStep is one decoded reference from a compressed proof's
// letter stream: the 1-based index it names, and whether a "Z" marker
// immediately followed it, requesting that its result be saved.
type compressedStep struct {
	number int
	save   bool
}

// decodeCompressedDigits consumes tokens up to "$.", concatenating them
// into one proof string. A "?" anywhere in it marks the proof incomplete
// and skips decoding entirely; otherwise the string is decoded letter by
// letter: 'A'-'T' are base-20 terminal digits, 'U'-'Y' are base-5
// continuation digits, and 'Z' marks "save the previous step's result".
func (d *Driver) decodeCompressedDigits(theorem token.Token) (steps []compressedStep, incomplete bool, ok bool) {
	var proof strings.Builder

	for {
		tok, has := d.tokens.next()
		if !has {
			return nil, false, d.fail(d.errEOF(diag.ProofStructure, theorem.Text, "unterminated compressed proof for "+theorem.Text))
		}

		if tok.Text == "$." {
			break
		}

		proof.WriteString(tok.Text)
	}

	if strings.ContainsRune(proof.String(), '?') {
		return nil, true, true
	}

	steps, bad, err := decodeLetters(proof.String())
	if err != "" {
		return nil, false, d.fail(errAt(diag.ProofStructure, theorem, string(bad), err))
	}

	return steps, false, true
}

// decodeLetters is the pure decoder behind decodeCompressedDigits,
// separated out so it can be unit-tested without a token queue.
func decodeLetters(s string) ([]compressedStep, byte, string) {
	var steps []compressedStep

	const maxValue = int(^uint(0) >> 1)

	value := 0
	pending := false
	justGotNum := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= 'A' && c <= 'T':
			if value > (maxValue-20)/20 {
				return nil, c, "compressed proof step number overflows"
			}

			value = value*20 + int(c-'A') + 1
			steps = append(steps, compressedStep{number: value})
			value = 0
			pending = false
			justGotNum = true

		case c >= 'U' && c <= 'Y':
			if value > (maxValue-5)/5 {
				return nil, c, "compressed proof step number overflows"
			}

			value = value*5 + int(c-'U') + 1
			pending = true
			justGotNum = false

		case c == 'Z':
			if !justGotNum {
				return nil, c, "stray Z found"
			}

			steps[len(steps)-1].save = true
			justGotNum = false

		default:
			return nil, c, "invalid character in compressed proof letter stream"
		}
	}

	if pending {
		return nil, s[len(s)-1], "compressed proof letter stream ends mid-number"
	}

	return steps, 0, ""
}
