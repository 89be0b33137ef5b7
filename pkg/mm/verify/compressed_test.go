package verify

import (
	"testing"

	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
)

func TestDecodeLetters_TerminalDigits(t *testing.T) {
	steps, _, err := decodeLetters("AAB")
	if err != "" {
		t.Fatalf("decodeLetters(%q) = %q, want no error", "AAB", err)
	}

	want := []compressedStep{{number: 1}, {number: 1}, {number: 2}}
	if len(steps) != len(want) {
		t.Fatalf("decodeLetters(%q) = %v, want %v", "AAB", steps, want)
	}

	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("decodeLetters(%q)[%d] = %v, want %v", "AAB", i, steps[i], want[i])
		}
	}
}

func TestDecodeLetters_ContinuationDigits(t *testing.T) {
	// "U" then "A": continuation digit 1, then terminal digit 1, giving
	// num = 20*1 + 1 = 21.
	steps, _, err := decodeLetters("UA")
	if err != "" {
		t.Fatalf("decodeLetters(%q) = %q, want no error", "UA", err)
	}

	if len(steps) != 1 || steps[0].number != 21 {
		t.Fatalf("decodeLetters(%q) = %v, want [{number: 21}]", "UA", steps)
	}
}

func TestDecodeLetters_SaveMarkerAfterStep(t *testing.T) {
	steps, _, err := decodeLetters("AZ")
	if err != "" {
		t.Fatalf("decodeLetters(%q) = %q, want no error", "AZ", err)
	}

	if len(steps) != 1 || !steps[0].save {
		t.Fatalf("decodeLetters(%q) = %v, want a single saved step", "AZ", steps)
	}
}

func TestDecodeLetters_StrayZWithNoPrecedingStep(t *testing.T) {
	_, _, err := decodeLetters("Z")
	if err == "" {
		t.Fatal("expected a leading Z with no proof step to be an error")
	}
}

func TestDecodeLetters_DoubleZIsStray(t *testing.T) {
	_, _, err := decodeLetters("ABZZ")
	if err == "" {
		t.Fatal("expected a second consecutive Z to be a stray Z error")
	}
}

func TestDecodeLetters_ZMidNumberIsError(t *testing.T) {
	_, _, err := decodeLetters("AUZ")
	if err == "" {
		t.Fatal("expected a Z in the middle of an encoded number to be an error")
	}
}

func TestDecodeLetters_InvalidCharacter(t *testing.T) {
	_, bad, err := decodeLetters("A1")
	if err == "" {
		t.Fatal("expected a non-letter character to be an error")
	}

	if bad != '1' {
		t.Fatalf("decodeLetters reported bad byte %q, want '1'", bad)
	}
}

func TestDecodeLetters_TrailingContinuationDigitIsError(t *testing.T) {
	_, _, err := decodeLetters("U")
	if err == "" {
		t.Fatal("expected a letter stream ending mid-number to be an error")
	}
}

func TestDecodeCompressedDigits_EmbeddedQuestionMarkIsIncomplete(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
trc $p wff t = t $= ( weq ) AB?AB $.
`
	result := verifyText(t, src)

	if !result.OK() {
		for _, d := range result.Diagnostics {
			t.Logf("diagnostic: %s", diag.Format(d))
		}

		t.Fatal("a '?' embedded in a compressed proof token should warn, not hard-error")
	}

	if result.VerifiedWarn != 1 {
		t.Fatalf("expected exactly one warning, got %d", result.VerifiedWarn)
	}

	if result.VerifiedOK != 0 {
		t.Fatalf("an incomplete compressed proof should not count as verified, got %d", result.VerifiedOK)
	}
}
