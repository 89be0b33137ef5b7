package verify

import (
	"testing"

	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
)

func verifyText(t *testing.T, src string) Result {
	t.Helper()

	return NewSession(DefaultConfig()).Verify("db.mm", []byte(src), token.NoIncludeResolver{})
}

func TestSession_MinimalUncompressedProof(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
trr $p wff t = t $= tt tt weq $.
`
	result := verifyText(t, src)

	for _, d := range result.Diagnostics {
		t.Logf("diagnostic: %s", diag.Format(d))
	}

	if !result.OK() {
		t.Fatal("expected the database to verify cleanly")
	}

	if result.VerifiedOK != 1 {
		t.Fatalf("expected exactly one verified theorem, got %d", result.VerifiedOK)
	}
}

func TestSession_MinimalCompressedProof(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
trc $p wff t = t $= ( weq ) AAB $.
`
	result := verifyText(t, src)

	if !result.OK() {
		for _, d := range result.Diagnostics {
			t.Logf("diagnostic: %s", diag.Format(d))
		}

		t.Fatal("expected the compressed proof to verify cleanly")
	}

	if result.VerifiedOK != 1 {
		t.Fatalf("expected exactly one verified theorem, got %d", result.VerifiedOK)
	}
}

func TestSession_DisjointViolationRejected(t *testing.T) {
	const src = `
$c term wff R $.
$v t r $.
tt $f term t $.
tr $f term r $.
${
  $d t r $.
  wtr $a wff R t r $.
$}
bad $p wff R t t $= tt tt wtr $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a disjoint-variable violation to be rejected")
	}
}

func TestSession_IncompleteProofIsWarningNotError(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
trr $p wff t = t $= ? $.
`
	result := verifyText(t, src)

	if !result.OK() {
		t.Fatal("an incomplete proof should not be a hard error")
	}

	if result.VerifiedWarn != 1 {
		t.Fatalf("expected exactly one warning, got %d", result.VerifiedWarn)
	}

	if result.VerifiedOK != 0 {
		t.Fatalf("an incomplete proof should not count as verified, got %d", result.VerifiedOK)
	}
}

func TestSession_FinalMismatchStrictByDefault(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
wrong $p wff t = t $= tt tr weq $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a final-expression mismatch to be a hard error by default")
	}
}

func TestSession_FinalMismatchLaxIsWarning(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
wrong $p wff t = t $= tt tr weq $.
`
	cfg := DefaultConfig()
	cfg.StrictFinalCheck = false

	result := NewSession(cfg).Verify("db.mm", []byte(src), token.NoIncludeResolver{})

	if !result.OK() {
		t.Fatal("expected a lax final-expression mismatch to be accepted with a warning")
	}

	if result.VerifiedWarn != 1 {
		t.Fatalf("expected exactly one warning, got %d", result.VerifiedWarn)
	}
}

func TestSession_UnterminatedScopeIsHardError(t *testing.T) {
	const src = `
$c wff $.
${
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected an unclosed scope to be a hard error")
	}
}

func TestSession_DuplicateLabelRejected(t *testing.T) {
	const src = `
$c wff $.
$v x $.
wx $f wff x $.
wx $f wff x $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a duplicate label to be a hard error")
	}
}

func TestSession_VariableWithoutFloatingHypRejectedInExpression(t *testing.T) {
	const src = `
$c wff $.
$v x y $.
wx $f wff x $.
bad $a wff y $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a variable with no active $f hypothesis to be rejected in an expression")
	}
}

func TestSession_ConstantCollidingWithLabelRejected(t *testing.T) {
	const src = `
$c wff $.
$v x $.
wx $f wff x $.
$c wx $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a constant colliding with an existing label to be rejected")
	}
}

func TestSession_VariableCollidingWithLabelRejected(t *testing.T) {
	const src = `
$c wff $.
$v x $.
wx $f wff x $.
$v wx $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a variable colliding with an existing label to be rejected")
	}
}

func TestSession_UncompressedProofSelfReferenceRejected(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
trr $p wff t = t $= trr tt weq $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a proof step referring to its own theorem's label to be rejected")
	}
}

func TestSession_CompressedProofSelfReferenceRejected(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
trc $p wff t = t $= ( trc weq ) ABB $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a compressed proof label list referring to its own theorem's label to be rejected")
	}
}

func TestSession_CompressedProofMandatoryHypInLabelListRejected(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
trc $p wff t = t $= ( tt weq ) ABB $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected a mandatory hypothesis repeated in the compressed label list to be rejected")
	}
}

func TestSession_CompressedProofLabelListUnusedBadRefRejectedEagerly(t *testing.T) {
	const src = `
$c term wff = $.
$v t r $.
tt $f term t $.
tr $f term r $.
weq $a wff t = r $.
trc $p wff t = t $= ( nope ) AB $.
`
	result := verifyText(t, src)

	if result.OK() {
		t.Fatal("expected an unresolvable label in the compressed label list to be rejected even if never dereferenced by the number stream")
	}
}
