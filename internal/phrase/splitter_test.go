package phrase

import (
	"strings"
	"testing"
)

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := Split("   \t\n  "); got != nil {
		t.Errorf("expected nil for whitespace-only input, got %v", got)
	}
}

func TestSplit_SimpleSentences(t *testing.T) {
	got := Split("Hello world. This is a test.")
	want := []string{"Hello world.", "This is a test."}
	assertPhrases(t, got, want)
}

func TestSplit_QuestionAndExclamation(t *testing.T) {
	got := Split("Is this real? Yes it is!")
	want := []string{"Is this real?", "Yes it is!"}
	assertPhrases(t, got, want)
}

func TestSplit_ColonQuoteBundlesLeadIn(t *testing.T) {
	// The colon-introduced quote flushes at its closing quote, with the
	// lead-in clause bundled into the same phrase.
	got := Split(`He said: "Hello there." Then he left.`)
	want := []string{`He said: "Hello there."`, "Then he left."}
	assertPhrases(t, got, want)
}

func TestSplit_CurlyColonQuote(t *testing.T) {
	got := Split("She said: “Hello there.” He nodded.")
	want := []string{"She said: “Hello there.”", "He nodded."}
	assertPhrases(t, got, want)
}

func TestSplit_AbbreviationBeforeUppercaseSplits(t *testing.T) {
	// There is no abbreviation dictionary: a period followed by an uppercase
	// letter splits, even after "Dr.".
	got := Split("Dr. Smith arrived.")
	want := []string{"Dr.", "Smith arrived."}
	assertPhrases(t, got, want)
}

func TestSplit_LowercaseContinuationDoesNotSplit(t *testing.T) {
	got := Split("He left. she stayed.")
	want := []string{"He left. she stayed."}
	assertPhrases(t, got, want)
}

func TestSplit_DecimalNumberDoesNotSplit(t *testing.T) {
	got := Split("Pi is 3.14 exactly. Move on.")
	want := []string{"Pi is 3.14 exactly.", "Move on."}
	assertPhrases(t, got, want)
}

func TestSplit_UnterminatedQuoteSwallowsRemainder(t *testing.T) {
	// An unclosed quote suppresses sentence detection for the rest of the
	// text, so everything becomes one trailing phrase.
	got := Split(`She whispered "I am not sure`)
	want := []string{`She whispered "I am not sure`}
	assertPhrases(t, got, want)
}

func TestSplit_TerminatorInsideQuoteIsSuppressed(t *testing.T) {
	got := Split(`He yelled "Stop! Now!" and ran.`)
	want := []string{`He yelled "Stop! Now!" and ran.`}
	assertPhrases(t, got, want)
}

func TestSplit_TerminatorBeforeQuoteSplits(t *testing.T) {
	got := Split(`Stop. "Go now."`)
	want := []string{"Stop.", `"Go now."`}
	assertPhrases(t, got, want)
}

func TestSplit_MultipleTerminators(t *testing.T) {
	// Splitting is driven by the last terminator's lookahead alone.
	got := Split("Really?! Another one.")
	want := []string{"Really?!", "Another one."}
	assertPhrases(t, got, want)
}

func TestSplit_NormalizesWhitespace(t *testing.T) {
	got := Split("Hello   world.\n\tThis is\na test.")
	want := []string{"Hello world.", "This is a test."}
	assertPhrases(t, got, want)
}

func TestSplit_NoEmptyPhrases(t *testing.T) {
	inputs := []string{
		"Hello world. This is a test.",
		`He said: "Hi." Bye.`,
		"... . ! ?",
		"“only curly”",
		"a. B. c. D.",
	}
	for _, in := range inputs {
		for _, p := range Split(in) {
			if strings.TrimSpace(p) == "" {
				t.Errorf("input %q produced empty phrase", in)
			}
			if p != strings.TrimSpace(p) {
				t.Errorf("input %q produced untrimmed phrase %q", in, p)
			}
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	in := `He said: "Hello there." Then he left. Dr. Smith arrived?! "Odd.`
	first := Split(in)
	second := Split(in)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("phrase %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestSplit_PhrasesPreserveNormalizedText(t *testing.T) {
	in := "One two.  Three four! “Five.”"
	normalized := NormalizeWhitespace(in)
	joined := strings.Join(Split(in), " ")
	if joined != normalized {
		t.Errorf("joined phrases %q do not reproduce normalized input %q", joined, normalized)
	}
}

func assertPhrases(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d phrases, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phrase %d = %q, want %q", i, got[i], want[i])
		}
	}
}
