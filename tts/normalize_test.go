package tts

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizeStripsFencedCode(t *testing.T) {
	in := "Run this\n```\nsecret_token = 42\n```\nDone."
	out := Normalize(in, 2000)

	if strings.Contains(out, "secret") {
		t.Errorf("fence content leaked into output: %q", out)
	}
	if !strings.Contains(out, "Done") {
		t.Errorf("surrounding text lost: %q", out)
	}
}

func TestResolveInlineCode(t *testing.T) {
	tests := []struct {
		span string
		want string
	}{
		{"`except`", "except"},
		{"`get_config()`", "get_config()"},
		{"`retries=3`", "retries=3"},
		{"`a && b`", " "},
		{"`items[0]`", " "},
		{"`if x { y }`", " "},
		{"`plain words inside`", "plain words inside"},
	}

	for _, tt := range tests {
		if got := resolveInlineCode(tt.span); got != tt.want {
			t.Errorf("resolveInlineCode(%q) = %q, want %q", tt.span, got, tt.want)
		}
	}
}

func TestNormalizeDiscardsCodeLikeSpans(t *testing.T) {
	out := Normalize("run `a && b` now", 2000)
	if out != "run now" {
		t.Errorf("got %q, want %q", out, "run now")
	}
}

func TestNormalizeUnmatchedBacktickStaysLiteral(t *testing.T) {
	out := Normalize("a stray ` mark", 2000)
	if !strings.Contains(out, "`") {
		t.Errorf("unmatched backtick should stay literal, got %q", out)
	}
}

func TestNormalizeRewritesLinks(t *testing.T) {
	out := Normalize("see [the docs](https://example.com/page) for more", 2000)
	if strings.Contains(out, "example.com") {
		t.Errorf("link target leaked: %q", out)
	}
	if !strings.Contains(out, "the docs") {
		t.Errorf("link label lost: %q", out)
	}
}

func TestNormalizeStripsHeadersAndLists(t *testing.T) {
	in := "## Summary\n- first\n- second\n1. third"
	out := Normalize(in, 2000)

	for _, bad := range []string{"#", "- ", "1."} {
		if strings.Contains(out, bad) {
			t.Errorf("marker %q survived: %q", bad, out)
		}
	}
	for _, word := range []string{"Summary", "first", "second", "third"} {
		if !strings.Contains(out, word) {
			t.Errorf("content %q lost: %q", word, out)
		}
	}
}

func TestNormalizeStripsTags(t *testing.T) {
	out := Normalize("<result>all good</result>", 2000)
	if strings.ContainsAny(out, "<>") {
		t.Errorf("tag delimiters survived: %q", out)
	}
	if !strings.Contains(out, "all good") {
		t.Errorf("tag content lost: %q", out)
	}
}

func TestNormalizeStripsEmoji(t *testing.T) {
	out := Normalize("shipped \U0001F389\U0001F680 \u2705 \U0001F923", 2000)
	if out != "shipped" {
		t.Errorf("emoji survived: %q", out)
	}
}

func TestNormalizeLengthBound(t *testing.T) {
	in := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	limit := 50

	out := Normalize(in, limit)
	full := Normalize(in, 1_000_000)

	if got := utf8.RuneCountInString(out); got > limit+3 {
		t.Errorf("length %d exceeds limit %d plus ellipsis", got, limit)
	}
	if !strings.HasSuffix(out, PauseToken) {
		t.Errorf("truncated output should end with ellipsis: %q", out)
	}
	if !strings.HasPrefix(full, strings.TrimSuffix(out, PauseToken)) {
		t.Errorf("truncated output is not a prefix of the full text:\n%q\n%q", out, full)
	}
}

func TestNormalizeEmptyAfterClean(t *testing.T) {
	tests := []string{
		"",
		"   \n\t\n",
		"```\nonly code in here\n```",
		"```\ncode\n```\n\n```\nmore\n```\n",
		"\U0001F600\U0001F680",
	}

	for _, in := range tests {
		if out := Normalize(in, 2000); out != "" {
			t.Errorf("Normalize(%q) = %q, want empty", in, out)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// Holds for text free of markdown, code, emoji, and phoneticizable
	// terms. Phonetic replacements may themselves contain hyphens, so
	// they are outside this property.
	tests := []string{
		"Hello there. This is fine! Right: yes.",
		"Wait - no.",
		"A plain sentence without punctuation tricks",
		"One (aside) here",
	}

	for _, in := range tests {
		once := Normalize(in, 2000)
		twice := Normalize(once, 2000)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestNormalizeCollapsesPauseRuns(t *testing.T) {
	// Bold and parenthetical markup back-to-back insert adjacent pauses.
	out := Normalize("**Big** (news)", 2000)
	if strings.Contains(out, PauseToken+" "+PauseToken) {
		t.Errorf("adjacent pause tokens not collapsed: %q", out)
	}
	if pauseRunRe.MatchString(out) {
		t.Errorf("pause run survived collapsing: %q", out)
	}
}

func TestNormalizeConvertsNewlinesToPauses(t *testing.T) {
	out := Normalize("first\n\nsecond", 2000)
	if out != "first "+PauseToken+" second" {
		t.Errorf("got %q", out)
	}
}
