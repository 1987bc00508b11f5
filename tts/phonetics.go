package tts

import (
	"regexp"
	"strings"
)

// phoneticRule maps one technical term to its spoken form.
type phoneticRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// innerHyphenRe matches a hyphen joining two word characters, as in
// "api-key". Hyphens framed by whitespace are left for the markup pass.
var innerHyphenRe = regexp.MustCompile(`\b-\b`)

// phoneticTable is applied once per rule, in order. Dotted-extension rules
// come first so "config.json" becomes "dot jay-sawn" before the bare-word
// rule sees the remaining "config". New terms are rows here, not code.
var phoneticTable = []phoneticRule{
	// File extensions.
	{regexp.MustCompile(`(?i)\.json\b`), " dot jay-sawn"},
	{regexp.MustCompile(`(?i)\.ya?ml\b`), " dot yam-ul"},
	{regexp.MustCompile(`(?i)\.toml\b`), " dot tah-mul"},
	{regexp.MustCompile(`(?i)\.xml\b`), " dot X M L"},
	{regexp.MustCompile(`(?i)\.csv\b`), " dot C S V"},
	{regexp.MustCompile(`(?i)\.md\b`), " dot mark down"},
	{regexp.MustCompile(`(?i)\.txt\b`), " dot text"},
	{regexp.MustCompile(`(?i)\.py\b`), " dot pie"},
	{regexp.MustCompile(`(?i)\.go\b`), " dot go"},
	{regexp.MustCompile(`(?i)\.sh\b`), " dot S H"},
	{regexp.MustCompile(`(?i)\.env\b`), " dot E N V"},

	// Acronyms and jargon.
	{regexp.MustCompile(`(?i)\bjson\b`), "jay-sawn"},
	{regexp.MustCompile(`(?i)\byaml\b`), "yam-ul"},
	{regexp.MustCompile(`(?i)\bsql\b`), "sequel"},
	{regexp.MustCompile(`(?i)\bapi\b`), "A P I"},
	{regexp.MustCompile(`(?i)\burl\b`), "U R L"},
	{regexp.MustCompile(`(?i)\burls\b`), "U R Ls"},
	{regexp.MustCompile(`(?i)\bhttps\b`), "H T T P S"},
	{regexp.MustCompile(`(?i)\bhttp\b`), "H T T P"},
	{regexp.MustCompile(`(?i)\bcli\b`), "C L I"},
	{regexp.MustCompile(`(?i)\bhtml\b`), "H T M L"},
	{regexp.MustCompile(`(?i)\bcss\b`), "C S S"},
	{regexp.MustCompile(`(?i)\btts\b`), "text to speech"},
	{regexp.MustCompile(`(?i)\bk8s\b`), "kubernetes"},
	{regexp.MustCompile(`(?i)\bkubectl\b`), "kube control"},
	{regexp.MustCompile(`(?i)\basync\b`), "a-sink"},
	{regexp.MustCompile(`(?i)\bregex\b`), "rej ex"},

	// Abbreviations spelled out.
	{regexp.MustCompile(`(?i)\bconfigs\b`), "configurations"},
	{regexp.MustCompile(`(?i)\bconfig\b`), "configuration"},
	{regexp.MustCompile(`(?i)\brepo\b`), "repository"},
	{regexp.MustCompile(`(?i)\bdir\b`), "directory"},
	{regexp.MustCompile(`(?i)\benv\b`), "environment"},
	{regexp.MustCompile(`(?i)\bcmd\b`), "command"},
	{regexp.MustCompile(`(?i)\bauth\b`), "authentication"},
	{regexp.MustCompile(`(?i)\bvenv\b`), "virtual environment"},
	{regexp.MustCompile(`(?i)\bstdout\b`), "standard out"},
	{regexp.MustCompile(`(?i)\bstderr\b`), "standard error"},
	{regexp.MustCompile(`(?i)\bstdin\b`), "standard in"},
}

// Phoneticize rewrites acronyms, extensions, and compound identifiers into
// forms that read naturally when spoken. Best-effort: unmatched terms pass
// through unchanged.
func Phoneticize(text string) string {
	// Separate compound identifiers (api_key, well-known) into words so
	// the whole-word rules below can see their parts.
	text = strings.ReplaceAll(text, "_", " ")
	text = innerHyphenRe.ReplaceAllString(text, " ")

	for _, rule := range phoneticTable {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}

	return text
}
