package tts

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// PauseToken is the literal marker inserted to signal a speech pause. It is
// plain text rather than engine markup so it survives every backend.
const PauseToken = "..."

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	codeCharsRe  = regexp.MustCompile(`[;{}\[\]]|&&|\|\|`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	headerRe     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	bulletRe     = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	numberedRe   = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	newlineRe    = regexp.MustCompile(`\s*\n\s*`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
	pauseRunRe   = regexp.MustCompile(`\.\.\.(?:\s*\.\.\.)+`)

	// The six Unicode emoji blocks stripped for clean speech: emoticons,
	// symbols & pictographs, transport & map, flags, misc symbols, and
	// supplemental symbols.
	emojiRe = regexp.MustCompile(`[\x{1F600}-\x{1F64F}` +
		`\x{1F300}-\x{1F5FF}` +
		`\x{1F680}-\x{1F6FF}` +
		`\x{1F1E0}-\x{1F1FF}` +
		`\x{2600}-\x{27BF}` +
		`\x{1F900}-\x{1F9FF}]`)
)

// Normalize converts free-form markdown-flavored text into speech-ready
// text: markup-free, phoneticized, pause-annotated, and bounded to limit
// runes. It is deterministic and total; malformed markdown degrades to
// literal text instead of failing. An empty result means there is nothing
// worth speaking.
func Normalize(raw string, limit int) string {
	text := fencedCodeRe.ReplaceAllString(raw, "")
	text = inlineCodeRe.ReplaceAllStringFunc(text, resolveInlineCode)
	text = linkRe.ReplaceAllString(text, "$1")
	text = headerRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, "")
	text = numberedRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	text = emojiRe.ReplaceAllString(text, "")

	text = Phoneticize(text)
	text = AddSpeechMarkup(text)

	text = newlineRe.ReplaceAllString(text, " "+PauseToken+" ")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = pauseRunRe.ReplaceAllString(text, PauseToken)
	text = strings.TrimSpace(text)

	// Pauses with nothing to say around them are silence, not speech.
	if strings.Trim(text, ". ") == "" {
		return ""
	}

	if limit > 0 && utf8.RuneCountInString(text) > limit {
		text = string([]rune(text)[:limit]) + PauseToken
	}

	return text
}

// resolveInlineCode decides what a single `...` span contributes to speech.
// Structural code is too code-like to speak and becomes a space; everything
// else (keywords, calls like name(), assignments like name=value, prose)
// keeps its content with the backticks dropped.
func resolveInlineCode(span string) string {
	content := strings.Trim(span, "`")
	if codeCharsRe.MatchString(content) {
		return " "
	}
	return content
}
