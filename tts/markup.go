package tts

import "regexp"

var (
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
	parenRe      = regexp.MustCompile(`\(([^()]*)\)`)
	exclaimRe    = regexp.MustCompile(`([!?])\s+`)
	sentenceRe   = regexp.MustCompile(`\.\s+([A-Z])`)
	colonRe      = regexp.MustCompile(`:\s+`)
	standaloneRe = regexp.MustCompile(`\s--?\s`)
)

// AddSpeechMarkup inserts pause tokens at sentence and clause boundaries
// and converts emphasis into pause-wrapped text. Everything stays literal
// text so it works on every backend; no engine has a portable emphasis
// primitive. The sentence rule (period, whitespace, capital) is a
// heuristic and will mis-handle some abbreviations; that is accepted.
func AddSpeechMarkup(text string) string {
	text = boldRe.ReplaceAllString(text, PauseToken+" $1 "+PauseToken)
	text = italicRe.ReplaceAllString(text, PauseToken+" $1")
	text = parenRe.ReplaceAllString(text, PauseToken+" $1 "+PauseToken)
	text = exclaimRe.ReplaceAllString(text, "$1 "+PauseToken+" ")
	text = sentenceRe.ReplaceAllString(text, ". "+PauseToken+" $1")
	text = colonRe.ReplaceAllString(text, ": "+PauseToken+" ")
	text = standaloneRe.ReplaceAllString(text, " "+PauseToken+" ")
	return text
}
