package letter

import (
	"regexp"
	"strings"
)

// Fixed closing block appended to every rendered letter, regardless of what
// the generated text ended with (any generated sign-off is stripped by Format).
const (
	ClosingLine   = "Tot gauw"
	SignatureLine = "Hoogachtend"
	SignatureName = "Sinterklaas"
)

// FormattedLetter is the structured form of a message, ready for layout.
// Salutation is empty when the input had no sentences.
type FormattedLetter struct {
	Salutation string   `json:"salutation,omitempty"`
	Paragraphs []string `json:"paragraphs"`
}

// closingPatterns match the sign-off variants gpt tends to produce, in the
// order they are stripped
var closingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)tot gauw[,\s]*hoogachtend[,\s]*sinterklaas`),
	regexp.MustCompile(`(?i)tot gauw[,\s]*hoogachtend`),
	regexp.MustCompile(`(?i)hoogachtend[,\s]*sinterklaas`),
}

var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// Format splits a raw message into a salutation and 1-3 body paragraphs.
// The first sentence becomes the salutation (trailing comma stripped); the
// remaining sentences are bucketed by count: up to 2 sentences give one
// paragraph, 3-4 give two, 5 or more give three. The bucketing is a fixed
// layout rule, not a semantic split.
func Format(raw string) FormattedLetter {
	for _, pattern := range closingPatterns {
		raw = pattern.ReplaceAllString(raw, "")
	}

	// Collapse runs of whitespace to single spaces
	raw = strings.Join(strings.Fields(raw), " ")

	sentences := splitSentences(raw)
	if len(sentences) == 0 {
		return FormattedLetter{}
	}

	salutation := strings.TrimRight(sentences[0], ",")
	body := sentences[1:]

	var groups [][]string
	switch {
	case len(body) <= 2:
		groups = [][]string{body}
	case len(body) <= 4:
		groups = [][]string{body[:2], body[2:]}
	default:
		groups = [][]string{body[:2], body[2:4], body[4:]}
	}

	var paragraphs []string
	for _, group := range groups {
		if p := strings.Join(group, " "); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	return FormattedLetter{Salutation: salutation, Paragraphs: paragraphs}
}

// splitSentences splits on sentence-ending punctuation followed by
// whitespace, keeping the punctuation with its sentence
func splitSentences(s string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(s, -1) {
		end := loc[0] + 1 // include the punctuation mark
		if sentence := strings.TrimSpace(s[start:end]); sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = loc[1]
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}
