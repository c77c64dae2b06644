// Package content parses raw draft text into the structural units the
// checkers operate on: hashtags, body paragraphs, and a CJK word count.
// This package is at the bottom of the dependency graph and should not
// import any other internal packages.
package content

import (
	"regexp"
	"strings"
)

// hashtagPattern matches a hash mark followed by one or more word or CJK
// characters. Tags are extracted per physical line, left to right.
var hashtagPattern = regexp.MustCompile(`#[\w\x{4e00}-\x{9fff}]+`)

// Document is the parsed form of a draft. It is immutable after Parse.
type Document struct {
	RawText        string   `json:"raw_text"`
	Hashtags       []string `json:"hashtags"`
	BodyParagraphs []string `json:"body_paragraphs"`
	WordCount      int      `json:"word_count"`
}

// Parse splits raw text into hashtags and body paragraphs.
//
// Each non-blank line is scanned for hashtag tokens, which are appended to
// Hashtags in order of appearance (duplicates retained). The line with all
// tags stripped is appended to BodyParagraphs if anything remains. A line
// carrying both a tag and prose therefore contributes to both sequences.
// WordCount counts CJK ideographs in the joined body paragraphs only —
// hashtags, punctuation, and Latin text are not billable body length.
func Parse(raw string) *Document {
	doc := &Document{RawText: raw}

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if tags := hashtagPattern.FindAllString(line, -1); tags != nil {
			doc.Hashtags = append(doc.Hashtags, tags...)
		}
		remaining := strings.TrimSpace(hashtagPattern.ReplaceAllString(line, ""))
		if remaining != "" {
			doc.BodyParagraphs = append(doc.BodyParagraphs, remaining)
		}
	}

	doc.WordCount = countCJK(doc.BodyText())
	return doc
}

// BodyText returns the body paragraphs joined by newlines, i.e. the draft
// with all hashtag tokens removed. Keyword checks scoped to the body search
// this text rather than RawText.
func (d *Document) BodyText() string {
	return strings.Join(d.BodyParagraphs, "\n")
}

func countCJK(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fff {
			n++
		}
	}
	return n
}
