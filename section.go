package geogap

import "strings"

// Section is a heading together with the text that follows it, up to the next
// heading or trailing boundary element.
type Section struct {
	Heading   string `json:"heading"`
	Level     int    `json:"level"`
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
}

// NewSection builds a Section, trimming heading and text and counting words.
func NewSection(level int, heading, text string) Section {
	text = strings.TrimSpace(text)
	return Section{
		Heading:   strings.TrimSpace(heading),
		Level:     level,
		Text:      text,
		WordCount: CountWords(text),
	}
}

// CountWords returns the number of whitespace-separated tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
