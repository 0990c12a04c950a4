package services

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// TokenCounts is what the analyzer needs from a tokenized answer.
type TokenCounts struct {
	Words     int
	Sentences int
}

type Tokenizer interface {
	Tokenize(text string) (TokenCounts, error)
}

// ProseTokenizer counts words and sentences with prose's segmenter and
// tokenizer. Punctuation-only tokens are not words. The segmenter's
// abbreviation list includes "no.", so "I said no. Why?" is one sentence.
type ProseTokenizer struct{}

func NewProseTokenizer() *ProseTokenizer {
	return &ProseTokenizer{}
}

func (t *ProseTokenizer) Tokenize(text string) (TokenCounts, error) {
	if strings.TrimSpace(text) == "" {
		return TokenCounts{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return TokenCounts{}, err
	}

	words := 0
	for _, tok := range doc.Tokens() {
		if isWord(tok.Text) {
			words++
		}
	}
	return TokenCounts{Words: words, Sentences: len(doc.Sentences())}, nil
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
