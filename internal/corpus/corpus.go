// Package corpus loads the embedded word and quote data.
package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/verte-zerg/termtype/internal/model"
)

//go:embed words.json
var wordsJSON []byte

//go:embed quotes.json
var quotesJSON []byte

type wordFile struct {
	Words []string `json:"words"`
}

// Words returns the embedded word corpus.
func Words() ([]string, error) {
	var file wordFile
	if err := json.Unmarshal(wordsJSON, &file); err != nil {
		return nil, fmt.Errorf("failed to parse word corpus: %w", err)
	}
	words := make([]string, 0, len(file.Words))
	for _, word := range file.Words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word corpus is empty")
	}
	return words, nil
}

// Quotes returns the embedded quote corpus.
func Quotes() ([]model.Quote, error) {
	var quotes []model.Quote
	if err := json.Unmarshal(quotesJSON, &quotes); err != nil {
		return nil, fmt.Errorf("failed to parse quote corpus: %w", err)
	}
	out := make([]model.Quote, 0, len(quotes))
	for _, quote := range quotes {
		quote.Text = strings.TrimSpace(quote.Text)
		quote.Source = strings.TrimSpace(quote.Source)
		if quote.Text == "" {
			continue
		}
		out = append(out, quote)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("quote corpus is empty")
	}
	return out, nil
}
