package analysis

import (
	"regexp"
	"strings"
)

var (
	urlRe     = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	emailRe   = regexp.MustCompile(`\S+@\S+\.\S+`)
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
)

// contractions fold apostrophe forms to the bare token the boilerplate word
// list uses ("don't" -> "dont"), so the filters see one spelling.
var contractions = strings.NewReplacer(
	"don't", "dont", "didn't", "didnt", "doesn't", "doesnt",
	"won't", "wont", "wouldn't", "wouldnt", "couldn't", "couldnt",
	"shouldn't", "shouldnt", "can't", "cant", "haven't", "havent",
	"hasn't", "hasnt", "hadn't", "hadnt", "isn't", "isnt",
	"aren't", "arent", "wasn't", "wasnt", "weren't", "werent",
	"i'm", "im", "i've", "ive", "i'll", "ill", "i'd", "id",
	"you're", "youre", "you've", "youve", "you'll", "youll", "you'd", "youd",
	"he's", "hes", "she's", "shes", "it's", "its",
	"we're", "were", "we've", "weve", "we'll", "well", "we'd", "wed",
	"they're", "theyre", "they've", "theyve", "they'll", "theyll", "they'd", "theyd",
	"that's", "thats", "there's", "theres", "here's", "heres",
	"what's", "whats", "who's", "whos", "let's", "lets",
)

// NormalizeText lowercases, strips URLs and email addresses, folds
// contractions and collapses every non-word character to whitespace.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(text)
	s = urlRe.ReplaceAllString(s, "")
	s = emailRe.ReplaceAllString(s, "")
	s = contractions.Replace(s)
	s = nonWordRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize returns the normalized word tokens of a message text.
func Tokenize(text string) []string {
	norm := NormalizeText(text)
	if norm == "" {
		return nil
	}
	return strings.Fields(norm)
}

// Boilerplate is the injected exclusion capability shared by the text
// sub-analyses, so the filter logic is testable apart from extraction.
type Boilerplate struct {
	phrases []string
	words   map[string]struct{}
}

func NewBoilerplate(phrases, words []string) *Boilerplate {
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[strings.ToLower(w)] = struct{}{}
	}
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		lowered = append(lowered, strings.ToLower(p))
	}
	return &Boilerplate{phrases: lowered, words: wordSet}
}

// IsWord reports whether a single token is boilerplate.
func (b *Boilerplate) IsWord(w string) bool {
	_, ok := b.words[w]
	return ok
}

// AllWords reports whether every token is boilerplate.
func (b *Boilerplate) AllWords(tokens []string) bool {
	for _, t := range tokens {
		if !b.IsWord(t) {
			return false
		}
	}
	return len(tokens) > 0
}

// NonBoilerplateCount counts tokens outside the word list.
func (b *Boilerplate) NonBoilerplateCount(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if !b.IsWord(t) {
			n++
		}
	}
	return n
}

// PhraseOverlaps reports whether a candidate phrase textually overlaps any
// configured boilerplate phrase, in either containment direction.
func (b *Boilerplate) PhraseOverlaps(phrase string) bool {
	for _, p := range b.phrases {
		if strings.Contains(phrase, p) || strings.Contains(p, phrase) {
			return true
		}
	}
	return false
}
