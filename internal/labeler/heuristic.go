package labeler

import (
	"regexp"
	"strings"
	"unicode"
)

// Heuristic is the model-free fallback: runs of capitalized words become
// PERSON candidates, quoted phrases become WORK_OF_ART candidates. It is
// noisy on purpose; the clusterer and ranker absorb the junk.
type Heuristic struct{}

func NewHeuristic() *Heuristic { return &Heuristic{} }

// ceremony vocabulary that starts false runs ("Golden Globes", "Best Actor").
var runBreakers = map[string]struct{}{
	"golden": {}, "globes": {}, "globe": {}, "goldenglobes": {},
	"best": {}, "the": {}, "and": {}, "rt": {}, "hollywood": {},
	"award": {}, "awards": {}, "congrats": {}, "congratulations": {},
}

var quotedRE = regexp.MustCompile(`"([^"]{2,60})"`)

func (h *Heuristic) Label(text string) ([]Span, error) {
	var spans []Span

	for _, m := range quotedRE.FindAllStringSubmatch(text, -1) {
		phrase := strings.TrimSpace(m[1])
		if n := len(strings.Fields(phrase)); n >= 1 && n <= 6 {
			spans = append(spans, Span{Text: phrase, Label: "WORK_OF_ART"})
		}
	}

	var run []string
	flush := func() {
		if len(run) >= 2 && len(run) <= 4 {
			spans = append(spans, Span{Text: strings.Join(run, " "), Label: "PERSON"})
		}
		run = nil
	}
	for _, word := range strings.Fields(text) {
		w := strings.Trim(word, `.,!?;:'"()[]`)
		if !capitalizedWord(w) {
			flush()
			continue
		}
		if _, breaker := runBreakers[strings.ToLower(w)]; breaker {
			flush()
			continue
		}
		run = append(run, w)
	}
	flush()

	return spans, nil
}

// capitalizedWord accepts "Jodie", "O'Brien", "DiCaprio", "B." style tokens:
// an uppercase first rune followed by letters, apostrophes, or periods.
func capitalizedWord(w string) bool {
	if w == "" {
		return false
	}
	runes := []rune(w)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	// Reject shouting; all-caps words are almost never name parts here.
	if len(runes) > 2 && strings.ToUpper(w) == w {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '\'' && r != '.' && r != '-' {
			return false
		}
	}
	return true
}
