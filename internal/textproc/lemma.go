package textproc

import "strings"

// irregular maps common irregular plurals to their singular form.
var irregular = map[string]string{
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"feet":     "foot",
	"teeth":    "tooth",
	"geese":    "goose",
	"mice":     "mouse",
}

// Lemmatize reduces a lowercase token to a dictionary base form using
// suffix rules for regular English inflections. The function is idempotent:
// applying it to its own output yields the same token.
func Lemmatize(token string) string {
	if base, ok := irregular[token]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses") && len(token) > 4:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ches") || strings.HasSuffix(token, "shes"):
		if len(token) > 4 {
			return token[:len(token)-2]
		}
	case strings.HasSuffix(token, "xes") && len(token) > 3:
		return token[:len(token)-2]
	}

	if t, ok := stripParticiple(token, "ing", 5); ok {
		return t
	}
	if t, ok := stripParticiple(token, "ed", 4); ok {
		return t
	}

	if strings.HasSuffix(token, "s") && len(token) > 3 &&
		!strings.HasSuffix(token, "ss") &&
		!strings.HasSuffix(token, "us") &&
		!strings.HasSuffix(token, "is") {
		return token[:len(token)-1]
	}

	return token
}

// stripParticiple removes an -ing/-ed suffix when the stem still looks like a
// word: it must keep a vowel, be at least three letters, and the letter before
// the suffix must be a consonant.
func stripParticiple(token, suffix string, minLen int) (string, bool) {
	if !strings.HasSuffix(token, suffix) || len(token) <= minLen {
		return "", false
	}
	stem := token[:len(token)-len(suffix)]
	if len(stem) < 3 || !hasVowel(stem) || isVowel(stem[len(stem)-1]) {
		return "", false
	}
	// runn -> run, plann -> plan; ll and ss stay doubled.
	n := len(stem)
	last := stem[n-1]
	switch {
	case n >= 2 && last == stem[n-2] && !isVowel(last) && last != 'l' && last != 's':
		stem = stem[:n-1]
	case last == 'c' || last == 'v' || last == 'u' || last == 'z':
		// experienc -> experience, manag stays as-is.
		stem += "e"
	case last == 's' && !strings.HasSuffix(stem, "ss") &&
		!strings.HasSuffix(stem, "us") && !strings.HasSuffix(stem, "is"):
		// pars -> parse, releas -> release; a bare trailing s would be
		// re-stripped as a plural on a later pass.
		stem += "e"
	}
	return stem, true
}

func hasVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) {
			return true
		}
	}
	return false
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
