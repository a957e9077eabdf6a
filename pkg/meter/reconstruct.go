package meter

import (
	"fmt"
	"strings"
)

var consonants = map[rune]struct{}{
	'ء': {}, 'ب': {}, 'پ': {}, 'ت': {}, 'ث': {}, 'ج': {}, 'چ': {}, 'ح': {},
	'خ': {}, 'د': {}, 'ذ': {}, 'ر': {}, 'ز': {}, 'ژ': {}, 'س': {}, 'ش': {},
	'ص': {}, 'ض': {}, 'ط': {}, 'ظ': {}, 'ع': {}, 'غ': {}, 'ف': {}, 'ق': {},
	'ک': {}, 'گ': {}, 'ل': {}, 'م': {}, 'ن': {}, 'ه': {},
}

// Hamzah diacritic, fatḥah, shaddah, ḍammah, kasrah, sukūn, tanwīn fatḥah,
// dagger alif, tanwīn kasrah, tanwīn ḍammah. All dropped.
var ignoredMarks = map[rune]struct{}{
	'ٔ': {}, 'َ': {}, 'ّ': {}, 'ُ': {}, 'ِ': {},
	'ْ': {}, 'ً': {}, 'ٰ': {}, 'ٍ': {}, 'ٌ': {},
}

func isConsonant(c rune) bool {
	_, ok := consonants[c]
	return ok
}

// reconstructHemistich normalizes one hemistich to the bare letters that
// the syllable heuristics operate on. Hamzah-carrier forms are folded into
// their base letters, diacritics and punctuation are dropped, and ZWNJ
// becomes a space. Anything else means the input is not Persian text.
func reconstructHemistich(hem string) ([]rune, error) {
	var reconst []rune

	for _, c := range strings.TrimSpace(hem) {
		switch {
		// Vowels
		case c == 'ا' || c == 'آ' || c == 'و' || c == 'ی':
			reconst = append(reconst, c)
		// Consonants (including isolated hamzah)
		case isConsonant(c):
			reconst = append(reconst, c)
		// Alif hamzah
		case c == 'أ':
			reconst = append(reconst, 'ا')
		// Vāv hamzah
		case c == 'ؤ':
			reconst = append(reconst, 'و')
		// Yā’ hamzah
		case c == 'ئ':
			reconst = append(reconst, 'ی')
		// Tā’ marbūṭah becomes hā’
		case c == 'ة':
			reconst = append(reconst, 'ه')
		case isIgnoredMark(c):
		case c == ' ':
			reconst = append(reconst, c)
		// ZWNJ becomes space
		case c == '‌':
			reconst = append(reconst, ' ')
		// Comma, question mark, exclamation mark
		case c == '،' || c == '؟' || c == '!':
		default:
			return nil, fmt.Errorf("unexpected character %q: text must be fully in Persian/Arabic script", c)
		}
	}

	return reconst, nil
}

func isIgnoredMark(c rune) bool {
	_, ok := ignoredMarks[c]
	return ok
}

func dropSpaces(r []rune) []rune {
	nospace := make([]rune, 0, len(r))
	for _, c := range r {
		if c != ' ' {
			nospace = append(nospace, c)
		}
	}
	return nospace
}

// hasPrefix reports whether r begins with the runes of s.
func hasPrefix(r []rune, s string) bool {
	p := []rune(s)
	if len(r) < len(p) {
		return false
	}
	for i, c := range p {
		if r[i] != c {
			return false
		}
	}
	return true
}

func hasAnyPrefix(r []rune, prefixes ...string) bool {
	for _, s := range prefixes {
		if hasPrefix(r, s) {
			return true
		}
	}
	return false
}

// runeAt returns the rune at index i, or zero when out of range. The
// original analyzer indexed unconditionally and could only crash on
// degenerate input; bounds are handled here instead.
func runeAt(r []rune, i int) rune {
	if i < len(r) {
		return r[i]
	}
	return 0
}

func runesFrom(r []rune, i int) []rune {
	if i >= len(r) {
		return nil
	}
	return r[i:]
}
