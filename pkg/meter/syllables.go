package meter

type evidence struct {
	count     int
	locations []int
}

func (e *evidence) add(hemNo int) {
	e.count++
	e.locations = append(e.locations, hemNo)
}

type syllableEvidence struct {
	longFirst   evidence
	shortFirst  evidence
	longSecond  evidence
	shortSecond evidence
}

// analyzeSyllables records everything one hemistich reveals about the
// opening two syllables of the meter.
func analyzeSyllables(reconst, nospace []rune, hemNo int, ev *syllableEvidence) {
	if longFirstSyllable(reconst) {
		ev.longFirst.add(hemNo)
	}

	if shortFirstSyllable(reconst) {
		ev.shortFirst.add(hemNo)
	}

	if longSecondSyllable(reconst) {
		ev.longSecond.add(hemNo)
	}

	if shortSecondSyllable(reconst, nospace) {
		ev.shortSecond.add(hemNo)
	}

	switch initialClues(reconst) {
	case "kasi", "yaki":
		ev.shortFirst.add(hemNo)
		ev.longSecond.add(hemNo)
	case "chist", "dust", "nist", "ham-chu", "kist":
		ev.longFirst.add(hemNo)
		ev.shortSecond.add(hemNo)
	case "chandan":
		ev.longFirst.add(hemNo)
		ev.longSecond.add(hemNo)
	}
}

func longFirstSyllable(reconst []rune) bool {
	if len(reconst) == 0 {
		return false
	}

	// Initial alif maddah, or alif as second character
	if reconst[0] == 'آ' || runeAt(reconst, 1) == 'ا' {
		return true
	}

	// Initial "īn" or "khwā-"
	if hasAnyPrefix(reconst, "این", "خوا") {
		return true
	}

	// Initial "az," "har," "gar," "ay," or "ham" followed by a space and
	// then a consonant. "Bar" is excluded; it can be "bar-i" with iżāfa.
	if hasAnyPrefix(reconst, "از ", "هر ", "گر ", "ای ", "هم ") &&
		isConsonant(runeAt(reconst, 3)) {
		return true
	}

	// Initial "amrūz"; also flags a long second syllable
	if hasPrefix(reconst, "امروز") {
		return true
	}

	return false
}

func shortFirstSyllable(reconst []rune) bool {
	// Initial "zih" followed by a consonant after a space
	if hasPrefix(reconst, "ز ") && isConsonant(runeAt(reconst, 2)) {
		return true
	}

	// Initial "bi," "ki," "chu," "chi," or "na" followed by a space;
	// initial "kujā," "hamī," "khudā," "agar," "chirā," or "digar"
	if hasAnyPrefix(reconst,
		"به ", "که ", "چو ", "چه ", "نه ",
		"کجا", "همی", "خدا", "اگر", "چرا", "دگر") {
		return true
	}

	// Initial "shavad," "magar," "marā," "turā," or "hama" followed by a
	// space; or initial "chunīn," "chunān," or "bi-bīn-"
	if hasAnyPrefix(reconst,
		"شود ", "مگر ", "مرا ", "ترا ", "همه ",
		"چنین", "چنان", "ببین") {
		return true
	}

	return false
}

func longSecondSyllable(reconst []rune) bool {
	// Alif as third character, non-word-initial, not after vāv or another
	// alif. "Nā-umīd" shows the limits of alif as a long-vowel marker.
	if runeAt(reconst, 2) == 'ا' {
		second := runeAt(reconst, 1)
		if second != ' ' && second != 'و' && second != 'ا' {
			return true
		}
	}

	// Initial "agar" followed by a consonant; the short first syllable
	// will already have been flagged
	if hasPrefix(reconst, "اگر ") && isConsonant(runeAt(reconst, 4)) {
		return true
	}

	// Initial "bāshad" followed by a consonant. "Sāqī" is excluded; it can
	// be spoiled by iżāfa.
	if hasPrefix(reconst, "باشد ") && isConsonant(runeAt(reconst, 5)) {
		return true
	}

	// Initial "amrūz"
	if hasPrefix(reconst, "امروز") {
		return true
	}

	// An opening word like "tā," "bā," "yā," followed by a clearly long
	// syllable
	if runeAt(reconst, 1) == 'ا' && runeAt(reconst, 2) == ' ' &&
		longFirstSyllable(runesFrom(reconst, 3)) {
		return true
	}

	// Opening "ay," "gar," or "az" plus a consonant, then a clearly long
	// syllable
	if hasAnyPrefix(reconst, "ای ", "گر ", "از ") &&
		isConsonant(runeAt(reconst, 3)) &&
		longFirstSyllable(runesFrom(reconst, 3)) {
		return true
	}

	// Opening "bi" or "ki" (short), then a clearly long syllable
	if hasAnyPrefix(reconst, "به ", "که ") &&
		longFirstSyllable(runesFrom(reconst, 3)) {
		return true
	}

	// Initial "chunīn" or "chunān"; the short first syllable will already
	// have been flagged
	if hasAnyPrefix(reconst, "چنین", "چنان") {
		return true
	}

	return false
}

func shortSecondSyllable(reconst, nospace []rune) bool {
	// Opening "bi" or "ki," then a clearly short syllable
	if hasAnyPrefix(reconst, "به ", "که ") &&
		shortFirstSyllable(runesFrom(reconst, 3)) {
		return true
	}

	// An opening word like "tā," "bā," "yā," followed by a clearly short
	// syllable
	if runeAt(reconst, 1) == 'ا' && runeAt(reconst, 2) == ' ' &&
		shortFirstSyllable(runesFrom(reconst, 3)) {
		return true
	}

	// Initial "har-ki," "ān-ki," "gar-chi," or "ān-chi," with or without
	// an internal space; also initial "pādishā-"
	if hasAnyPrefix(reconst, "هرکه ", "آنکه ", "گرچه ", "آنچه ", "پادشا") {
		return true
	}
	if hasAnyPrefix(reconst, "هر که ", "آن که ", "گر چه ", "آن چه ") {
		return true
	}

	// "Chunīn" or "chunān" starting at the third letter
	if len(nospace) >= 6 {
		mid := string(nospace[2:6])
		if mid == "چنین" || mid == "چنان" {
			return true
		}
	}

	// Opening "īn" plus a consonant, then a clearly short syllable
	if hasPrefix(reconst, "این ") && isConsonant(runeAt(reconst, 4)) &&
		shortFirstSyllable(runesFrom(reconst, 4)) {
		return true
	}

	return false
}

// initialClues catches opening words whose scansion is fixed regardless of
// what follows.
func initialClues(reconst []rune) string {
	// "Kasī" or "yakī" followed by a consonant
	if hasPrefix(reconst, "کسی ") && isConsonant(runeAt(reconst, 4)) {
		return "kasi"
	}
	if hasPrefix(reconst, "یکی ") && isConsonant(runeAt(reconst, 4)) {
		return "yaki"
	}

	// "Chīst," "dūst," and "kīst" always scan long-short
	if hasPrefix(reconst, "چیست") {
		return "chist"
	}
	if hasPrefix(reconst, "دوست") {
		return "dust"
	}

	// "Nīst" needs the space; otherwise "nayistān" trips this up
	if hasPrefix(reconst, "نیست ") {
		return "nist"
	}

	// "Ham-chu" followed by a space, with or without an internal space
	if hasPrefix(reconst, "همچو ") || hasPrefix(reconst, "هم چو ") {
		return "ham-chu"
	}

	// "Chandān" always scans long-long
	if hasPrefix(reconst, "چندان") {
		return "chandan"
	}

	if hasPrefix(reconst, "کیست") {
		return "kist"
	}

	return ""
}
