package meter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReconstructHemistich(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain letters", "گفت و گو", "گفت و گو"},
		{"diacritics dropped", "عشقِ تو", "عشق تو"},
		{"zwnj becomes space", "می‌روم", "می روم"},
		{"ya hamzah folded", "مسئله", "مسیله"},
		{"alif hamzah folded", "رأفت", "رافت"},
		{"punctuation dropped", "کجا؟", "کجا"},
		{"edges trimmed", "  دل  ", "دل"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reconstructHemistich(tt.input)
			if err != nil {
				t.Fatalf("reconstructHemistich(%q) failed: %v", tt.input, err)
			}
			if string(got) != tt.want {
				t.Errorf("reconstructHemistich(%q) = %q, want %q", tt.input, string(got), tt.want)
			}
		})
	}
}

func TestReconstructHemistich_RejectsNonPersian(t *testing.T) {
	if _, err := reconstructHemistich("دل x شد"); err == nil {
		t.Error("reconstructHemistich() should reject Latin characters")
	}
}

func mustReconstruct(t *testing.T, hem string) []rune {
	t.Helper()
	r, err := reconstructHemistich(hem)
	if err != nil {
		t.Fatalf("reconstructHemistich(%q) failed: %v", hem, err)
	}
	return r
}

func TestLongFirstSyllable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"initial alif maddah", "آمد بهار", true},
		{"alif as second letter", "دانا بود", true},
		{"initial in", "این جهان", true},
		{"az plus consonant", "از دل برفت", true},
		{"initial amruz", "امروز شد", true},
		{"short opener", "به باغ شد", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := longFirstSyllable(mustReconstruct(t, tt.input))
			if got != tt.want {
				t.Errorf("longFirstSyllable(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShortFirstSyllable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"zih plus consonant", "ز دست تو", true},
		{"initial ki", "که گفت این", true},
		{"initial agar", "اگر شود", true},
		{"initial chunin", "چنین گفت", true},
		{"long opener", "آمد بهار", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortFirstSyllable(mustReconstruct(t, tt.input))
			if got != tt.want {
				t.Errorf("shortFirstSyllable(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLongSecondSyllable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"alif as third letter", "سلامت باد", true},
		{"initial chunan", "چنان شد دل", true},
		{"ki plus long syllable", "که آمد او", true},
		{"no signal", "نشست او", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := longSecondSyllable(mustReconstruct(t, tt.input))
			if got != tt.want {
				t.Errorf("longSecondSyllable(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShortSecondSyllable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"initial har-ki", "هرکه آمد", true},
		{"ki plus short syllable", "که به دل شد", true},
		{"chunin at third letter", "تو چنین کن", true},
		{"no signal", "دلم برفت", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconst := mustReconstruct(t, tt.input)
			got := shortSecondSyllable(reconst, dropSpaces(reconst))
			if got != tt.want {
				t.Errorf("shortSecondSyllable(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInitialClues(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"کسی که دید", "kasi"},
		{"یکی مرد", "yaki"},
		{"چیست این", "chist"},
		{"دوست دارم", "dust"},
		{"نیست در", "nist"},
		{"همچو گل", "ham-chu"},
		{"هم چو گل", "ham-chu"},
		{"چندان بگفت", "chandan"},
		{"کیست او", "kist"},
		{"دلم برفت", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := initialClues(mustReconstruct(t, tt.input))
			if got != tt.want {
				t.Errorf("initialClues(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocess(t *testing.T) {
	lines := make([]string, MinHemistichs)
	for i := range lines {
		lines[i] = "دل"
	}

	// Blank lines between hemistichs collapse away
	got, err := Preprocess(strings.Join(lines, "\n\n"))
	if err != nil {
		t.Fatalf("Preprocess() failed: %v", err)
	}
	if n := len(strings.Split(got, "\n")); n != MinHemistichs {
		t.Errorf("got %d hemistichs after preprocess, want %d", n, MinHemistichs)
	}
}

func TestPreprocess_TooShort(t *testing.T) {
	if _, err := Preprocess("دل\nجان"); err == nil {
		t.Error("Preprocess() should reject a poem with too few hemistichs")
	}
}

func TestLoad_RejectsLargeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	if err := os.WriteFile(path, make([]byte, MaxFileSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an oversized file")
	}
}

func TestAnalyze(t *testing.T) {
	hem := "به باغ بزرگ شهر رفتم امشب"
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = hem
	}

	report, err := Analyze(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}

	for _, want := range []string{
		"*** Assessing the following hemistichs ***",
		"1: " + hem,
		"*** Meter length ***",
		"Average letters per hemistich: 20.0",
		"The meter appears to be short (musaddas; or mutaqārib muṡamman).",
		"The first syllable in this meter appears to be short.",
		"The second syllable in this meter appears to be long.",
		"Consider hazaj or mutaqārib.",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\nreport:\n%s", want, report)
		}
	}
}

func TestAnalyze_RejectsNonPersian(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "hello world"
	}

	if _, err := Analyze(strings.Join(lines, "\n")); err == nil {
		t.Error("Analyze() should reject non-Persian text")
	}
}
