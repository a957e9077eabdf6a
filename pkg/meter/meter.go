// Package meter assesses the poetic meter of a Persian ghazal from the
// opening syllables of its hemistichs and the average hemistich length.
package meter

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

const (
	// MaxFileSize caps the input; a ghazal is never anywhere near this.
	MaxFileSize = 10_000
	// MinHemistichs is the minimum needed for a meaningful assessment.
	MinHemistichs = 10
	// MaxHemistichs caps how many lines are analyzed.
	MaxHemistichs = 40
)

var multiNewline = regexp.MustCompile(`\n{2,}`)

type analysis struct {
	longMeter    bool
	shortMeter   bool
	totalLetters int
	syllables    syllableEvidence
}

// AnalyzeFile loads, preprocesses, and analyzes one poem file, returning
// the textual report.
func AnalyzeFile(path string) (string, error) {
	text, err := Load(path)
	if err != nil {
		return "", err
	}
	return Analyze(text)
}

// Load reads a poem file, rejecting anything implausibly large.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file metadata for %q: %w", path, err)
	}

	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("file %q is too large (%d bytes); maximum allowed size is %d bytes",
			path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return string(data), nil
}

// Preprocess collapses blank lines and verifies the poem is long enough.
func Preprocess(text string) (string, error) {
	trimmed := multiNewline.ReplaceAllString(strings.TrimSpace(text), "\n")

	lineCount := len(strings.Split(trimmed, "\n"))
	if lineCount < MinHemistichs {
		return "", fmt.Errorf("poem is too short: found %d hemistichs; at least %d are required",
			lineCount, MinHemistichs)
	}

	return trimmed, nil
}

// Analyze runs the full assessment over preprocessed or raw poem text and
// returns the report.
func Analyze(text string) (string, error) {
	processed, err := Preprocess(text)
	if err != nil {
		return "", err
	}

	hemistichs := strings.Split(processed, "\n")

	var report strings.Builder
	report.WriteString("*** Assessing the following hemistichs ***\n")

	a := &analysis{}
	for i, hem := range hemistichs {
		if i == MaxHemistichs {
			break
		}
		hemNo := i + 1

		reconst, err := reconstructHemistich(hem)
		if err != nil {
			return "", err
		}
		nospace := dropSpaces(reconst)

		fmt.Fprintf(&report, "%d: %s\n", hemNo, string(reconst))
		a.totalLetters += len(nospace)

		analyzeSyllables(reconst, nospace, hemNo, &a.syllables)
	}

	a.assessMeterLength(&report, len(hemistichs))

	longFirst, shortFirst := a.syllables.firstAssessment(&report)
	longSecond, shortSecond := a.syllables.secondAssessment(&report)

	finalAssessment(&report, a.longMeter, a.shortMeter,
		longFirst, shortFirst, longSecond, shortSecond)

	return report.String(), nil
}

// assessMeterLength classifies the meter as long or short from the average
// letter count per hemistich.
func (a *analysis) assessMeterLength(report *strings.Builder, totalHemistichs int) {
	if totalHemistichs > MaxHemistichs {
		totalHemistichs = MaxHemistichs
	}
	avgLetters := float64(a.totalLetters) / float64(totalHemistichs)

	report.WriteString("*** Meter length ***\n")
	fmt.Fprintf(report, "Average letters per hemistich: %.1f\n", avgLetters)

	switch {
	case avgLetters >= 23.5:
		a.longMeter = true
		report.WriteString("The meter appears to be long (muṡamman).\n")
	case avgLetters >= 22.5:
		a.longMeter = true
		report.WriteString("The meter appears to be long (muṡamman).\n")
		report.WriteString("(But this is pretty short for a long meter!)\n")
	case avgLetters >= 21.0:
		a.shortMeter = true
		report.WriteString("The meter appears to be short (musaddas; or mutaqārib muṡamman).\n")
		report.WriteString("(But this is pretty long for a short meter!)\n")
	default:
		a.shortMeter = true
		report.WriteString("The meter appears to be short (musaddas; or mutaqārib muṡamman).\n")
	}
}
