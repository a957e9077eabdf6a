package meter

import (
	"fmt"
	"strconv"
	"strings"
)

func (e *evidence) locationList() string {
	parts := make([]string, len(e.locations))
	for i, loc := range e.locations {
		parts[i] = strconv.Itoa(loc)
	}
	return strings.Join(parts, ", ")
}

// firstAssessment reports the evidence for the first syllable's length and
// returns the conclusion as (long, short).
func (ev *syllableEvidence) firstAssessment(report *strings.Builder) (bool, bool) {
	var longFirst, shortFirst bool

	report.WriteString("*** First syllable length ***\n")

	if ev.longFirst.count > 0 {
		fmt.Fprintf(report, "Indications of a long first syllable: %d (at %s)\n",
			ev.longFirst.count, ev.longFirst.locationList())
	}
	if ev.shortFirst.count > 0 {
		fmt.Fprintf(report, "Indications of a short first syllable: %d (at %s)\n",
			ev.shortFirst.count, ev.shortFirst.locationList())
	}

	switch {
	case ev.longFirst.count > 0 && ev.shortFirst.count > 0:
		report.WriteString("There are contradictory indications of a long vs. short first syllable.\n")
		report.WriteString("If this is not an error, it suggests that the meter is probably ramal.\n")
	case ev.longFirst.count > 1:
		longFirst = true
		report.WriteString("The first syllable in this meter appears to be long.\n")
	case ev.shortFirst.count > 1:
		shortFirst = true
		report.WriteString("The first syllable in this meter appears to be short.\n")
	default:
		report.WriteString("Insufficient evidence (< 2) of a long vs. short first syllable…\n")
		report.WriteString("(It's easier to detect short syllables. Scant results may suggest long.)\n")
	}

	return longFirst, shortFirst
}

// secondAssessment reports the evidence for the second syllable's length
// and returns the conclusion as (long, short).
func (ev *syllableEvidence) secondAssessment(report *strings.Builder) (bool, bool) {
	var longSecond, shortSecond bool

	report.WriteString("*** Second syllable length ***\n")

	if ev.longSecond.count > 0 {
		fmt.Fprintf(report, "Suggestions of a long second syllable: %d (at %s)\n",
			ev.longSecond.count, ev.longSecond.locationList())
		if ev.longSecond.count == 1 {
			report.WriteString("(Be careful with this; one result is not much.)\n")
		}
	}
	if ev.shortSecond.count > 0 {
		fmt.Fprintf(report, "Suggestions of a short second syllable: %d (at %s)\n",
			ev.shortSecond.count, ev.shortSecond.locationList())
		if ev.shortSecond.count == 1 {
			report.WriteString("(Be careful with this; one result is not much.)\n")
		}
	}

	switch {
	case ev.longSecond.count > 0 && ev.shortSecond.count > 0:
		report.WriteString("There are contradictory indications of a long vs. short second syllable.\n")
	case ev.longSecond.count > 1:
		longSecond = true
		report.WriteString("The second syllable in this meter appears to be long.\n")
	case ev.shortSecond.count > 1:
		shortSecond = true
		report.WriteString("The second syllable in this meter appears to be short.\n")
	default:
		report.WriteString("Insufficient evidence (< 2) of a long vs. short second syllable…\n")
	}

	return longSecond, shortSecond
}

// finalAssessment combines meter length and syllable conclusions into the
// meter-family suggestions that close the report.
func finalAssessment(report *strings.Builder, longMeter, shortMeter, longFirst, shortFirst, longSecond, shortSecond bool) {
	report.WriteString("*** Overall assessment ***\n")

	switch {
	case longMeter:
		switch {
		case longFirst:
			switch {
			case longSecond:
				report.WriteString("Long meter, long first syllable, long second syllable?\n")
				report.WriteString("Consider, with short third and fourth syllables, hazaj (akhrab).\n")
				report.WriteString("Consider, with a long fourth syllable, mużāri‘.\n")
			case shortSecond:
				report.WriteString("Long meter, long first syllable, short second syllable?\n")
				report.WriteString("Consider ramal.\n")
			default:
				report.WriteString("Long meter, long first syllable, indeterminate second syllable?\n")
				report.WriteString("Consider, with a long second syllable, hazaj (akhrab) or mużāri‘.\n")
				report.WriteString("Consider, with a short second syllable, ramal.\n")
			}
		case shortFirst:
			switch {
			case longSecond:
				report.WriteString("Long meter, short first syllable, long second syllable?\n")
				report.WriteString("Consider, with a long third syllable, hazaj (sālim).\n")
				report.WriteString("Consider, with a short third syllable, mujtaṡṡ.\n")
			case shortSecond:
				report.WriteString("Long meter, short first syllable, short second syllable?\n")
				report.WriteString("Consider ramal.\n")
			default:
				report.WriteString("Long meter, short first syllable, indeterminate second syllable?\n")
				report.WriteString("Consider, with a long second syllable, hazaj (sālim) or mujtaṡṡ.\n")
				report.WriteString("Consider, with a short second syllable, ramal.\n")
			}
		default:
			report.WriteString("What is clearest is that the meter appears to be long.\n")
			report.WriteString("If there were mixed signals about the first syllable, consider ramal.\n")
		}
	case shortMeter:
		switch {
		case longFirst:
			switch {
			case longSecond:
				report.WriteString("Short meter, long first syllable, long second syllable?\n")
				report.WriteString("Consider hazaj (akhrab).\n")
			case shortSecond:
				report.WriteString("Short meter, long first syllable, short second syllable?\n")
				report.WriteString("Consider, with a long third syllable, ramal or khafīf.\n")
				report.WriteString("If the third syllable is short, enjoy the puzzle!\n")
			default:
				report.WriteString("Short meter, long first syllable, indeterminate second syllable?\n")
				report.WriteString("Consider, with a long second syllable, hazaj (akhrab).\n")
				report.WriteString("Consider, with a short second syllable, ramal or khafīf.\n")
			}
		case shortFirst:
			switch {
			case longSecond:
				report.WriteString("Short meter, short first syllable, long second syllable?\n")
				report.WriteString("Consider hazaj or mutaqārib.\n")
			case shortSecond:
				report.WriteString("Short meter, short first syllable, short second syllable?\n")
				report.WriteString("This would be rare. Consider ramal or khafīf.\n")
			default:
				report.WriteString("Short meter, short first syllable, indeterminate second syllable?\n")
				report.WriteString("Consider, with a long second syllable, hazaj or mutaqārib.\n")
				report.WriteString("Consider, with a short second syllable, ramal or khafīf.\n")
			}
		default:
			report.WriteString("What is clearest is that the meter appears to be short.\n")
			report.WriteString("Were there mixed signals about the first syllable?\n")
			report.WriteString("If so, consider ramal or khafīf.\n")
		}
	default:
		// Unreachable today; meter length always resolves to long or short
		report.WriteString("With the meter length unclear, no further conclusions will be drawn.\n")
	}
}
