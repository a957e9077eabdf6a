package stats

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// largeGhazal flags files with suspiciously many hemistichs for review.
const largeGhazal = 28

// FileCount is the couplet count for one downloaded ghazal file.
type FileCount struct {
	Name     string
	Couplets int
}

// Summary aggregates couplet counts across the corpus.
type Summary struct {
	Total        int
	Mean         float64
	Median       float64
	Min          int
	Max          int
	StdDev       float64
	Distribution map[int]int
}

// CollectCounts walks the given directories and counts couplets per .txt
// file, visiting files in numeric index order. Files with an odd number of
// hemistichs are broken downloads; they are reported as problems and left
// out of the counts. Warnings flag unusually long ghazals.
func CollectCounts(dirs []string) (counts []FileCount, warnings, problems []string, err error) {
	for _, dir := range dirs {
		if _, statErr := os.Stat(dir); statErr != nil {
			return nil, nil, nil, fmt.Errorf("directory %s does not exist", dir)
		}

		paths, globErr := filepath.Glob(filepath.Join(dir, "*.txt"))
		if globErr != nil {
			return nil, nil, nil, fmt.Errorf("failed to list %s: %w", dir, globErr)
		}
		sortByIndex(paths)

		for _, path := range paths {
			hemistichs, countErr := countNonEmptyLines(path)
			if countErr != nil {
				return nil, nil, nil, countErr
			}

			if hemistichs%2 != 0 {
				problems = append(problems,
					fmt.Sprintf("%s has an odd number of hemistichs: %d", path, hemistichs))
				continue
			}
			if hemistichs > largeGhazal {
				warnings = append(warnings,
					fmt.Sprintf("%s has a large number of hemistichs: %d", path, hemistichs))
			}

			counts = append(counts, FileCount{
				Name:     filepath.Base(path),
				Couplets: hemistichs / 2,
			})
		}
	}

	return counts, warnings, problems, nil
}

// sortByIndex orders paths by their numeric filename stem; non-numeric
// stems sort last.
func sortByIndex(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		a, aOK := indexOf(paths[i])
		b, bOK := indexOf(paths[j])
		if aOK != bOK {
			return aOK
		}
		if !aOK {
			return paths[i] < paths[j]
		}
		return a < b
	})
}

func indexOf(path string) (int, bool) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	n, err := strconv.Atoi(stem)
	return n, err == nil
}

func countNonEmptyLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	total := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			total++
		}
	}
	return total, nil
}

// Summarize computes corpus statistics over couplet counts.
func Summarize(counts []FileCount) Summary {
	summary := Summary{
		Total:        len(counts),
		Distribution: make(map[int]int),
	}
	if len(counts) == 0 {
		return summary
	}

	values := make([]int, len(counts))
	sum := 0
	summary.Min = counts[0].Couplets
	summary.Max = counts[0].Couplets
	for i, fc := range counts {
		values[i] = fc.Couplets
		sum += fc.Couplets
		if fc.Couplets < summary.Min {
			summary.Min = fc.Couplets
		}
		if fc.Couplets > summary.Max {
			summary.Max = fc.Couplets
		}
		summary.Distribution[fc.Couplets]++
	}

	summary.Mean = float64(sum) / float64(len(values))

	sort.Ints(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		summary.Median = float64(values[mid-1]+values[mid]) / 2
	} else {
		summary.Median = float64(values[mid])
	}

	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := float64(v) - summary.Mean
			sq += d * d
		}
		summary.StdDev = math.Sqrt(sq / float64(len(values)-1))
	}

	return summary
}
