package stats

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
)

func StatsAction(c *cli.Context) error {
	counts, warnings, problems, err := CollectCounts(c.StringSlice("dir"))
	if err != nil {
		return err
	}

	for _, fc := range counts {
		fmt.Printf("%s: %d couplets\n", fc.Name, fc.Couplets)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if len(counts) > 0 {
		summary := Summarize(counts)

		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Println("STATISTICS")
		fmt.Println(strings.Repeat("=", 50))

		fmt.Printf("Total ghazals: %d\n", summary.Total)
		fmt.Printf("Mean couplets per ghazal: %.2f\n", summary.Mean)
		fmt.Printf("Median couplets per ghazal: %.2f\n", summary.Median)
		fmt.Printf("Min couplets: %d\n", summary.Min)
		fmt.Printf("Max couplets: %d\n", summary.Max)
		fmt.Printf("Standard deviation: %.2f\n", summary.StdDev)

		fmt.Println("\nDistribution:")
		lengths := make([]int, 0, len(summary.Distribution))
		for n := range summary.Distribution {
			lengths = append(lengths, n)
		}
		sort.Ints(lengths)
		for _, n := range lengths {
			fmt.Printf("  %d couplets: %d ghazals\n", n, summary.Distribution[n])
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "Error: %s\n", p)
		}
		return fmt.Errorf("%d file(s) had an odd number of hemistichs", len(problems))
	}

	return nil
}
