package analyze

import (
	"fmt"

	"ghazal-tools/pkg/detector"
	"ghazal-tools/pkg/meter"
	"github.com/urfave/cli/v2"
)

func AnalyzeAction(c *cli.Context) error {
	path := c.String("input")

	text, err := meter.Load(path)
	if err != nil {
		return err
	}

	if !detector.IsPersian(text) {
		lang, _ := detector.Detect(text)
		return fmt.Errorf("%s does not look like Persian text (detected: %s)", path, lang)
	}

	report, err := meter.Analyze(text)
	if err != nil {
		return err
	}

	fmt.Print(report)
	return nil
}
