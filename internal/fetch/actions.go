package fetch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"ghazal-tools/models"
	"ghazal-tools/pkg/fetcher"
	"ghazal-tools/pkg/parser"
	"ghazal-tools/pkg/ratelimit"
	"ghazal-tools/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func FetchAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := &models.FetchConfig{
		Start:       c.Int("start"),
		End:         c.Int("end"),
		Delay:       time.Duration(c.Float64("delay") * float64(time.Second)),
		URLTemplate: c.String("url-template"),
		Selector:    c.String("selector"),
		OutputDir:   c.String("out-dir"),
	}

	if config.Start > config.End {
		logger.Error("invalid range", "start", config.Start, "end", config.End)
		fmt.Fprintln(os.Stderr, "Error: --start must not be greater than --end")
		os.Exit(2)
	}
	if config.Delay < 0 {
		logger.Error("invalid delay", "delay", c.Float64("delay"))
		fmt.Fprintln(os.Stderr, "Error: --delay must not be negative")
		os.Exit(2)
	}
	if !strings.Contains(config.URLTemplate, "{index}") {
		logger.Error("invalid url template", "template", config.URLTemplate)
		fmt.Fprintln(os.Stderr, "Error: --url-template must contain the {index} placeholder")
		os.Exit(2)
	}

	store := &storage.Storage{}
	if err := store.EnsureDir(config.OutputDir); err != nil {
		logger.Error("failed to create output directory", "dir", config.OutputDir, "error", err)
		os.Exit(2)
	}

	f := fetcher.NewFetcher()
	p := &parser.Parser{}
	limiter := ratelimit.NewFixedDelay(config.Delay)

	results, runErr := run(c.Context, logger, config, f, p, store, limiter)
	if runErr != nil {
		logger.Error("run aborted", "error", runErr)
	}

	stats := Stats{
		TotalIndices:     config.End - config.Start + 1,
		TotalTimeSeconds: time.Since(startTime).Seconds(),
	}
	for _, r := range results {
		switch {
		case r.Error != nil:
			stats.Failed++
		case r.Empty:
			stats.Empty++
		default:
			stats.Successful++
		}
	}

	finalOutput := &FinalOutput{Results: BuildOutput(results), Stats: stats}
	if runErr != nil || stats.Failed > 0 {
		finalOutput.Status = "partial_failure"
	} else {
		finalOutput.Status = "success"
	}

	var outputData []byte
	var marshalErr error
	if strings.ToLower(c.String("format")) == "yaml" {
		outputData, marshalErr = yaml.Marshal(finalOutput)
	} else {
		outputData, marshalErr = json.MarshalIndent(finalOutput, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal final output", "error", marshalErr)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	if runErr != nil {
		os.Exit(2)
	}
	if stats.Failed == stats.TotalIndices {
		os.Exit(2)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}

	return nil
}
