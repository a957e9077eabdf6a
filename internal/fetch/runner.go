package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"ghazal-tools/models"
	"ghazal-tools/pkg/detector"
	"ghazal-tools/pkg/fetcher"
	"ghazal-tools/pkg/parser"
	"ghazal-tools/pkg/ratelimit"
	"ghazal-tools/pkg/storage"
)

// BuildURL substitutes an index into the page URL template.
func BuildURL(template string, index int) string {
	return strings.ReplaceAll(template, "{index}", strconv.Itoa(index))
}

// OutputPath returns where the text for an index is written.
func OutputPath(outputDir string, index int) string {
	return filepath.Join(outputDir, strconv.Itoa(index)+".txt")
}

func countLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// run processes every index in [config.Start, config.End] in ascending
// order, strictly one at a time. Fetch and extraction problems are
// captured per index and never stop the loop; only a failed write to the
// output directory (or cancellation) aborts the run.
func run(ctx context.Context, logger *slog.Logger, config *models.FetchConfig, f *fetcher.Fetcher, p *parser.Parser, store *storage.Storage, limiter ratelimit.Waiter) ([]Result, error) {
	total := config.End - config.Start + 1
	results := make([]Result, 0, total)

	logger.Info("Starting sequential fetch", "start", config.Start, "end", config.End,
		"delay", config.Delay.String(), "selector", config.Selector)

	for i := config.Start; i <= config.End; i++ {
		job := Job{
			Index:      i,
			URL:        BuildURL(config.URLTemplate, i),
			OutputPath: OutputPath(config.OutputDir, i),
		}

		result := processJob(ctx, logger, job, config.Selector, f, p, store)
		results = append(results, result)

		if result.ErrorType == "write_error" {
			return results, fmt.Errorf("cannot write to output directory: %w", result.Error)
		}

		// Politeness delay, skipped after the final index
		if i < config.End {
			if err := limiter.Wait(ctx); err != nil {
				return results, err
			}
		}
	}

	logger.Info("Fetch loop finished", "indices", total)
	return results, nil
}

func processJob(ctx context.Context, logger *slog.Logger, job Job, selector string, f *fetcher.Fetcher, p *parser.Parser, store *storage.Storage) Result {
	result := Result{Index: job.Index, URL: job.URL}

	logger.Info("Fetching page", "index", job.Index, "url", job.URL)
	rawHTML, err := f.GetHtmlBytes(ctx, job.URL)
	if err != nil {
		logger.Error("Error fetching page", "index", job.Index, "url", job.URL, "error", err)
		result.Error = err
		result.ErrorType = "fetch_error"
		return result
	}

	text, found, err := p.ExtractText(job.URL, string(rawHTML), selector)
	if err != nil {
		logger.Error("Error extracting content", "index", job.Index, "url", job.URL, "error", err)
		result.Error = err
		result.ErrorType = "parse_error"
		return result
	}
	if !found {
		logger.Warn("Selector matched nothing, writing empty file", "index", job.Index, "selector", selector)
		result.Empty = true
	}

	if text != "" {
		result.Lines = countLines(text)
		result.Language, result.Confidence = detector.Detect(text)
	}

	if err := store.SaveFile(job.OutputPath, []byte(text)); err != nil {
		logger.Error("Error saving file", "index", job.Index, "path", job.OutputPath, "error", err)
		result.Error = err
		result.ErrorType = "write_error"
		return result
	}

	result.FilePath = job.OutputPath
	result.SizeBytes = int64(len(text))
	logger.Info("Saved poem", "index", job.Index, "path", job.OutputPath, "lines", result.Lines)
	return result
}
