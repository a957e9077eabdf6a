package fetch

// Job is one index to download: the page URL and the file it lands in,
// both derived from the index.
type Job struct {
	Index      int
	URL        string
	OutputPath string
}

// Result holds the outcome of a processed index.
type Result struct {
	Index      int
	URL        string
	FilePath   string
	Error      error
	ErrorType  string
	Empty      bool
	Lines      int
	Language   string
	Confidence float64
	SizeBytes  int64
}

// ResultOutput is the structured output for a single index.
type ResultOutput struct {
	Index      int     `json:"index"`
	URL        string  `json:"url"`
	FilePath   string  `json:"file_path,omitempty"`
	Status     string  `json:"status"`
	Error      string  `json:"error,omitempty"`
	ErrorType  string  `json:"error_type,omitempty"`
	Lines      int     `json:"lines,omitempty"`
	Language   string  `json:"language,omitempty"`
	Confidence float64 `json:"language_confidence,omitempty"`
	SizeBytes  int64   `json:"file_size_bytes,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status"`
	Results []ResultOutput `json:"results"`
	Stats   Stats          `json:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalIndices     int     `json:"total_indices"`
	Successful       int     `json:"successful"`
	Failed           int     `json:"failed"`
	Empty            int     `json:"empty"`
	TotalTimeSeconds float64 `json:"total_time_seconds"`
}

// BuildOutput converts raw results into the reportable form.
func BuildOutput(results []Result) []ResultOutput {
	outputs := make([]ResultOutput, 0, len(results))
	for _, r := range results {
		out := ResultOutput{
			Index:      r.Index,
			URL:        r.URL,
			FilePath:   r.FilePath,
			Lines:      r.Lines,
			Language:   r.Language,
			Confidence: r.Confidence,
			SizeBytes:  r.SizeBytes,
		}
		switch {
		case r.Error != nil:
			out.Status = "failed"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
		case r.Empty:
			out.Status = "empty"
		default:
			out.Status = "success"
		}
		outputs = append(outputs, out)
	}
	return outputs
}
