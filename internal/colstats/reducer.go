// Package colstats truncates a word frequency table to its most frequent words.
//
// The input is a header line followed by "word count" lines separated by
// arbitrary whitespace. The output is the same header followed by the top N
// words, one "word\tcount" line each, in ascending word order.
package colstats

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Legacy defaults.
const (
	DefaultInputPath  = "col_stats"
	DefaultOutputPath = "col_stats_small"
	DefaultTopN       = 10000
)

// Config holds the reducer options.
type Config struct {
	InputPath  string
	OutputPath string
	TopN       int

	Progress       bool      // show a progress bar while reading
	ProgressOutput io.Writer // defaults to os.Stderr
	HistogramPath  string    // write a count histogram of the kept words when set
}

// DefaultConfig returns the settings of the original col_stats job.
func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		TopN:       DefaultTopN,
	}
}

// Summary describes a finished run.
type Summary struct {
	Distinct int // distinct words in the input
	Kept     int
	MinKept  int // lowest count kept, 0 when nothing kept
	MaxKept  int
}

// Reducer reads, truncates and writes one table.
type Reducer struct {
	cfg Config
	log *log.Logger
}

// NewReducer returns a reducer; a nil logger means the logrus standard logger.
func NewReducer(cfg Config, logger *log.Logger) *Reducer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if cfg.ProgressOutput == nil {
		cfg.ProgressOutput = os.Stderr
	}
	return &Reducer{cfg: cfg, log: logger}
}

// Run performs the whole job. Nothing is retried; the first error is returned.
func (r *Reducer) Run() (*Summary, error) {
	header, table, err := r.read()
	if err != nil {
		return nil, err
	}
	r.log.WithFields(log.Fields{
		"path":     r.cfg.InputPath,
		"distinct": len(table),
	}).Info("read table")

	kept := Select(table, r.cfg.TopN)
	sum := summarize(len(table), kept)
	r.log.WithFields(log.Fields{
		"n":        r.cfg.TopN,
		"kept":     sum.Kept,
		"min_kept": sum.MinKept,
		"max_kept": sum.MaxKept,
	}).Debug("selected top words")

	if err := WriteTableFile(r.cfg.OutputPath, header, kept); err != nil {
		return nil, err
	}
	r.log.WithFields(log.Fields{
		"path": r.cfg.OutputPath,
		"kept": sum.Kept,
	}).Info("wrote table")

	if r.cfg.HistogramPath != "" {
		h := CountHistogram(kept)
		if err := SaveHistogram(h, r.cfg.InputPath, r.cfg.HistogramPath); err != nil {
			return nil, errors.Wrap(err, "can't plot histogram")
		}
		r.log.WithFields(log.Fields{
			"path": r.cfg.HistogramPath,
			"mean": h.XMean(),
		}).Info("wrote histogram")
	}

	return sum, nil
}

func (r *Reducer) read() (string, Table, error) {
	if !r.cfg.Progress {
		return ReadTableFile(r.cfg.InputPath)
	}

	file, err := os.Open(r.cfg.InputPath)
	if err != nil {
		return "", nil, newIOError("open", r.cfg.InputPath, err)
	}
	defer file.Close()

	pr, finish, err := progressReader(file, r.cfg.ProgressOutput)
	if err != nil {
		return "", nil, err
	}
	defer finish()

	return readTable(pr, r.cfg.InputPath)
}

func summarize(distinct int, kept []Entry) *Summary {
	sum := &Summary{Distinct: distinct, Kept: len(kept)}
	for i, e := range kept {
		if i == 0 || e.Count < sum.MinKept {
			sum.MinKept = e.Count
		}
		if i == 0 || e.Count > sum.MaxKept {
			sum.MaxKept = e.Count
		}
	}
	return sum
}
