// Keep the N most frequent words of a col_stats table
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/talkware/ucair/internal/colstats"
)

const usage = `usage: %s [options]

Keep the N most frequent words of a word count table, sorted by word.
The first line of the input is copied to the output unchanged.

Options:
`

var config = colstats.DefaultConfig()

func main() {
	var verbose bool

	flag.StringVar(&config.InputPath, "in", config.InputPath, "input table")
	flag.StringVar(&config.OutputPath, "out", config.OutputPath, "output table (overwritten)")
	flag.Var(CountVar(&config.TopN), "n", "number of words to keep")
	flag.BoolVar(&config.Progress, "progress", false, "show progress while reading")
	flag.StringVar(&config.HistogramPath, "hist", "", "also plot a count histogram to this file")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatal("error: wrong number of arguments")
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if _, err := colstats.NewReducer(config, nil).Run(); err != nil {
		log.Fatalf("error: %s", err)
	}
}

// CountVar is a flag.Value for a non-negative count.
func CountVar(n *int) *countVar {
	return &countVar{n}
}

type countVar struct {
	n *int
}

func (c *countVar) String() string {
	if c.n == nil {
		return ""
	}

	return strconv.Itoa(*c.n)
}

func (c *countVar) Set(s string) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	if val < 0 {
		return fmt.Errorf("count %d must not be negative", val)
	}

	*c.n = val
	return nil
}

func init() {
	// Set defaults
	if err := envDefaults(os.Getenv, &config); err != nil {
		log.Fatalf("error: %s", err)
	}
}

// envDefaults overrides cfg from COLSTATS_IN, COLSTATS_OUT and COLSTATS_N.
func envDefaults(getenv func(string) string, cfg *colstats.Config) error {
	if s := getenv("COLSTATS_IN"); len(s) > 0 {
		cfg.InputPath = s
	}
	if s := getenv("COLSTATS_OUT"); len(s) > 0 {
		cfg.OutputPath = s
	}
	if s := getenv("COLSTATS_N"); len(s) > 0 {
		if err := CountVar(&cfg.TopN).Set(s); err != nil {
			return fmt.Errorf("bad COLSTATS_N - %s", err)
		}
	}
	return nil
}
