package colstats

import (
	"math"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

const histBins = 50

// CountHistogram fills a histogram of log10(count+1) over entries.
func CountHistogram(entries []Entry) *hbook.H1D {
	xmax := 1.0
	for _, e := range entries {
		if x := logCount(e.Count); x >= xmax {
			xmax = math.Ceil(x + 1e-9)
		}
	}

	h := hbook.NewH1D(histBins, 0, xmax)
	for _, e := range entries {
		h.Fill(logCount(e.Count), 1)
	}
	return h
}

func logCount(c int) float64 {
	if c < 0 {
		c = 0
	}
	return math.Log10(float64(c) + 1)
}

// SaveHistogram renders h as a PNG (or any format hplot infers from fname).
func SaveHistogram(h *hbook.H1D, title, fname string) error {
	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = "log10(count+1)"
	p.Y.Label.Text = "words"

	p.Add(hplot.NewH1D(h), hplot.NewGrid())

	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, fname); err != nil {
		return newIOError("save", fname, err)
	}
	return nil
}
