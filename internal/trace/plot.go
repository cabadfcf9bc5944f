package trace

import (
	"github.com/guptarohit/asciigraph"
)

// Plot charts current, zeros and target over the run, one point per record.
func Plot(res *Result, width int) string {
	n := len(res.Records) + 1
	current := make([]float64, 0, n)
	zeros := make([]float64, 0, n)
	target := make([]float64, 0, n)

	current = append(current, float64(res.Start.Current))
	zeros = append(zeros, float64(res.Start.Zeros))
	target = append(target, float64(res.Start.Target))
	for _, rec := range res.Records {
		current = append(current, float64(rec.After.Current))
		zeros = append(zeros, float64(rec.After.Zeros))
		target = append(target, float64(rec.After.Target))
	}

	if width <= 0 {
		width = 80
	}
	return asciigraph.PlotMany([][]float64{current, zeros, target},
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Gray),
		asciigraph.Caption("current (blue), zeros (green), target (gray) per transition"),
	)
}
