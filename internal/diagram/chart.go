package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// DrawASCIISweep renders a line sweep as a terminal chart. Inputs run left
// to right in the order given.
func DrawASCIISweep(title string, xs, ys []float64) string {
	if len(ys) < 2 || len(xs) != len(ys) {
		return ""
	}

	caption := fmt.Sprintf("%s, x from %.4g to %.4g", title, xs[0], xs[len(xs)-1])
	return asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Precision(4),
		asciigraph.Caption(caption),
	) + "\n"
}
