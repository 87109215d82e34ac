package diagram

import (
	"fmt"
	"strings"
)

// Point represents a 2D coordinate in the planform view.
// X points aft along the chord, Y outboard along the span.
type Point struct {
	X float64
	Y float64
}

// PlanformDiagramData holds data for drawing one side of a wing planform
type PlanformDiagramData struct {
	Title string

	// Stations from root to tip
	LeadingEdge []Point
	Chords      []float64

	MeanAerodynamicChord float64
	AerodynamicCenter    Point

	Symmetric bool
}

// Span returns the spanwise extent of one side.
func (d PlanformDiagramData) Span() float64 {
	if len(d.LeadingEdge) == 0 {
		return 0
	}
	return d.LeadingEdge[len(d.LeadingEdge)-1].Y
}

// Origin returns the most forward leading-edge x, which is negative for
// forward-swept wings.
func (d PlanformDiagramData) Origin() float64 {
	var minX float64
	for _, le := range d.LeadingEdge {
		minX = min(minX, le.X)
	}
	return minX
}

// Length returns the chordwise extent from Origin to the aftmost trailing edge.
func (d PlanformDiagramData) Length() float64 {
	var maxX float64
	for i, le := range d.LeadingEdge {
		maxX = max(maxX, le.X+d.Chords[i])
	}
	return maxX - d.Origin()
}

// at interpolates the leading edge and chord at spanwise position y
func (d PlanformDiagramData) at(y float64) (le, chord float64) {
	n := len(d.LeadingEdge)
	for i := 0; i < n-1; i++ {
		a, b := d.LeadingEdge[i], d.LeadingEdge[i+1]
		if y <= b.Y || i == n-2 {
			t := 0.0
			if b.Y > a.Y {
				t = (y - a.Y) / (b.Y - a.Y)
			}
			return a.X + t*(b.X-a.X), d.Chords[i] + t*(d.Chords[i+1]-d.Chords[i])
		}
	}
	return d.LeadingEdge[0].X, d.Chords[0]
}

// MACStation returns the spanwise position where the local chord first
// equals the mean aerodynamic chord, and the leading edge there.
func (d PlanformDiagramData) MACStation() (Point, bool) {
	for i := 0; i < len(d.Chords)-1; i++ {
		c0, c1 := d.Chords[i], d.Chords[i+1]
		lo, hi := min(c0, c1), max(c0, c1)
		if d.MeanAerodynamicChord < lo || d.MeanAerodynamicChord > hi || c0 == c1 {
			continue
		}
		t := (d.MeanAerodynamicChord - c0) / (c1 - c0)
		a, b := d.LeadingEdge[i], d.LeadingEdge[i+1]
		return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}, true
	}
	return Point{}, false
}

// DrawASCIIPlanform creates an ASCII top view of one side of the wing.
// Span runs left to right from the root, chord runs top to bottom.
func DrawASCIIPlanform(data PlanformDiagramData) string {
	var sb strings.Builder

	if len(data.LeadingEdge) < 2 || len(data.Chords) != len(data.LeadingEdge) {
		return ""
	}

	widthChars := 60
	heightChars := 16

	span := data.Span()
	origin, length := data.Origin(), data.Length()
	if span <= 0 || length <= 0 {
		return ""
	}

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars+1))
	}

	for j := 0; j <= widthChars; j++ {
		y := float64(j) / float64(widthChars) * span
		le, chord := data.at(y)
		for i := 0; i <= heightChars; i++ {
			x := origin + float64(i)/float64(heightChars)*length
			if x >= le-length/float64(2*heightChars) && x <= le+chord+length/float64(2*heightChars) {
				grid[i][j] = '░'
			}
		}
	}

	// Mean aerodynamic chord
	macCol := -1
	if mac, ok := data.MACStation(); ok {
		macCol = col(mac.Y, span, widthChars)
		for i := row(mac.X-origin, length, heightChars); i <= row(mac.X-origin+data.MeanAerodynamicChord, length, heightChars); i++ {
			grid[i][macCol] = '│'
		}
	}

	// Aerodynamic center
	acRow := row(data.AerodynamicCenter.X-origin, length, heightChars)
	acCol := col(data.AerodynamicCenter.Y, span, widthChars)
	if data.Symmetric && macCol >= 0 {
		acCol = macCol
	}
	grid[acRow][acCol] = '◆'

	title := data.Title
	if title == "" {
		title = "WING PLANFORM"
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s (one side, root at left)\n", strings.ToUpper(title)))
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")
	for i, line := range grid {
		label := ""
		if i == acRow {
			label = fmt.Sprintf(" ◄─ a.c. x = %.3f", data.AerodynamicCenter.X)
		}
		sb.WriteString(fmt.Sprintf("  │%s│%s\n", string(line), label))
	}
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")
	sb.WriteString(fmt.Sprintf("  root%*s\n", widthChars-2, fmt.Sprintf("tip y = %.3f", span)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Wing panel\n")
	sb.WriteString(fmt.Sprintf("  │   = Mean aerodynamic chord (%.3f)\n", data.MeanAerodynamicChord))
	sb.WriteString("  ◆   = Aerodynamic center\n")

	return sb.String()
}

func row(x, length float64, rows int) int {
	return clamp(int(x/length*float64(rows)+0.5), 0, rows)
}

func col(y, span float64, cols int) int {
	return clamp(int(y/span*float64(cols)+0.5), 0, cols)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
