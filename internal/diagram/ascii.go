package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Station is one sampled point of the beam internal forces.
type Station struct {
	X      float64 // ft from the left (eave) support
	Shear  float64 // lb
	Moment float64 // lb-ft
}

// PointLoad marks an applied load for the loading sketch.
type PointLoad struct {
	Position  float64 // ft
	Magnitude float64 // lb
}

// BeamDiagramData holds everything needed to draw the loading, shear
// and moment diagrams for the valley beam.
type BeamDiagramData struct {
	Span     float64 // ft
	Stations []Station
	Loads    []PointLoad

	ReactionLeft  float64 // lb
	ReactionRight float64 // lb

	MaxMoment  float64 // lb-ft
	MaxMomentX float64 // ft
	MaxShear   float64 // lb
}

const (
	plotWidth  = 61
	plotHeight = 11
)

// DrawASCIILoadingDiagram sketches the beam with its point loads and
// support reactions.
func DrawASCIILoadingDiagram(data BeamDiagramData) string {
	var sb strings.Builder

	sb.WriteString("\nLOADING DIAGRAM:\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")

	arrows := make([]rune, plotWidth)
	for i := range arrows {
		arrows[i] = ' '
	}
	for _, p := range data.Loads {
		col := columnFor(p.Position, data.Span)
		arrows[col] = '▼'
	}
	sb.WriteString("  " + string(arrows) + "\n")

	beamLine := strings.Repeat("═", plotWidth)
	sb.WriteString("  " + beamLine + "\n")

	supports := make([]rune, plotWidth)
	for i := range supports {
		supports[i] = ' '
	}
	supports[0] = '△'
	supports[plotWidth-1] = '△'
	sb.WriteString("  " + string(supports) + "\n")

	sb.WriteString(fmt.Sprintf("  R = %.0f lb%sR = %.0f lb\n",
		data.ReactionLeft,
		strings.Repeat(" ", 30),
		data.ReactionRight))
	sb.WriteString(fmt.Sprintf("  eave%sridge\n", strings.Repeat(" ", plotWidth-9)))
	sb.WriteString(fmt.Sprintf("  span = %.2f ft, %d point loads\n", data.Span, len(data.Loads)))

	return sb.String()
}

// DrawASCIIShearDiagram renders the shear envelope.
func DrawASCIIShearDiagram(data BeamDiagramData) string {
	values := make([]float64, len(data.Stations))
	for i, s := range data.Stations {
		values[i] = s.Shear
	}
	header := fmt.Sprintf("SHEAR DIAGRAM (max |V| = %.0f lb):", data.MaxShear)
	return drawCurve(header, values, data.Stations, data.Span, "lb")
}

// DrawASCIIMomentDiagram renders the moment envelope.
func DrawASCIIMomentDiagram(data BeamDiagramData) string {
	values := make([]float64, len(data.Stations))
	for i, s := range data.Stations {
		values[i] = s.Moment
	}
	header := fmt.Sprintf("MOMENT DIAGRAM (max M = %.0f lb-ft at x = %.2f ft):", data.MaxMoment, data.MaxMomentX)
	return drawCurve(header, values, data.Stations, data.Span, "lb-ft")
}

func drawCurve(header string, values []float64, stations []Station, span float64, unit string) string {
	var sb strings.Builder

	sb.WriteString("\n" + header + "\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")

	if len(stations) < 2 || span <= 0 {
		sb.WriteString("  (insufficient data)\n")
		return sb.String()
	}

	// resample onto the plot columns
	cols := make([]float64, plotWidth)
	for c := 0; c < plotWidth; c++ {
		x := span * float64(c) / float64(plotWidth-1)
		cols[c] = interpolate(stations, values, x)
	}

	minV, maxV := cols[0], cols[0]
	for _, v := range cols {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if maxV == minV {
		maxV = minV + 1
	}

	grid := make([][]rune, plotHeight)
	for r := range grid {
		grid[r] = make([]rune, plotWidth)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	rowFor := func(v float64) int {
		frac := (v - minV) / (maxV - minV)
		r := int(math.Round(float64(plotHeight-1) * (1 - frac)))
		return clampInt(r, 0, plotHeight-1)
	}

	// zero axis
	if minV <= 0 && maxV >= 0 {
		zeroRow := rowFor(0)
		for c := 0; c < plotWidth; c++ {
			grid[zeroRow][c] = '·'
		}
	}

	for c := 0; c < plotWidth; c++ {
		grid[rowFor(cols[c])][c] = '*'
	}

	for r := 0; r < plotHeight; r++ {
		label := "        "
		if r == 0 {
			label = fmt.Sprintf("%8.0f", maxV)
		} else if r == plotHeight-1 {
			label = fmt.Sprintf("%8.0f", minV)
		}
		sb.WriteString(fmt.Sprintf("  %s │%s\n", label, string(grid[r])))
	}
	sb.WriteString(fmt.Sprintf("  %s └%s\n", strings.Repeat(" ", 8), strings.Repeat("─", plotWidth)))
	sb.WriteString(fmt.Sprintf("  %s 0%sx = %.1f ft  (%s)\n", strings.Repeat(" ", 8), strings.Repeat(" ", plotWidth-20), span, unit))

	return sb.String()
}

func interpolate(stations []Station, values []float64, x float64) float64 {
	if x <= stations[0].X {
		return values[0]
	}
	for i := 1; i < len(stations); i++ {
		if stations[i].X >= x {
			x0, x1 := stations[i-1].X, stations[i].X
			if x1 == x0 {
				return values[i]
			}
			t := (x - x0) / (x1 - x0)
			return values[i-1] + t*(values[i]-values[i-1])
		}
	}
	return values[len(values)-1]
}

func columnFor(x, span float64) int {
	if span <= 0 {
		return 0
	}
	return clampInt(int(math.Round(x/span*float64(plotWidth-1))), 0, plotWidth-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
