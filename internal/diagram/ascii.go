package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gofault/internal/fault"
)

// barWidth is the length in characters of the longest bar
const barWidth = 40

// DrawCurrentBars draws a horizontal bar per fault type, scaled to the
// largest current, and marks the governing case
func DrawCurrentBars(results []*fault.Result) string {
	var sb strings.Builder

	var maxI float64
	for _, r := range results {
		if r.CurrentA > maxI {
			maxI = r.CurrentA
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  FAULT CURRENT BY TYPE\n")
	sb.WriteString("  ─────────────────────\n\n")

	for _, r := range results {
		n := barLen(r.CurrentA, maxI)
		mark := ""
		if r.CurrentA == maxI {
			mark = " ◄ governs"
		}
		sb.WriteString(fmt.Sprintf("  %-4s│%s%s %.2f kA%s\n",
			r.Type, strings.Repeat("█", n), strings.Repeat(" ", barWidth-n), r.CurrentKA, mark))
	}

	return sb.String()
}

// barLen scales v against maxV to a bar of 0..barWidth characters.
// Non-finite ratios draw an empty bar.
func barLen(v, maxV float64) int {
	if !(maxV > 0) {
		return 0
	}
	f := v / maxV * barWidth
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= barWidth {
		return barWidth
	}
	return int(f)
}

// DrawSweep draws one bar per sweep point, scaled to the largest current
func DrawSweep(field fault.Field, points []fault.SweepPoint) string {
	var sb strings.Builder

	var maxI float64
	for _, p := range points {
		if p.Result.CurrentA > maxI {
			maxI = p.Result.CurrentA
		}
	}

	name := strings.ToUpper(field.String())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  FAULT CURRENT vs %s\n", name))
	sb.WriteString("  ────────────────────\n\n")

	for _, p := range points {
		n := barLen(p.Result.CurrentA, maxI)
		sb.WriteString(fmt.Sprintf("  %10.4f Ω │%s %.2f kA\n", p.Value, strings.Repeat("▇", n), p.Result.CurrentKA))
	}

	return sb.String()
}

// DrawSequenceNetwork sketches how the sequence networks are connected at
// the fault point for the given fault type
func DrawSequenceNetwork(t fault.Type) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  SEQUENCE NETWORK CONNECTION - %s\n", t.Description()))
	sb.WriteString("  ─────────────────────────────────────────\n\n")

	switch t {
	case fault.ThreePhase:
		sb.WriteString("     E ──[ Z1 ]──┐\n")
		sb.WriteString("                 │  fault\n")
		sb.WriteString("     N ──────────┘\n\n")
		sb.WriteString("  Positive sequence only: I = VLL / (√3·Z1)\n")
	case fault.PhaseToPhase:
		sb.WriteString("     E ──[ Z1 ]──┬──[ Z2 ]── N2\n")
		sb.WriteString("                 │\n")
		sb.WriteString("     N1 ─────────┘\n\n")
		sb.WriteString("  Positive and negative in series: I = √3·VLL / (2·(Z1+Z2))\n")
	case fault.PhaseToGround:
		sb.WriteString("     E ──[ Z1 ]──[ Z2 ]──[ Z0 ]──┐\n")
		sb.WriteString("                                 │  fault\n")
		sb.WriteString("     N ──────────────────────────┘\n\n")
		sb.WriteString("  All three in series: I = √3·VLL / (Z1+Z2+Z0)\n")
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if k := utf8.RuneCountInString(s); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
