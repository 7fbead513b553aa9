package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creditscope/creditscope/pkg/decision"
)

// TerminalRenderer renders a Decision as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func verdictColor(approved bool) string {
	if noColor() {
		return ""
	}
	if approved {
		return colorGreen
	}
	return colorRed
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, d *decision.Decision) error {
	verdict := "DENIED"
	if d.Approved {
		verdict = "APPROVED"
	}

	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Creditscope: %s — Score %d (%s)",
			colored(verdict, verdictColor(d.Approved)), d.Score, d.Rating)))

	fmt.Fprintf(w, "Risk: %s / Confidence: %d%% / Rate band: %.2f%%-%.2f%%\n",
		d.RiskLevel, d.Confidence, d.InterestRateRange.Min, d.InterestRateRange.Max)
	if d.MaxLoanAmount > 0 {
		fmt.Fprintf(w, "Maximum loan amount: %d\n", d.MaxLoanAmount)
	}
	fmt.Fprintln(w)

	// Reasons
	if len(d.Reasons) > 0 {
		fmt.Fprintln(w, "Reasons:")
		for _, reason := range d.Reasons {
			fmt.Fprintf(w, "  • %s\n", reason)
		}
		fmt.Fprintln(w)
	}

	// Factors
	if len(d.PositiveFactors) > 0 {
		fmt.Fprintln(w, "Working for you:")
		for _, f := range d.PositiveFactors {
			fmt.Fprintf(w, "  %s %s\n", colored("+", colorGreen), f)
		}
		fmt.Fprintln(w)
	}
	if len(d.NegativeFactors) > 0 {
		fmt.Fprintln(w, "Working against you:")
		for _, f := range d.NegativeFactors {
			fmt.Fprintf(w, "  %s %s\n", colored("-", colorRed), f)
		}
		fmt.Fprintln(w)
	}

	// Loan products
	if len(d.LoanRecommendations) > 0 {
		fmt.Fprintln(w, "Loan options:")
		for _, p := range d.LoanRecommendations {
			fmt.Fprintf(w, "  • %s — up to %d at %.2f%%-%.2f%%, %d-%d months (%s)\n",
				bold(p.Name), p.MaxAmount, p.RateRange.Min, p.RateRange.Max,
				p.TermMonthsMin, p.TermMonthsMax, p.Suitability)
		}
		fmt.Fprintln(w)
	}

	// Improvements
	if len(d.Improvements) > 0 {
		fmt.Fprintln(w, "How to improve:")
		for _, rec := range d.Improvements {
			fmt.Fprintf(w, "  [%s] %s\n", strings.ToUpper(string(rec.Priority)), bold(rec.Title))
			for _, line := range wrapText(rec.Description, 70) {
				fmt.Fprintf(w, "    %s\n", dim(line))
			}
		}
		fmt.Fprintln(w)
	}

	// Breakdown
	if len(d.Breakdown) > 0 {
		fmt.Fprintln(w, "Score factors:")
		for _, f := range d.Breakdown {
			marker := colored("●", colorYellow)
			switch f.Assessment {
			case "POSITIVE":
				marker = colored("●", colorGreen)
			case "NEGATIVE":
				marker = colored("●", colorRed)
			}
			fmt.Fprintf(w, "  %s %s: %.1f\n", marker, f.Name, f.Value)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
