package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/creditscope/creditscope/pkg/decision"
)

// MarkdownRenderer produces a Markdown decision summary, suitable for
// archived reports and notification emails.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, d *decision.Decision) error {
	_, err := io.WriteString(w, BuildMarkdownSummary(d))
	return err
}

// BuildMarkdownSummary renders the decision as a Markdown document.
func BuildMarkdownSummary(d *decision.Decision) string {
	var b strings.Builder

	verdict := "Denied"
	if d.Approved {
		verdict = "Approved"
	}
	fmt.Fprintf(&b, "# Loan decision: %s\n\n", verdict)
	fmt.Fprintf(&b, "| Score | Rating | Risk | Confidence |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %s | %s | %d%% |\n\n", d.Score, d.Rating, d.RiskLevel, d.Confidence)

	if len(d.Reasons) > 0 {
		b.WriteString("## Reasons\n\n")
		for _, reason := range d.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		b.WriteString("\n")
	}

	if len(d.PositiveFactors) > 0 {
		b.WriteString("## Positive factors\n\n")
		for _, f := range d.PositiveFactors {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	if len(d.NegativeFactors) > 0 {
		b.WriteString("## Negative factors\n\n")
		for _, f := range d.NegativeFactors {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	if len(d.LoanRecommendations) > 0 {
		b.WriteString("## Loan options\n\n")
		b.WriteString("| Product | Max amount | Rate | Term (months) | Fit |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, p := range d.LoanRecommendations {
			fmt.Fprintf(&b, "| %s | %d | %.2f%%-%.2f%% | %d-%d | %s |\n",
				p.Name, p.MaxAmount, p.RateRange.Min, p.RateRange.Max,
				p.TermMonthsMin, p.TermMonthsMax, p.Suitability)
		}
		b.WriteString("\n")
	}

	if len(d.Improvements) > 0 {
		b.WriteString("## How to improve\n\n")
		for _, rec := range d.Improvements {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", rec.Title, rec.Priority, rec.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}
