package ui

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"goamb/domain/ambtest"
)

// BuildReportMarkdown renders a test result as a markdown document.
func BuildReportMarkdown(result *ambtest.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Ambiguity Test Report\n\n")
	fmt.Fprintf(&b, "Test `%s`, computed %s.\n\n", result.ID, result.ComputedAt.Time().Format("2006-01-02 15:04:05 MST"))

	verdict := "**Fail to reject H0**: no evidence that the group ambiguities differ."
	if result.Reject {
		verdict = "**Reject H0**: the group ambiguities differ."
	}
	fmt.Fprintf(&b, "%s\n\n", verdict)

	variant := "independent two-sample"
	if result.Paired {
		variant = "paired sign-flip"
	}

	fmt.Fprintf(&b, "| Quantity | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Variant | %s |\n", variant)
	fmt.Fprintf(&b, "| Observed statistic | %.6f |\n", result.ObservedStatistic)
	fmt.Fprintf(&b, "| p-value (two-sided) | %.6f |\n", result.PValue)
	fmt.Fprintf(&b, "| Significance level | %.4f |\n", result.Alpha)
	fmt.Fprintf(&b, "| Mode | %s |\n", result.Mode)
	fmt.Fprintf(&b, "| Permutations used | %d |\n", result.PermutationsUsed)
	fmt.Fprintf(&b, "| Sample sizes | %d vs %d |\n", result.SampleSizeX, result.SampleSizeY)
	fmt.Fprintf(&b, "| Seed | %d |\n\n", result.Seed)

	if result.PermutationsUsed > 0 {
		fmt.Fprintf(&b, "## Null distribution\n\n")
		fmt.Fprintf(&b, "| Mean | Std dev | Min | Max | P95 | P99 |\n|---|---|---|---|---|---|\n")
		fmt.Fprintf(&b, "| %.6f | %.6f | %.6f | %.6f | %.6f | %.6f |\n",
			result.Null.Mean, result.Null.StdDev, result.Null.Min,
			result.Null.Max, result.Null.Percentile95, result.Null.Percentile99)
	} else {
		note := "All pooled ambiguities were identical; no resampling was performed."
		if result.Paired {
			note = "All pairwise ambiguity differences were zero; no resampling was performed."
		}
		fmt.Fprintf(&b, "%s\n", note)
	}

	return b.String()
}

// RenderReportHTML renders the markdown report to HTML.
func RenderReportHTML(result *ambtest.Result) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.ToHTML([]byte(BuildReportMarkdown(result)), p, renderer)
}
