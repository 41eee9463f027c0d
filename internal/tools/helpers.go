// Package tools implements the MCP tool handlers for LMI scoring.
//
// Each tool is a struct holding its dependencies, with a Definition for
// registration and a Handle compatible with mcp-go's CallToolRequest
// signature. Caller mistakes come back as tool errors; only faults the
// caller cannot fix are returned as Go errors.
package tools

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/lifemorale/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// numberArg extracts a numeric argument, reporting whether it was given
// (JSON numbers arrive as float64).
func numberArg(req mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	return v, ok
}

// formatValue renders a present value to two decimals and an absent one
// as a dash. Rounding happens here only, never in the pipeline.
func formatValue(v pipeline.Value) string {
	f, ok := v.Get()
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%.2f", f)
}

func formatDelta(d float64) string {
	return fmt.Sprintf("%+.2f", d)
}

// renderReport formats a scoring result as Markdown.
func renderReport(out pipeline.Output) string {
	var sb strings.Builder
	sb.WriteString("# Life Morale Index\n\n")

	sb.WriteString("| Run | Raw | RI-adjusted | Final LMI |\n")
	sb.WriteString("|-----|-----|-------------|-----------|\n")
	for _, r := range []struct {
		name string
		run  pipeline.Run
	}{{"Current", out.Current}, {"Scenario", out.Scenario}} {
		fmt.Fprintf(&sb, "| %s | %.2f | %.2f | **%.2f** |\n",
			r.name, r.run.RawLMS, r.run.RIAdjusted, r.run.FinalLMI)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "**Scenario delta:** %s\n", formatDelta(out.Scenario.FinalLMI-out.Current.FinalLMI))
	fmt.Fprintf(&sb, "**Net RI:** %+.3f | **ELI:** %g | **LMC:** %.1f | **Awake hours:** %g (residual %g)\n\n",
		out.NetRI, out.ELI, out.LMC, out.AwakeHours, out.OtherAwakeHours)

	sb.WriteString("## Dimensions\n\n")
	sb.WriteString("| Dimension | Current | Scenario |\n")
	sb.WriteString("|-----------|---------|----------|\n")
	for _, d := range pipeline.Dimensions() {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", d,
			formatValue(out.Current.Dimensions.Get(d)),
			formatValue(out.Scenario.Dimensions.Get(d)))
	}
	sb.WriteString("\n")

	writeContributors(&sb, "Top drainers", out.TopDrainers)
	writeContributors(&sb, "Top uplifters", out.TopUplifters)

	return sb.String()
}

func writeContributors(sb *strings.Builder, title string, list []pipeline.Contributor) {
	fmt.Fprintf(sb, "## %s\n\n", title)
	if len(list) == 0 {
		sb.WriteString("_No answered items._\n\n")
		return
	}
	for i, c := range list {
		line := fmt.Sprintf("%d. Q%d — score %g", i+1, c.Index+1, c.Score)
		if c.Note != "" {
			line += fmt.Sprintf(" — %s", c.Note)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
}
