package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifemorale/internal/lmi"
	"github.com/HendryAvila/lifemorale/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// CalibrateTool handles the lmi_calibrate MCP tool. It shows how raw
// ratings land on the calibrated scale, which helps explain why a 10
// scores 8.75 and not 10.
type CalibrateTool struct {
	service *lmi.Service
}

// NewCalibrateTool creates a CalibrateTool using the service's base
// calibration as defaults.
func NewCalibrateTool(service *lmi.Service) *CalibrateTool {
	return &CalibrateTool{service: service}
}

// Definition returns the MCP tool definition for registration.
func (t *CalibrateTool) Definition() mcp.Tool {
	return mcp.NewTool("lmi_calibrate",
		mcp.WithDescription(
			"Map a raw 1-10 rating onto the calibrated LMI scale "+
				"max*(1-e^(-k*x/10))/(1-e^(-k)). Ratings outside 1-10 are clamped. "+
				"Omit 'score' to get the whole 1-10 table.",
		),
		mcp.WithNumber("score",
			mcp.Description("Raw rating to calibrate (1-10)."),
		),
		mcp.WithNumber("k",
			mcp.Description("Curve steepness. Defaults to the server's configured value."),
		),
		mcp.WithNumber("max",
			mcp.Description("Calibrated ceiling reached at 10. Defaults to the server's configured value."),
		),
	)
}

// Handle processes the lmi_calibrate tool call.
func (t *CalibrateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base := t.service.BaseConfig().Calibration
	cal := pipeline.Calibration{
		K:   req.GetFloat("k", base.K),
		Max: req.GetFloat("max", base.Max),
	}
	if cal.Max <= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("'max' must be positive, got %g", cal.Max)), nil
	}

	if score, ok := numberArg(req, "score"); ok {
		v := pipeline.Calibrate(pipeline.Some(score), cal)
		return mcp.NewToolResultText(fmt.Sprintf(
			"Rating %g calibrates to **%s** (k=%g, max=%g).", score, formatValue(v), cal.K, cal.Max,
		)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Calibration table (k=%g, max=%g)\n\n", cal.K, cal.Max)
	sb.WriteString("| Raw | Calibrated |\n")
	sb.WriteString("|-----|------------|\n")
	for s := pipeline.MinRating; s <= pipeline.MaxRating; s++ {
		fmt.Fprintf(&sb, "| %g | %s |\n", s, formatValue(pipeline.Calibrate(pipeline.Some(s), cal)))
	}
	return mcp.NewToolResultText(sb.String()), nil
}
