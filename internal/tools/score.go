package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HendryAvila/lifemorale/internal/lmi"
	"github.com/HendryAvila/lifemorale/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// Output formats of lmi_score.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ScoreTool handles the lmi_score MCP tool: the full Life Morale Index
// computation for one questionnaire and week.
type ScoreTool struct {
	service *lmi.Service
}

// NewScoreTool creates a ScoreTool backed by service.
func NewScoreTool(service *lmi.Service) *ScoreTool {
	return &ScoreTool{service: service}
}

// Definition returns the MCP tool definition for registration.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("lmi_score",
		mcp.WithDescription(
			"Compute the Life Morale Index from 24 ratings (1-10) and a weekly time allocation. "+
				"Answers are grouped in order: Fulfillment 1-5, Connection 6-10, Autonomy 11-15, "+
				"Vitality 16-20, Peace 21-24. Each answer may carry a scenarioScore (a hypothetical "+
				"rating) and a note. Time rows use the categories Sleep, Work, Commute, Relationships, "+
				"Leisure, Gym, Chores, Growth, Other with weekly hours and a relative impact (ri, 1-10, "+
				"5 neutral). Returns current and scenario indices, dimension averages, and the three "+
				"lowest and highest answers.",
		),
		mcp.WithString("payload",
			mcp.Required(),
			mcp.Description(
				"JSON object: {\"answers\":[{\"score\":7,\"scenarioScore\":8,\"note\":\"...\"}, ...24], "+
					"\"timeMap\":[{\"category\":\"Work\",\"hours\":45,\"ri\":4}, ...], "+
					"\"eli\":1-10 (life-event load, default 1), "+
					"\"config\":{\"calibration\":{\"k\",\"max\"},\"ri\":{\"globalMultiplier\"},"+
					"\"crossLift\":{\"enabled\",\"alpha\"}} (optional overrides)}",
			),
		),
		mcp.WithString("format",
			mcp.Description("Response format: 'markdown' (default) for a readable report, 'json' for the raw result."),
			mcp.Enum(FormatMarkdown, FormatJSON),
		),
	)
}

// Handle processes the lmi_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload := req.GetString("payload", "")
	format := req.GetString("format", FormatMarkdown)

	if payload == "" {
		return mcp.NewToolResultError("'payload' is required — pass the answers, timeMap and eli as a JSON object"), nil
	}
	if format != FormatMarkdown && format != FormatJSON {
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q — use 'markdown' or 'json'", format)), nil
	}

	out, err := t.service.Evaluate(ctx, lmi.TransportMCP, []byte(payload))
	if err != nil {
		if errors.Is(err, pipeline.ErrInvalidRequest) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("scoring: %w", err)
	}

	if format == FormatJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling result: %w", err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	return mcp.NewToolResultText(renderReport(out)), nil
}
