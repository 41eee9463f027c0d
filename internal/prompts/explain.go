package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ExplainPrompt handles the lmi-explain MCP prompt.
// It instructs the AI to explain how an index was put together.
type ExplainPrompt struct{}

// NewExplainPrompt creates an ExplainPrompt.
func NewExplainPrompt() *ExplainPrompt {
	return &ExplainPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ExplainPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("lmi-explain",
		mcp.WithPromptDescription(
			"Explain how the Life Morale Index is calculated: calibration, "+
				"time weighting, relative impact and the life-condition multiplier.",
		),
	)
}

// Handle processes the lmi-explain prompt request.
func (p *ExplainPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "How the Life Morale Index works",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please explain how my Life Morale Index is calculated.\n\n" +
						"Then:\n" +
						"1. Run `lmi_calibrate` without a score and show me how raw ratings map onto the calibrated scale\n" +
						"2. Read `lmi://config` and tell me which settings are active (especially whether cross-lift is on)\n" +
						"3. Explain that each block of my week borrows its quality from one dimension " +
						"(Work from Autonomy, Commute from Peace, Gym from Vitality, Relationships from Connection, " +
						"Leisure from Fulfillment) and that sleep quality follows the rest of my week\n" +
						"4. Explain how relative impact and life-event load adjust the final number\n" +
						"5. If I already have a result in this conversation, point at the single change most likely to lift it",
				),
			},
		},
	}, nil
}
