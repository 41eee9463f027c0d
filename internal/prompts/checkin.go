// Package prompts implements MCP prompt handlers for LMI check-ins.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifemorale/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// CheckinPrompt handles the lmi-checkin MCP prompt.
// It guides the AI through collecting ratings, the week and ELI, then
// scoring them with lmi_score.
type CheckinPrompt struct{}

// NewCheckinPrompt creates a CheckinPrompt.
func NewCheckinPrompt() *CheckinPrompt {
	return &CheckinPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *CheckinPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("lmi-checkin",
		mcp.WithPromptDescription(
			"Run a Life Morale Index check-in: rate 24 statements, describe your week, "+
				"and get your index with the answers dragging it down and lifting it up.",
		),
		mcp.WithArgument("scenario",
			mcp.ArgumentDescription(
				"Optional 'what if' to explore, e.g. 'if I changed jobs'. "+
					"When set, each answer also gets a hypothetical scenario rating.",
			),
		),
	)
}

// Handle processes the lmi-checkin prompt request.
func (p *CheckinPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	scenario := ""
	if args := req.Params.Arguments; args != nil {
		scenario = strings.TrimSpace(args["scenario"])
	}

	var sb strings.Builder
	sb.WriteString("I want to run a Life Morale Index check-in.\n\n")
	sb.WriteString("Please:\n")
	sb.WriteString("1. Read `lmi://questionnaire` to see how the 24 answers are grouped\n")
	sb.WriteString("2. Ask me to rate 24 statements from 1 (very poor) to 10 (excellent), in this order:\n")
	for _, d := range pipeline.Dimensions() {
		start, end := d.Range()
		fmt.Fprintf(&sb, "   - %s: questions %d-%d\n", d, start+1, end)
	}
	sb.WriteString("   Let me skip any statement and add a short note to any rating.\n")
	sb.WriteString("3. Ask how many hours a week I spend on each of: ")
	names := make([]string, 0, len(pipeline.Categories()))
	for _, c := range pipeline.Categories() {
		names = append(names, c.String())
	}
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteString(", and how each one affects me from 1 (drains me) to 10 (energises me), 5 being neutral\n")
	sb.WriteString("4. Ask how much upheaval I am going through right now, from 1 (none) to 10 (major life events)\n")
	if scenario != "" {
		fmt.Fprintf(&sb, "5. For the scenario \"%s\", ask how I would rate each statement in that situation "+
			"and send it as `scenarioScore`; skip the ones that would not change\n", scenario)
		sb.WriteString("6. ")
	} else {
		sb.WriteString("5. ")
	}
	sb.WriteString("Call `lmi_score` with everything as the `payload` JSON, then walk me through the result: " +
		"the index, which dimensions are strongest and weakest, and my top drainers and uplifters with their notes\n")

	description := "Life Morale Index check-in"
	if scenario != "" {
		description = fmt.Sprintf("Life Morale Index check-in: %s", scenario)
	}

	return &mcp.GetPromptResult{
		Description: description,
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(sb.String()),
			},
		},
	}, nil
}
