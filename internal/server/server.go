// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it takes the scoring service and injects
// it into the tools, prompts and resources that depend on it.
// No business logic lives here, only wiring.
package server

import (
	"github.com/HendryAvila/lifemorale/internal/lmi"
	"github.com/HendryAvila/lifemorale/internal/prompts"
	"github.com/HendryAvila/lifemorale/internal/resources"
	"github.com/HendryAvila/lifemorale/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Name is the MCP server name advertised to hosts.
const Name = "lmi"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
func New(service *lmi.Service) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	scoreTool := tools.NewScoreTool(service)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	calibrateTool := tools.NewCalibrateTool(service)
	s.AddTool(calibrateTool.Definition(), calibrateTool.Handle)

	// --- Register prompts ---

	checkinPrompt := prompts.NewCheckinPrompt()
	s.AddPrompt(checkinPrompt.Definition(), checkinPrompt.Handle)

	explainPrompt := prompts.NewExplainPrompt()
	s.AddPrompt(explainPrompt.Definition(), explainPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(service)
	s.AddResource(resourceHandler.QuestionnaireResource(), resourceHandler.HandleQuestionnaire)
	s.AddResource(resourceHandler.ConfigResource(), resourceHandler.HandleConfig)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// how to use the LMI server.
func serverInstructions() string {
	return `You have access to the Life Morale Index (LMI) server.

## What LMI measures
LMI turns a short self-assessment into one number on a 0-10 scale that
describes how a person's week feels. It combines:
- 24 ratings (1-10) grouped into five dimensions: Fulfillment (1-5),
  Connection (6-10), Autonomy (11-15), Vitality (16-20), Peace (21-24)
- A weekly time map: hours and a relative impact (RI, 1 drains to 10
  energises, 5 neutral) for Sleep, Work, Commute, Relationships, Leisure,
  Gym, Chores, Growth and Other
- An Event Load Index (ELI, 1-10) for current upheaval

## WHEN TO USE LMI
Suggest a check-in when the user talks about burnout, wellbeing, work-life
balance, or asks "how am I doing". Use the lmi-checkin prompt to drive it.

## How to score
1. Collect the answers in dimension order. Skipped ratings are fine: send
   null. Keep the user's short notes; they come back with the drainers and
   uplifters.
2. Collect hours and RI per category. Missing categories default to 0 hours
   (Sleep: 49) and a neutral RI.
3. Call lmi_score with a payload like:
   {"answers":[{"score":7,"note":"..."}], "timeMap":[{"category":"Work","hours":45,"ri":4}], "eli":3}
4. For "what if" questions add scenarioScore to the answers that would
   change. The scenario run re-uses everything else.

## Reading the result
- finalLMI is the headline number. rawLMS is before relative impact and
  life-event load.
- Top drainers are the three lowest ratings; top uplifters the three highest.
  Talk about them with the user's own notes.
- Read lmi://config before explaining numbers: calibration and cross-lift
  change the result.

NEVER present LMI as a clinical assessment. It is a reflection tool.`
}
