package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	if result == nil || len(result.Messages) == 0 {
		t.Fatal("prompt returned no messages")
	}
	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want mcp.TextContent", result.Messages[0].Content)
	}
	return tc.Text
}

// --- CheckinPrompt ---

func TestCheckinPrompt_Definition(t *testing.T) {
	def := NewCheckinPrompt().Definition()
	if def.Name != "lmi-checkin" {
		t.Errorf("name = %q, want lmi-checkin", def.Name)
	}
}

func TestCheckinPrompt_Handle_Default(t *testing.T) {
	result, err := NewCheckinPrompt().Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	text := promptText(t, result)
	for _, want := range []string{"Fulfillment: questions 1-5", "Peace: questions 21-24", "Commute", "`lmi_score`"} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(text, "scenarioScore") {
		t.Error("prompt without a scenario should not ask for scenario ratings")
	}
}

func TestCheckinPrompt_Handle_Scenario(t *testing.T) {
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"scenario": "if I moved closer to work"}

	result, err := NewCheckinPrompt().Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(result.Description, "if I moved closer to work") {
		t.Errorf("description = %q", result.Description)
	}
	if !strings.Contains(promptText(t, result), "scenarioScore") {
		t.Error("scenario prompt should ask for scenario ratings")
	}
}

// --- ExplainPrompt ---

func TestExplainPrompt_Handle(t *testing.T) {
	result, err := NewExplainPrompt().Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	text := promptText(t, result)
	if !strings.Contains(text, "`lmi_calibrate`") || !strings.Contains(text, "lmi://config") {
		t.Errorf("explain prompt should reference the calibrate tool and config resource:\n%s", text)
	}
}
