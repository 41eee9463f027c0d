package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/HendryAvila/lifemorale/internal/lmi"
	"github.com/HendryAvila/lifemorale/internal/pipeline"
)

// --- CalibrateTool ---

func TestCalibrateTool_Definition(t *testing.T) {
	def := NewCalibrateTool(newService()).Definition()
	if def.Name != "lmi_calibrate" {
		t.Errorf("name = %q, want lmi_calibrate", def.Name)
	}
}

func TestCalibrateTool_Handle_SingleScore(t *testing.T) {
	tool := NewCalibrateTool(newService())
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"score": float64(10),
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	text := getResultText(result)
	if !strings.Contains(text, "Rating 10 calibrates to **8.75**") {
		t.Errorf("unexpected result: %s", text)
	}
}

func TestCalibrateTool_Handle_Table(t *testing.T) {
	tool := NewCalibrateTool(newService())
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	text := getResultText(result)
	if !strings.Contains(text, "| 1 |") || !strings.Contains(text, "| 10 | 8.75 |") {
		t.Errorf("table should span 1-10:\n%s", text)
	}
}

func TestCalibrateTool_Handle_UsesServiceCalibration(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.Calibration.Max = 10
	tool := NewCalibrateTool(lmi.NewService(lmi.Options{Config: &cfg}))

	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"score": float64(10),
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(getResultText(result), "**10.00**") {
		t.Errorf("service max should apply: %s", getResultText(result))
	}
}

func TestCalibrateTool_Handle_InvalidMax(t *testing.T) {
	tool := NewCalibrateTool(newService())
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"score": float64(5),
		"max":   float64(0),
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("max 0 should be rejected")
	}
}
