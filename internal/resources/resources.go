// Package resources implements MCP resource handlers for the LMI server.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (lmi://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/lifemorale/internal/lmi"
	"github.com/HendryAvila/lifemorale/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs.
const (
	QuestionnaireURI = "lmi://questionnaire"
	ConfigURI        = "lmi://config"
)

// Handler manages LMI resource endpoints.
type Handler struct {
	service *lmi.Service
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(service *lmi.Service) *Handler {
	return &Handler{service: service}
}

// questionnaire describes the input layout a caller has to produce.
type questionnaire struct {
	Answers      int              `json:"answers"`
	RatingScale  [2]float64       `json:"ratingScale"`
	Dimensions   []dimensionRange `json:"dimensions"`
	Categories   []string         `json:"categories"`
	HoursPerWeek float64          `json:"hoursPerWeek"`
	Defaults     inputDefaults    `json:"defaults"`
}

type dimensionRange struct {
	Name string `json:"name"`
	// First and Last are 1-based question numbers, both inclusive.
	First int `json:"first"`
	Last  int `json:"last"`
}

type inputDefaults struct {
	SleepHours float64 `json:"sleepHours"`
	RI         float64 `json:"ri"`
	ELI        float64 `json:"eli"`
}

// QuestionnaireResource returns the MCP resource definition for the
// questionnaire layout.
func (h *Handler) QuestionnaireResource() mcp.Resource {
	return mcp.NewResource(
		QuestionnaireURI,
		"LMI Questionnaire",
		mcp.WithResourceDescription("Answer positions per dimension, time categories and input defaults"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleQuestionnaire returns the questionnaire layout as JSON.
func (h *Handler) HandleQuestionnaire(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	q := questionnaire{
		Answers:      pipeline.AnswerCount,
		RatingScale:  [2]float64{pipeline.MinRating, pipeline.MaxRating},
		HoursPerWeek: pipeline.HoursPerWeek,
		Defaults: inputDefaults{
			SleepHours: pipeline.DefaultSleepHours,
			RI:         pipeline.NeutralRI,
			ELI:        pipeline.DefaultELI,
		},
	}
	for _, d := range pipeline.Dimensions() {
		start, end := d.Range()
		q.Dimensions = append(q.Dimensions, dimensionRange{Name: d.String(), First: start + 1, Last: end})
	}
	for _, c := range pipeline.Categories() {
		q.Categories = append(q.Categories, c.String())
	}
	return jsonResource(req.Params.URI, q)
}

// ConfigResource returns the MCP resource definition for the base
// scoring config.
func (h *Handler) ConfigResource() mcp.Resource {
	return mcp.NewResource(
		ConfigURI,
		"LMI Scoring Config",
		mcp.WithResourceDescription("Scoring parameters every request starts from, and whether strict validation is on"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleConfig returns the service's base config as JSON.
func (h *Handler) HandleConfig(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, struct {
		pipeline.Config
		Strict bool `json:"strict"`
	}{h.service.BaseConfig(), h.service.Strict()})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
