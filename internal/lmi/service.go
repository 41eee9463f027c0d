// Package lmi is the boundary between the transports and the scoring
// pipeline. It decodes request payloads, resolves per-request config over
// the service's base config, optionally validates, scores, and records
// metrics. Every transport (MCP, HTTP, CLI) goes through a Service.
package lmi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/HendryAvila/lifemorale/internal/metrics"
	"github.com/HendryAvila/lifemorale/internal/pipeline"
	"go.uber.org/zap"
)

// Transport names used in logs and metric labels.
const (
	TransportMCP  = "mcp"
	TransportHTTP = "http"
	TransportCLI  = "cli"
)

// Options configures a Service. Zero fields fall back to defaults: the
// built-in scoring config, a no-op logger and no metrics.
type Options struct {
	Config  *pipeline.Config
	Strict  bool
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Service scores requests. It is safe for concurrent use: it holds only
// immutable config and concurrency-safe collaborators.
type Service struct {
	base    pipeline.Config
	strict  bool
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates a Service from opts.
func NewService(opts Options) *Service {
	s := &Service{
		base:    pipeline.DefaultConfig(),
		strict:  opts.Strict,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
	if opts.Config != nil {
		s.base = *opts.Config
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// BaseConfig returns the config every request starts from.
func (s *Service) BaseConfig() pipeline.Config { return s.base }

// Strict reports whether inputs are validated before scoring.
func (s *Service) Strict() bool { return s.strict }

// Decode parses a request payload into an Input. Malformed payloads
// return an error matching pipeline.ErrInvalidRequest.
func Decode(payload []byte) (pipeline.Input, error) {
	var in pipeline.Input
	if len(bytes.TrimSpace(payload)) == 0 {
		return in, fmt.Errorf("%w: empty payload", pipeline.ErrInvalidRequest)
	}
	if err := json.Unmarshal(payload, &in); err != nil {
		return in, fmt.Errorf("%w: %v", pipeline.ErrInvalidRequest, err)
	}
	return in, nil
}

// Evaluate decodes payload and scores it.
func (s *Service) Evaluate(ctx context.Context, transport string, payload []byte) (pipeline.Output, error) {
	start := time.Now()
	in, err := Decode(payload)
	if err != nil {
		s.reject(transport, metrics.OutcomeInvalid, start, err)
		return pipeline.Output{}, err
	}
	return s.evaluate(ctx, transport, in, start)
}

// EvaluateInput scores an already decoded Input.
func (s *Service) EvaluateInput(ctx context.Context, transport string, in pipeline.Input) (pipeline.Output, error) {
	return s.evaluate(ctx, transport, in, time.Now())
}

func (s *Service) evaluate(ctx context.Context, transport string, in pipeline.Input, start time.Time) (pipeline.Output, error) {
	if err := ctx.Err(); err != nil {
		s.reject(transport, metrics.OutcomeCanceled, start, err)
		return pipeline.Output{}, err
	}
	if s.strict {
		if err := pipeline.Validate(in); err != nil {
			s.reject(transport, metrics.OutcomeInvalid, start, err)
			return pipeline.Output{}, err
		}
	}

	cfg := in.Config.Apply(s.base)
	if err := pipeline.ValidateConfig(cfg); err != nil {
		s.reject(transport, metrics.OutcomeInvalid, start, err)
		return pipeline.Output{}, err
	}
	out := pipeline.Score(in, cfg)

	s.metrics.ObserveRequest(transport, metrics.OutcomeOK, time.Since(start))
	s.metrics.ObserveIndex("current", out.Current.FinalLMI)
	s.metrics.ObserveIndex("scenario", out.Scenario.FinalLMI)
	s.logger.Debug("scored request",
		zap.String("transport", transport),
		zap.Int("answers", len(in.Answers)),
		zap.Int("time_rows", len(in.TimeMap)),
		zap.Bool("cross_lift", cfg.CrossLift.Enabled),
		zap.Float64("final_lmi", out.Current.FinalLMI),
		zap.Float64("final_lmi_scenario", out.Scenario.FinalLMI),
	)
	return out, nil
}

func (s *Service) reject(transport, outcome string, start time.Time, err error) {
	s.metrics.ObserveRequest(transport, outcome, time.Since(start))
	fields := []zap.Field{
		zap.String("transport", transport),
		zap.String("outcome", outcome),
		zap.Error(err),
	}
	var verr *pipeline.ValidationError
	if errors.As(err, &verr) {
		fields = append(fields, zap.Int("problems", len(verr.Problems)))
	}
	s.logger.Info("rejected request", fields...)
}
