// Package pipeline sequences the two-stage analysis: gather intelligence,
// triage with the fast model, then generate the branch-specific response
// with the detailed model. No stage loops and nothing retries.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"crisisvision/config"
	"crisisvision/decode"
	"crisisvision/knowledge"
	"crisisvision/llm"
	"crisisvision/prompts"
	"crisisvision/types"
)

// Gatherer collects provider intelligence for one request.
type Gatherer interface {
	Gather(ctx context.Context, location string, category types.Category) types.IntelligenceBundle
}

// Completer invokes the inference backend.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

// StageError wraps a failure with the pipeline stage it happened in, so the
// caller always learns which stage failed and why.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// Controller runs the pipeline. It holds no per-request state; every call
// builds its data fresh.
type Controller struct {
	cfg   config.Config
	intel Gatherer
	llm   Completer
}

func New(cfg config.Config, gatherer Gatherer, completer Completer) *Controller {
	return &Controller{cfg: cfg, intel: gatherer, llm: completer}
}

// Analyze runs the full pipeline for one request. The returned result is
// complete, or the error is a *StageError; there is no partial output.
func (p *Controller) Analyze(ctx context.Context, analysisID string, req types.AnalysisRequest, category types.Category) (types.PipelineResult, error) {
	bundle := p.intel.Gather(ctx, req.Location, category)

	log.Printf("[%s] stage 1: quick triage decision", analysisID)
	triageRaw, err := p.llm.Complete(ctx, llm.CompletionRequest{
		System:      prompts.TriageSystem,
		User:        prompts.BuildTriagePrompt(req.Scenario, req.Location, bundle),
		Model:       p.cfg.DecisionModel,
		Temperature: p.cfg.Temperature,
		MaxTokens:   p.cfg.MaxTokens,
	})
	if err != nil {
		return types.PipelineResult{}, &StageError{Stage: "triage", Err: err}
	}
	decision, err := decode.Triage(triageRaw)
	if err != nil {
		return types.PipelineResult{}, &StageError{Stage: "triage", Err: err}
	}
	log.Printf("[%s] decision: emergency=%t type=%s confidence=%.2f", analysisID, decision.IsEmergency, decision.EmergencyType, decision.Confidence)

	result := types.PipelineResult{
		Decision: types.DecisionMetadata{
			Stage1Decision: decision,
			Stage1Model:    p.cfg.DecisionModel,
			Stage2Model:    p.cfg.ResponseModel,
		},
		Procedures: knowledge.Procedures(decision.EmergencyType),
		Metadata: types.RequestEcho{
			AnalysisID:          analysisID,
			Scenario:            req.Scenario,
			Location:            req.Location,
			EmergencyType:       req.EmergencyType,
			IntelligenceSources: bundle.Sources(),
		},
	}

	log.Printf("[%s] stage 2: generating detailed response", analysisID)
	if decision.IsEmergency {
		raw, err := p.llm.Complete(ctx, llm.CompletionRequest{
			System:      prompts.EmergencySystem,
			User:        prompts.BuildEmergencyPrompt(req.Scenario, req.Location, decision.EmergencyType, bundle),
			Model:       p.cfg.ResponseModel,
			Temperature: p.cfg.Temperature,
			MaxTokens:   p.cfg.MaxTokens,
		})
		if err != nil {
			return types.PipelineResult{}, &StageError{Stage: "response", Err: err}
		}
		plan, err := decode.Plan(raw)
		if err != nil {
			return types.PipelineResult{}, &StageError{Stage: "response", Err: err}
		}
		p.checkRouteLength(analysisID, plan)
		result.Plan = &plan
	} else {
		raw, err := p.llm.Complete(ctx, llm.CompletionRequest{
			System:      prompts.FalseAlarmSystem,
			User:        prompts.BuildFalseAlarmPrompt(req.Scenario, req.Location, bundle),
			Model:       p.cfg.ResponseModel,
			Temperature: p.cfg.Temperature,
			MaxTokens:   p.cfg.MaxTokens,
		})
		if err != nil {
			return types.PipelineResult{}, &StageError{Stage: "response", Err: err}
		}
		assessment, err := decode.Assessment(raw)
		if err != nil {
			return types.PipelineResult{}, &StageError{Stage: "response", Err: err}
		}
		result.Assessment = &assessment
	}

	return result, nil
}

// BundleReport is the degraded-mode response: the raw bundle, no inference.
type BundleReport struct {
	Scenario      string                   `json:"scenario"`
	Location      string                   `json:"location"`
	EmergencyType string                   `json:"emergency_type"`
	Intelligence  types.IntelligenceBundle `json:"intelligence_data"`
	Note          string                   `json:"note"`
}

// GatherOnly skips both inference stages and returns the raw intelligence
// bundle. It is a first-class entry point for integration testing, not an
// error path.
func (p *Controller) GatherOnly(ctx context.Context, req types.AnalysisRequest, category types.Category) BundleReport {
	return BundleReport{
		Scenario:      req.Scenario,
		Location:      req.Location,
		EmergencyType: req.EmergencyType,
		Intelligence:  p.intel.Gather(ctx, req.Location, category),
		Note:          "This is test mode - no LLM call made",
	}
}
