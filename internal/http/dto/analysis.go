package dto

import (
	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/service"
)

// AnalysisResponse embeds the engine's output structures directly; their json
// tags are the wire contract.
type AnalysisResponse struct {
	SessionID       int64                    `json:"session_id,string"`
	SessionLabel    string                   `json:"session_label"`
	Needs           []engine.PrioritizedNeed `json:"needs"`
	Report          []engine.ReportItem      `json:"report"`
	Narrative       engine.Narrative         `json:"narrative"`
	Recommendations []engine.Recommendation  `json:"recommendations"`
}

func ToAnalysisResponse(result *service.AnalysisResult) *AnalysisResponse {
	return &AnalysisResponse{
		SessionID:       result.Session.ID,
		SessionLabel:    result.Session.Label,
		Needs:           result.Needs,
		Report:          result.ReportItems,
		Narrative:       result.Narrative,
		Recommendations: result.Recommendations,
	}
}
