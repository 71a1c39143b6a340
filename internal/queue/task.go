package queue

type TaskType string

const (
	// TaskTypeAnalysisCompleted announces that a capture session has been
	// analyzed and a fresh payload is available for enrichment.
	TaskTypeAnalysisCompleted TaskType = "analysis_completed"
	// TaskTypeCheckinRecorded announces a new routine check-in.
	TaskTypeCheckinRecorded TaskType = "checkin_recorded"
	// TaskTypeNarrativeEnriched carries a narrative envelope id produced by
	// the narrative collaborator, to be applied to the week's routine.
	TaskTypeNarrativeEnriched TaskType = "narrative_enriched"
)

type Task struct {
	TaskType   TaskType
	UserID     int64
	SessionID  *int64
	RoutineID  *int64
	EnvelopeID *int64
	PeriodKey  string
	TraceID    *string
	Attempt    int
}
