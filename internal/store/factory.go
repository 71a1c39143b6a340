package store

import (
	"skintel.app/core/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) CaptureSessions() CaptureSessionStore {
	return newCaptureSessionStore(s.queries)
}

func (s *Stores) Answers() AnswerStore {
	return newAnswerStore(s.queries)
}

func (s *Stores) Catalog() CatalogStore {
	return newCatalogStore(s.queries)
}

func (s *Stores) Routines() RoutineStore {
	return newRoutineStore(s.queries)
}

func (s *Stores) Checkins() CheckinStore {
	return newCheckinStore(s.queries)
}

func (s *Stores) Narratives() NarrativeStore {
	return newNarrativeStore(s.queries)
}
