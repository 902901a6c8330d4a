package manuscripts

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Executor applies state-machine transitions to stored manuscripts,
// following spec.md §4.2's contract: load, look up, invoke handler,
// compose write, persist as a single atomic replace.
type Executor struct {
	store *Store
	log   *logrus.Entry
}

// NewExecutor builds an Executor over store.
func NewExecutor(store *Store, log *logrus.Entry) *Executor {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Executor{store: store, log: log}
}

// Transition applies action to the manuscript identified by id, optionally
// supplying referee for ARF/DRF, and returns the manuscript in its new
// state. On any failure the stored manuscript is left untouched.
func (e *Executor) Transition(ctx context.Context, id string, action Action, referee string) (*Manuscript, error) {
	m, err := e.store.Read(ctx, id)
	if err != nil {
		e.log.WithFields(logrus.Fields{"manuscript_id": id, "action": action}).
			WithError(err).Warn("transition failed: manuscript not found")
		return nil, err
	}

	tr, err := lookup(m.State, action)
	if err != nil {
		e.log.WithFields(logrus.Fields{"manuscript_id": id, "action": action, "state": m.State}).
			WithError(err).Warn("transition rejected")
		return nil, err
	}

	nextState, nextReferees, err := apply(tr, m.Referees, referee)
	if err != nil {
		e.log.WithFields(logrus.Fields{"manuscript_id": id, "action": action, "state": m.State}).
			WithError(err).Warn("transition handler rejected")
		return nil, err
	}

	m.State = nextState
	m.Referees = nextReferees
	m.History = append(m.History, nextState)

	if err := e.store.persist(ctx, m); err != nil {
		e.log.WithFields(logrus.Fields{"manuscript_id": id, "action": action}).
			WithError(err).Error("transition write failed")
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"manuscript_id": id, "action": action, "state": nextState,
	}).Info("transition applied")
	return m, nil
}
