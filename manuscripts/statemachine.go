package manuscripts

import (
	"sort"
	"strings"

	"journal.dev/editorial/errs"
)

// handlerTag selects one of a small closed set of transition handlers. The
// source encoded the state machine as a nested mapping whose leaves were
// anonymous callables; storing a tag instead of a callable keeps the table
// a plain data value while still being declarative (spec.md §9).
type handlerTag int

const (
	handlerConstant handlerTag = iota
	handlerAssignRef
	handlerDeleteRef
	handlerSubmitReview
)

// transition is one cell of the state machine: the next state (meaningful
// for handlerConstant and handlerAssignRef/handlerSubmitReview, where it's
// fixed; ignored for handlerDeleteRef, which computes it from the referee
// count) and which handler tag applies.
type transition struct {
	Next    StateCode
	Handler handlerTag
}

// table is the full (state, action) -> transition map from spec.md §4.1.
// Entries absent from a state's inner map are illegal actions.
var table = map[StateCode]map[Action]transition{
	Submitted: {
		AssignReferee: {Next: InRefereeReview, Handler: handlerAssignRef},
		Reject:        {Next: Rejected, Handler: handlerConstant},
		Withdraw:      {Next: Withdrawn, Handler: handlerConstant},
	},
	InRefereeReview: {
		AssignReferee:       {Next: InRefereeReview, Handler: handlerAssignRef},
		DeleteReferee:       {Handler: handlerDeleteRef},
		SubmitReview:        {Next: InRefereeReview, Handler: handlerSubmitReview},
		Accept:              {Next: CopyEdit, Handler: handlerConstant},
		AcceptWithRevisions: {Next: AuthorRevision, Handler: handlerConstant},
		Reject:              {Next: Rejected, Handler: handlerConstant},
		Withdraw:            {Next: Withdrawn, Handler: handlerConstant},
	},
	CopyEdit: {
		Done:     {Next: AuthorReview, Handler: handlerConstant},
		Withdraw: {Next: Withdrawn, Handler: handlerConstant},
	},
	AuthorReview: {
		Done:     {Next: Formatting, Handler: handlerConstant},
		Withdraw: {Next: Withdrawn, Handler: handlerConstant},
	},
	AuthorRevision: {
		Done:     {Next: EditorReview, Handler: handlerConstant},
		Withdraw: {Next: Withdrawn, Handler: handlerConstant},
	},
	EditorReview: {
		Accept:   {Next: CopyEdit, Handler: handlerConstant},
		Withdraw: {Next: Withdrawn, Handler: handlerConstant},
	},
	Formatting: {
		Done:     {Next: Published, Handler: handlerConstant},
		Withdraw: {Next: Withdrawn, Handler: handlerConstant},
	},
	Published: {
		Withdraw: {Next: Withdrawn, Handler: handlerConstant},
	},
	Rejected: {
		Withdraw: {Next: Withdrawn, Handler: handlerConstant},
	},
	Withdrawn: {},
}

// LegalActions returns the set of actions that do not fail with
// InvalidArgument from state, in a stable order.
func LegalActions(state StateCode) []Action {
	cell, ok := table[state]
	if !ok {
		return nil
	}
	out := make([]Action, 0, len(cell))
	for a := range cell {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lookup returns the transition for (state, action), or an InvalidArgument
// error if the action is illegal from that state.
func lookup(state StateCode, action Action) (transition, error) {
	cell, ok := table[state]
	if !ok {
		return transition{}, errs.Newf(errs.InvalidArgument, "unknown state %q", state)
	}
	tr, ok := cell[action]
	if !ok {
		return transition{}, errs.Newf(errs.InvalidArgument, "action %q is not legal from state %q", action, state)
	}
	return tr, nil
}

// apply invokes the handler selected by tr, producing the candidate next
// state and referee sequence. referee is the optional referee identifier
// supplied with ARF/DRF requests.
func apply(tr transition, referees []string, referee string) (StateCode, []string, error) {
	switch tr.Handler {
	case handlerConstant:
		return tr.Next, referees, nil
	case handlerAssignRef:
		return assignRef(tr.Next, referees, referee)
	case handlerDeleteRef:
		return deleteRef(referees, referee)
	case handlerSubmitReview:
		return submitReview(tr.Next, referees)
	default:
		return "", nil, errs.New(errs.Internal, "unreachable: unknown handler tag")
	}
}

func assignRef(next StateCode, referees []string, referee string) (StateCode, []string, error) {
	if isBlank(referee) {
		return "", nil, errs.New(errs.InvalidArgument, "referee identifier is required for ARF")
	}
	for _, r := range referees {
		if r == referee {
			return "", nil, errs.Newf(errs.InvalidArgument, "referee %q is already assigned", referee)
		}
	}
	updated := append(append([]string{}, referees...), referee)
	return next, updated, nil
}

func deleteRef(referees []string, referee string) (StateCode, []string, error) {
	if isBlank(referee) {
		return "", nil, errs.New(errs.InvalidArgument, "referee identifier is required for DRF")
	}
	idx := -1
	for i, r := range referees {
		if r == referee {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", nil, errs.Newf(errs.InvalidArgument, "referee %q is not assigned", referee)
	}
	updated := make([]string, 0, len(referees)-1)
	updated = append(updated, referees[:idx]...)
	updated = append(updated, referees[idx+1:]...)
	if len(updated) > 0 {
		return InRefereeReview, updated, nil
	}
	return Submitted, updated, nil
}

func submitReview(next StateCode, referees []string) (StateCode, []string, error) {
	return next, referees, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
