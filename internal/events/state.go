package events

// State is everything the dashboard renders from.
//
// Loading is true only until the first fetch resolves. Err is empty when no
// error has been recorded. A recorded error is never cleared by a later
// success; only a newer failure replaces it. Events survive failed fetches.
type State struct {
	Events  []Event
	Loading bool
	Err     string
}

func NewState() State {
	return State{
		Events:  []Event{},
		Loading: true,
	}
}

// Apply folds the outcome of one fetch into the state.
func (s *State) Apply(evs []Event, err error) {
	s.Loading = false
	if err != nil {
		s.Err = err.Error()
		return
	}
	if evs == nil {
		evs = []Event{}
	}
	s.Events = evs
}

func (s State) HasError() bool {
	return s.Err != ""
}
