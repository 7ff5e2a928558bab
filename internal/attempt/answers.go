package attempt

// AnswerStore holds the answers given so far for one attempt, keyed by
// question ID. A question maps to the choice IDs currently selected; an
// empty or missing entry means unanswered. The store is owned by exactly
// one Session, which serializes access; it is not safe for shared use.
type AnswerStore struct {
	selected map[string][]string
}

func NewAnswerStore() *AnswerStore {
	return &AnswerStore{selected: map[string][]string{}}
}

// Replace sets choiceID as the only selection for the question
// (single_choice and true_false semantics).
func (s *AnswerStore) Replace(questionID, choiceID string) {
	s.selected[questionID] = []string{choiceID}
}

// Toggle flips choiceID's membership in the question's selection set
// (multi_choice semantics). Toggling the last selected choice off leaves
// the question unanswered.
func (s *AnswerStore) Toggle(questionID, choiceID string) {
	cur := s.selected[questionID]
	for i, c := range cur {
		if c == choiceID {
			s.selected[questionID] = append(cur[:i:i], cur[i+1:]...)
			return
		}
	}
	s.selected[questionID] = append(cur, choiceID)
}

// Get returns a copy of the current selection for the question.
func (s *AnswerStore) Get(questionID string) []string {
	cur := s.selected[questionID]
	if len(cur) == 0 {
		return nil
	}
	out := make([]string, len(cur))
	copy(out, cur)
	return out
}

// Answered reports whether the question has a non-empty selection.
func (s *AnswerStore) Answered(questionID string) bool {
	return len(s.selected[questionID]) > 0
}

// Snapshot returns a deep copy of every non-empty selection.
func (s *AnswerStore) Snapshot() map[string][]string {
	out := make(map[string][]string, len(s.selected))
	for q, cur := range s.selected {
		if len(cur) == 0 {
			continue
		}
		cp := make([]string, len(cur))
		copy(cp, cur)
		out[q] = cp
	}
	return out
}
