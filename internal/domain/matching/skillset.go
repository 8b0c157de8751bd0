package matching

// SkillSet is an insertion-ordered set of normalized skill tokens. Membership
// is set-like (duplicates collapse), but iteration order is the insertion
// order so that truncating to "top N" skills for explanation messages is
// deterministic across runs.
type SkillSet struct {
	items []string
	index map[string]struct{}
}

func NewSkillSet() *SkillSet {
	return &SkillSet{index: make(map[string]struct{})}
}

func (s *SkillSet) Add(skill string) {
	if s == nil || skill == "" {
		return
	}
	if _, ok := s.index[skill]; ok {
		return
	}
	s.index[skill] = struct{}{}
	s.items = append(s.items, skill)
}

func (s *SkillSet) Has(skill string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[skill]
	return ok
}

func (s *SkillSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns the skills in insertion order. The returned slice is a copy.
func (s *SkillSet) Items() []string {
	if s == nil || len(s.items) == 0 {
		return []string{}
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
