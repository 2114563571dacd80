package matching

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// SkillSet holds case-folded skill tokens. The zero value is an empty set.
type SkillSet struct {
	items map[string]string
}

// NormalizeSkill folds case and collapses whitespace. It returns "" for blank input.
func NormalizeSkill(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// NewSkillSet builds a set from raw tokens. Blank tokens are dropped and the
// first spelling seen for a token is kept for display.
func NewSkillSet(raw ...string) SkillSet {
	s := SkillSet{items: make(map[string]string, len(raw))}
	for _, r := range raw {
		s.Add(r)
	}
	return s
}

func (s *SkillSet) Add(raw string) {
	key := NormalizeSkill(raw)
	if key == "" {
		return
	}
	if s.items == nil {
		s.items = make(map[string]string)
	}
	if _, ok := s.items[key]; ok {
		return
	}
	s.items[key] = strings.Join(strings.Fields(raw), " ")
}

func (s SkillSet) Contains(raw string) bool {
	_, ok := s.items[NormalizeSkill(raw)]
	return ok
}

func (s SkillSet) Len() int {
	return len(s.items)
}

// Tokens returns the normalized tokens in sorted order.
func (s SkillSet) Tokens() []string {
	out := make([]string, 0, len(s.items))
	for k := range s.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Display returns the original spelling of each token, ordered like Tokens.
func (s SkillSet) Display() []string {
	keys := s.Tokens()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.items[k])
	}
	return out
}

func (s SkillSet) display(key string) string {
	if v, ok := s.items[key]; ok {
		return v
	}
	return key
}

func (s SkillSet) Equal(other SkillSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for k := range s.items {
		if _, ok := other.items[k]; !ok {
			return false
		}
	}
	return true
}
