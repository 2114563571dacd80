package matching

type Summary struct {
	TotalRequired int
	TotalMatched  int
	TotalMissing  int
}

// GapResult is computed per request and never mutated afterwards.
// Matched and Missing together cover every job skill exactly once.
type GapResult struct {
	Matched SkillSet
	Missing SkillSet
	Summary Summary
}

// MatchedNames returns matched skills spelled as the job listed them.
func (r GapResult) MatchedNames() []string {
	return r.Matched.Display()
}

func (r GapResult) MissingNames() []string {
	return r.Missing.Display()
}

// CompareSkills splits jobSkills into those the user already has and those
// still missing. Empty inputs produce an empty result.
func CompareSkills(userSkills, jobSkills SkillSet) GapResult {
	matched := SkillSet{items: make(map[string]string)}
	missing := SkillSet{items: make(map[string]string)}

	for key := range jobSkills.items {
		if _, ok := userSkills.items[key]; ok {
			matched.items[key] = jobSkills.display(key)
			continue
		}
		missing.items[key] = jobSkills.display(key)
	}

	return GapResult{
		Matched: matched,
		Missing: missing,
		Summary: Summary{
			TotalRequired: jobSkills.Len(),
			TotalMatched:  matched.Len(),
			TotalMissing:  missing.Len(),
		},
	}
}

// Compare is CompareSkills over raw string slices.
func Compare(userSkills, jobSkills []string) GapResult {
	return CompareSkills(NewSkillSet(userSkills...), NewSkillSet(jobSkills...))
}
