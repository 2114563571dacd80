package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSkills_PartialMatch(t *testing.T) {
	res := Compare([]string{"sql", "excel"}, []string{"sql", "tableau"})

	assert.ElementsMatch(t, []string{"sql"}, res.Matched.Tokens())
	assert.ElementsMatch(t, []string{"tableau"}, res.Missing.Tokens())
	assert.Equal(t, Summary{TotalRequired: 2, TotalMatched: 1, TotalMissing: 1}, res.Summary)
}

func TestCompareSkills_CaseInsensitive(t *testing.T) {
	res := Compare([]string{"  Python ", "SQL"}, []string{"python", "Sql", "Tableau"})

	assert.ElementsMatch(t, []string{"python", "sql"}, res.Matched.Tokens())
	assert.ElementsMatch(t, []string{"tableau"}, res.Missing.Tokens())
	assert.ElementsMatch(t, []string{"python", "Sql"}, res.MatchedNames())
	assert.Equal(t, []string{"Tableau"}, res.MissingNames())
}

func TestCompareSkills_Disjoint(t *testing.T) {
	res := Compare([]string{"go", "docker"}, []string{"figma", "research"})

	assert.Zero(t, res.Matched.Len())
	assert.ElementsMatch(t, []string{"figma", "research"}, res.Missing.Tokens())
}

func TestCompareSkills_Identical(t *testing.T) {
	skills := []string{"python", "sql", "project management"}
	res := Compare(skills, skills)

	assert.Zero(t, res.Missing.Len())
	assert.True(t, res.Matched.Equal(NewSkillSet(skills...)))
}

func TestCompareSkills_Empty(t *testing.T) {
	cases := []struct {
		name string
		user []string
		job  []string
	}{
		{name: "both nil"},
		{name: "no job skills", user: []string{"sql"}},
		{name: "blank tokens", user: []string{" "}, job: []string{"", "\t"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Compare(tc.user, tc.job)
			assert.Zero(t, res.Matched.Len())
			assert.Zero(t, res.Missing.Len())
			assert.Equal(t, Summary{}, res.Summary)
		})
	}
}

func TestCompareSkills_PartitionsJobSkills(t *testing.T) {
	inputs := []struct {
		user []string
		job  []string
	}{
		{user: []string{"a", "b"}, job: []string{"b", "c", "d"}},
		{user: []string{"x"}, job: []string{"x"}},
		{user: []string{"a", "b", "c", "extra"}, job: []string{"a", "b", "c"}},
		{user: nil, job: []string{"a", "A", "b"}},
	}

	for _, in := range inputs {
		user := NewSkillSet(in.user...)
		job := NewSkillSet(in.job...)
		res := CompareSkills(user, job)

		require.Equal(t, job.Len(), res.Matched.Len()+res.Missing.Len())
		for _, k := range res.Matched.Tokens() {
			assert.True(t, user.Contains(k))
			assert.True(t, job.Contains(k))
			assert.False(t, res.Missing.Contains(k))
		}
		for _, k := range res.Missing.Tokens() {
			assert.True(t, job.Contains(k))
			assert.False(t, user.Contains(k))
		}
	}
}

func TestCompareSkills_Idempotent(t *testing.T) {
	user := []string{"Excel", "SQL", "communication"}
	job := []string{"sql", "tableau", "communication", "figma"}

	first := Compare(user, job)
	second := Compare(user, job)

	assert.Equal(t, first.Matched.Tokens(), second.Matched.Tokens())
	assert.Equal(t, first.Missing.Tokens(), second.Missing.Tokens())
	assert.Equal(t, first.Summary, second.Summary)
}

func TestSkillSet_Dedup(t *testing.T) {
	s := NewSkillSet("SQL", "sql", " Sql ", "project   management", "Project Management")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"project management", "sql"}, s.Tokens())
	assert.Equal(t, []string{"project management", "SQL"}, s.Display())
}

func TestNormalizeSkill(t *testing.T) {
	assert.Equal(t, "", NormalizeSkill("   "))
	assert.Equal(t, "project management", NormalizeSkill(" Project\tManagement "))
	assert.Equal(t, "strasse", NormalizeSkill("STRASSE"))
}
