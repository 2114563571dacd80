package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("We need Python and SQL experience", []string{"python", "sql", "tableau"})
	assert.ElementsMatch(t, []string{"python", "sql"}, got)
}

func TestExtractKeywords_KeywordOrderAndDedup(t *testing.T) {
	got := ExtractKeywords("SQL, sql and more SQL. Also Excel.", []string{"excel", "SQL", "sql", "tableau"})
	assert.Equal(t, []string{"excel", "sql"}, got)
}

func TestExtractKeywords_MultiWordAcrossWhitespace(t *testing.T) {
	got := ExtractKeywords("Strong project\nmanagement skills", []string{"project management"})
	assert.Equal(t, []string{"project management"}, got)
}

func TestExtractKeywords_Substring(t *testing.T) {
	// "analysis" matches inside "data analysis"; containment, not word matching.
	got := ExtractKeywords("Data Analysis role", []string{"analysis", "research"})
	assert.Equal(t, []string{"analysis"}, got)
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Empty(t, ExtractKeywords("", []string{"python"}))
	assert.Empty(t, ExtractKeywords("python", nil))
	assert.NotNil(t, ExtractKeywords("", nil))
}
