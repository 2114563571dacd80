// Package catalog holds the static data tables served by the API: the skill
// keyword list used for extraction, the course lookup table and the fixed
// skills-gap report. A catalog is loaded once at startup and is read-only
// afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"alignr/internal/domain/matching"

	"github.com/go-playground/validator/v10"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

var ErrEmptyPath = errors.New("catalog path is empty")

type Course struct {
	Name         string `json:"name" validate:"required"`
	Provider     string `json:"provider" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	HoursPerWeek int    `json:"hours_per_week" validate:"gte=1"`
	Reason       string `json:"reason,omitempty"`
}

type GapReportItem struct {
	Skill             string  `json:"skill" validate:"required"`
	WhyNeeded         string  `json:"why_needed"`
	HowToEvidence     string  `json:"how_to_evidence"`
	RecommendedCourse *Course `json:"recommended_course,omitempty"`
}

type SkillsGapReport struct {
	JobTitle        string          `json:"job_title"`
	SkillsToDevelop []GapReportItem `json:"skills_to_develop"`
}

type Catalog struct {
	SkillKeywords   []string          `json:"skill_keywords" validate:"required,min=1,dive,required"`
	Courses         map[string]Course `json:"courses"`
	SkillsGapReport SkillsGapReport   `json:"skills_gap_report"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalogJSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads and validates a catalog file. An empty path yields ErrEmptyPath.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", abs, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", abs, err)
	}
	return c, nil
}

// LoadOrDefault loads path when set and falls back to the embedded catalog otherwise.
func LoadOrDefault(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse validates raw JSON against the catalog schema and the struct rules,
// then normalizes course keys and keywords the way skills are compared.
func Parse(data []byte) (*Catalog, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	c.normalize()
	return &c, nil
}

func (c *Catalog) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	for key, course := range c.Courses {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("invalid catalog: course with empty skill key")
		}
		if err := v.Struct(course); err != nil {
			return fmt.Errorf("invalid catalog course %q: %w", key, err)
		}
	}
	for i, item := range c.SkillsGapReport.SkillsToDevelop {
		if err := v.Struct(item); err != nil {
			return fmt.Errorf("invalid skills_gap_report item %d: %w", i, err)
		}
	}
	return nil
}

func (c *Catalog) normalize() {
	courses := make(map[string]Course, len(c.Courses))
	for key, course := range c.Courses {
		courses[matching.NormalizeSkill(key)] = course
	}
	c.Courses = courses

	keywords := make([]string, 0, len(c.SkillKeywords))
	for _, kw := range c.SkillKeywords {
		kw = matching.NormalizeSkill(kw)
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
	}
	c.SkillKeywords = keywords

	if c.SkillsGapReport.SkillsToDevelop == nil {
		c.SkillsGapReport.SkillsToDevelop = []GapReportItem{}
	}
}

// CourseFor looks a course up by skill name, normalized as skills are compared.
func (c *Catalog) CourseFor(skill string) (Course, bool) {
	if c == nil {
		return Course{}, false
	}
	course, ok := c.Courses[matching.NormalizeSkill(skill)]
	return course, ok
}

// Keywords returns a copy of the extraction keyword list.
func (c *Catalog) Keywords() []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, len(c.SkillKeywords))
	copy(out, c.SkillKeywords)
	return out
}
