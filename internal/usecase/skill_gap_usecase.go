package usecase

import (
	"context"
	"log"
	"strings"

	"alignr/internal/catalog"
	"alignr/internal/domain/guidance"
	"alignr/internal/domain/matching"
)

type Recommendation struct {
	Skill  string
	Course catalog.Course
}

type SkillGapUsecase interface {
	ScoreJob(ctx context.Context, userSkills []string, jobDescription string) guidance.JobScore
	GapTable(ctx context.Context, userSkills, jobSkills []string) guidance.GapTable
	ExtractJobSkills(ctx context.Context, jobDescription string) []string
	CheckSkillsGap(ctx context.Context, jobDescription string, userSkills []string) guidance.SkillsGapCheck
	RecommendLearning(ctx context.Context, missingSkills []string) []Recommendation
	SkillsGapReport(ctx context.Context) catalog.SkillsGapReport
}

type SkillGap struct {
	catalog *catalog.Catalog
	cache   ResultCache
	log     *log.Logger
}

// NewSkillGapUsecase wires the comparator to a catalog. cache may be nil.
func NewSkillGapUsecase(cat *catalog.Catalog, cache ResultCache, logger *log.Logger) *SkillGap {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &SkillGap{catalog: cat, cache: cache, log: logger}
}

func (u *SkillGap) ScoreJob(ctx context.Context, userSkills []string, jobDescription string) guidance.JobScore {
	return guidance.ScoreSkills(userSkills, u.extract(ctx, jobDescription))
}

func (u *SkillGap) GapTable(_ context.Context, userSkills, jobSkills []string) guidance.GapTable {
	return guidance.BuildGapTable(userSkills, jobSkills)
}

func (u *SkillGap) ExtractJobSkills(ctx context.Context, jobDescription string) []string {
	return u.extract(ctx, jobDescription)
}

func (u *SkillGap) CheckSkillsGap(ctx context.Context, jobDescription string, userSkills []string) guidance.SkillsGapCheck {
	return guidance.CheckFoundSkills(u.extract(ctx, jobDescription), userSkills)
}

// RecommendLearning returns catalog courses for the requested skills in
// request order. Unknown skills are skipped; repeated skills appear once.
func (u *SkillGap) RecommendLearning(_ context.Context, missingSkills []string) []Recommendation {
	out := make([]Recommendation, 0, len(missingSkills))
	seen := make(map[string]struct{}, len(missingSkills))
	for _, skill := range missingSkills {
		key := matching.NormalizeSkill(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		course, ok := u.catalog.CourseFor(skill)
		if !ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Recommendation{Skill: strings.TrimSpace(skill), Course: course})
	}
	return out
}

func (u *SkillGap) SkillsGapReport(_ context.Context) catalog.SkillsGapReport {
	return u.catalog.SkillsGapReport
}

func (u *SkillGap) extract(ctx context.Context, jobDescription string) []string {
	keywords := u.catalog.Keywords()
	if strings.TrimSpace(jobDescription) == "" {
		return []string{}
	}
	if u.cache == nil {
		return matching.ExtractKeywords(jobDescription, keywords)
	}

	key := ExtractCacheKey(jobDescription, keywords)
	var cached []string
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		u.log.Printf("usecase=skill_gap op=extract cache=get status=error key=%s err=%v", key, err)
	}
	if hit && cached != nil {
		return cached
	}

	found := matching.ExtractKeywords(jobDescription, keywords)
	if err := u.cache.SetJSON(ctx, key, found, 0); err != nil {
		u.log.Printf("usecase=skill_gap op=extract cache=set status=error key=%s err=%v", key, err)
	}
	return found
}
