package matchinghandler

import (
	"math"
	"recruit-track-backend/db"
	candidatestore "recruit-track-backend/lib/candidate/store"
	jobstore "recruit-track-backend/lib/job/store"
	jobapimodels "recruit-track-backend/models/api/job"
	"sort"
	"strings"
)

const (
	skillWeight      = 0.7
	experienceWeight = 0.3
	minMatchScore    = 20
	maxMatches       = 10
)

type Provider interface {
	MatchCandidatesForJob(jobID string) (list []jobapimodels.MatchView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    candidatestore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    candidatestore.Provider
	jobStore jobstore.Provider
}

func (i impl) MatchCandidatesForJob(jobID string) ([]jobapimodels.MatchView, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return []jobapimodels.MatchView{}, nil
	}
	candidates, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.MatchView, 0, len(candidates))
	for _, c := range candidates {
		score, matching := MatchScore(c.Skills, c.Experience, job.RequiredSkills, job.ExperienceRequired)
		if score <= minMatchScore {
			continue
		}
		result = append(result, jobapimodels.MatchView{
			CandidateID:     c.ID,
			UserID:          c.UserID,
			FirstName:       c.FirstName,
			LastName:        c.LastName,
			Email:           c.Email,
			Skills:          c.Skills,
			Experience:      c.Experience,
			MatchPercentage: score,
			MatchingSkills:  matching,
		})
	}
	// устойчивая сортировка, при равных очках порядок обхода сохраняется
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].MatchPercentage > result[b].MatchPercentage
	})
	if len(result) > maxMatches {
		result = result[:maxMatches]
	}
	return result, nil
}

// MatchScore считает итоговый процент соответствия кандидата вакансии
// и возвращает список совпавших навыков
func MatchScore(candidateSkills []string, candidateExp int, jobSkills []string, requiredExp int) (score int, matching []string) {
	skillScore, matching := SkillMatch(candidateSkills, jobSkills)
	expScore := ExperienceMatch(candidateExp, requiredExp)
	overall := math.Round(skillWeight*float64(skillScore) + experienceWeight*float64(expScore))
	return int(overall), matching
}

// SkillMatch — доля требуемых навыков, найденных у кандидата.
// Сравнение нестрогое: подстрока без учета регистра в обе стороны.
func SkillMatch(candidateSkills, jobSkills []string) (score int, matching []string) {
	if len(jobSkills) == 0 {
		return 0, nil
	}
	matching = []string{}
	for _, js := range jobSkills {
		for _, cs := range candidateSkills {
			if skillMatches(cs, js) {
				matching = append(matching, js)
				break
			}
		}
	}
	return len(matching) * 100 / len(jobSkills), matching
}

// ExperienceMatch — отношение опыта кандидата к требуемому, не более 100
func ExperienceMatch(candidateExp, requiredExp int) int {
	if requiredExp <= 0 {
		return 100
	}
	score := candidateExp * 100 / requiredExp
	if score > 100 {
		return 100
	}
	return score
}

func skillMatches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
