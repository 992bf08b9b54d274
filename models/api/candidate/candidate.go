package candidateapimodels

import (
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
)

// ProfileData — поля профиля кандидата; nil означает "не менять"
type ProfileData struct {
	FirstName          *string  `json:"first_name"`
	LastName           *string  `json:"last_name"`
	Email              *string  `json:"email"`
	PhoneNumber        *string  `json:"phone_number"`
	Skills             []string `json:"skills"`
	Experience         *int     `json:"experience"`
	Education          *string  `json:"education"`
	Location           *string  `json:"location"`
	Summary            *string  `json:"summary"`
	LinkedinURL        *string  `json:"linkedin_url"`
	GithubURL          *string  `json:"github_url"`
	PortfolioURL       *string  `json:"portfolio_url"`
	CurrentJobTitle    *string  `json:"current_job_title"`
	CurrentCompany     *string  `json:"current_company"`
	ExpectedSalary     *int     `json:"expected_salary"`
	NoticePeriod       *int     `json:"notice_period"`
	Availability       *string  `json:"availability"`
	WorkPreference     *string  `json:"work_preference"`
	IsActivelyLooking  *bool    `json:"is_actively_looking"`
	PreferredLocations []string `json:"preferred_locations"`
	Certifications     []string `json:"certifications"`
	Languages          []string `json:"languages"`
	PreferredSalaryMin *int     `json:"preferred_salary_min"`
	PreferredSalaryMax *int     `json:"preferred_salary_max"`
}

func (r ProfileData) Validate() error {
	if r.Experience != nil && *r.Experience < 0 {
		return errors.New("опыт не может быть отрицательным")
	}
	return nil
}

// UpdateMap собирает карту для частичного обновления профиля
func (r ProfileData) UpdateMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.Skills != nil {
		updMap["skills"] = toPqArray(r.Skills)
	}
	if r.Experience != nil {
		updMap["experience"] = *r.Experience
	}
	if r.Education != nil {
		updMap["education"] = *r.Education
	}
	if r.Location != nil {
		updMap["location"] = *r.Location
	}
	if r.Summary != nil {
		updMap["summary"] = *r.Summary
	}
	if r.LinkedinURL != nil {
		updMap["linkedin_url"] = *r.LinkedinURL
	}
	if r.GithubURL != nil {
		updMap["github_url"] = *r.GithubURL
	}
	if r.PortfolioURL != nil {
		updMap["portfolio_url"] = *r.PortfolioURL
	}
	if r.CurrentJobTitle != nil {
		updMap["current_job_title"] = *r.CurrentJobTitle
	}
	if r.CurrentCompany != nil {
		updMap["current_company"] = *r.CurrentCompany
	}
	if r.ExpectedSalary != nil {
		updMap["expected_salary"] = *r.ExpectedSalary
	}
	if r.NoticePeriod != nil {
		updMap["notice_period"] = *r.NoticePeriod
	}
	if r.Availability != nil {
		updMap["availability"] = *r.Availability
	}
	if r.WorkPreference != nil {
		updMap["work_preference"] = *r.WorkPreference
	}
	if r.IsActivelyLooking != nil {
		updMap["is_actively_looking"] = *r.IsActivelyLooking
	}
	if r.PreferredLocations != nil {
		updMap["preferred_locations"] = toPqArray(r.PreferredLocations)
	}
	if r.Certifications != nil {
		updMap["certifications"] = toPqArray(r.Certifications)
	}
	if r.Languages != nil {
		updMap["languages"] = toPqArray(r.Languages)
	}
	if r.PreferredSalaryMin != nil {
		updMap["preferred_salary_min"] = *r.PreferredSalaryMin
	}
	if r.PreferredSalaryMax != nil {
		updMap["preferred_salary_max"] = *r.PreferredSalaryMax
	}
	return updMap
}

// IdentityUpdateMap — карта для попутного обновления учетной записи
func (r ProfileData) IdentityUpdateMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.FirstName != nil && *r.FirstName != "" {
		updMap["first_name"] = *r.FirstName
	}
	if r.LastName != nil && *r.LastName != "" {
		updMap["last_name"] = *r.LastName
	}
	if r.Email != nil && *r.Email != "" {
		updMap["email"] = *r.Email
	}
	if r.PhoneNumber != nil && *r.PhoneNumber != "" {
		updMap["phone_number"] = *r.PhoneNumber
	}
	return updMap
}

type ProfileView struct {
	ID                          string   `json:"id"`
	UserID                      string   `json:"user_id"`
	FirstName                   string   `json:"first_name"`
	LastName                    string   `json:"last_name"`
	Email                       string   `json:"email"`
	PhoneNumber                 string   `json:"phone_number"`
	Skills                      []string `json:"skills"`
	Experience                  int      `json:"experience"`
	Education                   string   `json:"education"`
	Location                    string   `json:"location"`
	Summary                     string   `json:"summary"`
	LinkedinURL                 string   `json:"linkedin_url"`
	GithubURL                   string   `json:"github_url"`
	PortfolioURL                string   `json:"portfolio_url"`
	CurrentJobTitle             string   `json:"current_job_title"`
	CurrentCompany              string   `json:"current_company"`
	Availability                string   `json:"availability"`
	WorkPreference              string   `json:"work_preference"`
	IsActivelyLooking           bool     `json:"is_actively_looking"`
	ResumeID                    string   `json:"resume_id"`
	ProfileCompletionPercentage int      `json:"profile_completion_percentage"`
	IsProfileComplete           bool     `json:"is_profile_complete"`
	ProjectsCount               int      `json:"projects_count"`
	AchievementsCount           int      `json:"achievements_count"`
}

func ProfileConvert(rec dbmodels.CandidateProfile) ProfileView {
	view := ProfileView{
		ID:                          rec.ID,
		UserID:                      rec.UserID,
		Skills:                      rec.Skills,
		Experience:                  rec.Experience,
		Education:                   rec.Education,
		Location:                    rec.Location,
		Summary:                     rec.Summary,
		LinkedinURL:                 rec.LinkedinURL,
		GithubURL:                   rec.GithubURL,
		PortfolioURL:                rec.PortfolioURL,
		CurrentJobTitle:             rec.CurrentJobTitle,
		CurrentCompany:              rec.CurrentCompany,
		Availability:                rec.Availability,
		WorkPreference:              rec.WorkPreference,
		IsActivelyLooking:           rec.IsActivelyLooking,
		ResumeID:                    rec.ResumeID,
		ProfileCompletionPercentage: rec.ProfileCompletionPercentage,
		IsProfileComplete:           rec.IsProfileComplete,
		ProjectsCount:               rec.ProjectsCount,
		AchievementsCount:           rec.AchievementsCount,
	}
	if rec.User != nil {
		view.FirstName = rec.User.FirstName
		view.LastName = rec.User.LastName
		view.Email = rec.User.Email
		view.PhoneNumber = rec.User.PhoneNumber
	}
	return view
}

func ProfileConvertExt(rec dbmodels.CandidateProfileExt) ProfileView {
	view := ProfileConvert(rec.CandidateProfile)
	view.FirstName = rec.FirstName
	view.LastName = rec.LastName
	view.Email = rec.Email
	view.PhoneNumber = rec.PhoneNumber
	return view
}
