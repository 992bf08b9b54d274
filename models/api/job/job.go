package jobapimodels

import (
	"fmt"
	dbmodels "recruit-track-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type JobData struct {
	Title              string   `json:"title"`
	Role               string   `json:"role"`
	Department         string   `json:"department"`
	Location           string   `json:"location"`
	Description        string   `json:"description"`
	RequiredSkills     []string `json:"required_skills"`
	ExperienceRequired int      `json:"experience_required"`
	SalaryFrom         int      `json:"salary_from"`
	SalaryTo           int      `json:"salary_to"`
}

func (r JobData) Validate() error {
	if r.Title == "" {
		return errors.New("не указано название вакансии")
	}
	if r.ExperienceRequired < 0 {
		return errors.New("требуемый опыт не может быть отрицательным")
	}
	if r.SalaryTo != 0 && r.SalaryFrom > r.SalaryTo {
		return errors.New("нижняя граница зарплаты больше верхней")
	}
	return nil
}

type JobView struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Role               string    `json:"role"`
	Department         string    `json:"department"`
	Location           string    `json:"location"`
	Description        string    `json:"description"`
	RequiredSkills     []string  `json:"required_skills"`
	ExperienceRequired int       `json:"experience_required"`
	SalaryFrom         int       `json:"salary_from"`
	SalaryTo           int       `json:"salary_to"`
	Status             string    `json:"status"`
	PosterName         string    `json:"poster_name"`
	CreatedAt          time.Time `json:"created_at"`
}

func JobConvert(rec dbmodels.Job) JobView {
	view := JobView{
		ID:                 rec.ID,
		Title:              rec.Title,
		Role:               rec.Role,
		Department:         rec.Department,
		Location:           rec.Location,
		Description:        rec.Description,
		RequiredSkills:     rec.RequiredSkills,
		ExperienceRequired: rec.ExperienceRequired,
		SalaryFrom:         rec.SalaryFrom,
		SalaryTo:           rec.SalaryTo,
		Status:             string(rec.Status),
		PosterName:         "Unknown",
		CreatedAt:          rec.CreatedAt,
	}
	if rec.Poster != nil {
		view.PosterName = rec.Poster.GetFullName()
	}
	return view
}

func JobConvertExt(rec dbmodels.JobExt) JobView {
	view := JobConvert(rec.Job)
	if rec.PosterFirstName != "" || rec.PosterLastName != "" {
		view.PosterName = fmt.Sprintf("%s %s", rec.PosterFirstName, rec.PosterLastName)
	}
	return view
}

// MatchView — результат подбора кандидата под вакансию
type MatchView struct {
	CandidateID     string   `json:"candidate_id"`
	UserID          string   `json:"user_id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Skills          []string `json:"skills"`
	Experience      int      `json:"experience"`
	MatchPercentage int      `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
}
