package candidateapimodels

import (
	dbmodels "recruit-track-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

func toPqArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}

type ProjectData struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ProjectURL   string   `json:"project_url"`
	GithubURL    string   `json:"github_url"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	IsOngoing    bool     `json:"is_ongoing"`
	TeamSize     int      `json:"team_size"`
	Role         string   `json:"role"`
	Achievements []string `json:"achievements"`
}

func (r ProjectData) Validate() error {
	if r.Title == "" {
		return errors.New("не указано название проекта")
	}
	if r.Description == "" {
		return errors.New("не указано описание проекта")
	}
	return nil
}

func (r ProjectData) ToModel(candidateUserID string) dbmodels.CandidateProject {
	return dbmodels.CandidateProject{
		CandidateID:  candidateUserID,
		Title:        r.Title,
		Description:  r.Description,
		Technologies: toPqArray(r.Technologies),
		ProjectURL:   r.ProjectURL,
		GithubURL:    r.GithubURL,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		IsOngoing:    r.IsOngoing,
		TeamSize:     r.TeamSize,
		Role:         r.Role,
		Achievements: toPqArray(r.Achievements),
	}
}

func (r ProjectData) UpdateMap() map[string]interface{} {
	return map[string]interface{}{
		"title":        r.Title,
		"description":  r.Description,
		"technologies": toPqArray(r.Technologies),
		"project_url":  r.ProjectURL,
		"github_url":   r.GithubURL,
		"start_date":   r.StartDate,
		"end_date":     r.EndDate,
		"is_ongoing":   r.IsOngoing,
		"team_size":    r.TeamSize,
		"role":         r.Role,
		"achievements": toPqArray(r.Achievements),
	}
}

type AchievementData struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	AchievementType string `json:"achievement_type"`
	IssuedBy        string `json:"issued_by"`
	IssuedDate      string `json:"issued_date"`
	CredentialID    string `json:"credential_id"`
	CredentialURL   string `json:"credential_url"`
	ExpiryDate      string `json:"expiry_date"`
}

func (r AchievementData) Validate() error {
	if r.Title == "" {
		return errors.New("не указано название достижения")
	}
	if r.AchievementType == "" {
		return errors.New("не указан тип достижения")
	}
	return nil
}

func (r AchievementData) ToModel(candidateUserID string) dbmodels.CandidateAchievement {
	return dbmodels.CandidateAchievement{
		CandidateID:     candidateUserID,
		Title:           r.Title,
		Description:     r.Description,
		AchievementType: r.AchievementType,
		IssuedBy:        r.IssuedBy,
		IssuedDate:      r.IssuedDate,
		CredentialID:    r.CredentialID,
		CredentialURL:   r.CredentialURL,
		ExpiryDate:      r.ExpiryDate,
	}
}

type CompletionView struct {
	Score      int  `json:"score"`
	IsComplete bool `json:"is_complete"`
}
