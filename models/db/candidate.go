package dbmodels

import (
	"github.com/lib/pq"
)

type CandidateProfile struct {
	BaseModel
	UserID                      string         `gorm:"type:varchar(36);uniqueIndex"`
	User                        *User          `gorm:"foreignKey:UserID"`
	Skills                      pq.StringArray `gorm:"type:text[]"`
	Experience                  int            // опыт в годах
	Education                   string         `gorm:"type:varchar(255)"`
	Location                    string         `gorm:"type:varchar(255)"`
	Summary                     string
	LinkedinURL                 string `gorm:"type:varchar(255)"`
	GithubURL                   string `gorm:"type:varchar(255)"`
	PortfolioURL                string `gorm:"type:varchar(255)"`
	CurrentJobTitle             string `gorm:"type:varchar(255)"`
	CurrentCompany              string `gorm:"type:varchar(255)"`
	ExpectedSalary              int
	NoticePeriod                int
	Availability                string `gorm:"type:varchar(100)"`
	WorkPreference              string `gorm:"type:varchar(50)"`
	IsActivelyLooking           bool
	PreferredLocations          pq.StringArray `gorm:"type:text[]"`
	Certifications              pq.StringArray `gorm:"type:text[]"`
	Languages                   pq.StringArray `gorm:"type:text[]"`
	PreferredSalaryMin          int
	PreferredSalaryMax          int
	ResumeID                    string `gorm:"type:varchar(255)"` // ссылка на файл резюме в хранилище
	ProfileCompletionPercentage int
	IsProfileComplete           bool
	ProjectsCount               int
	AchievementsCount           int
}

// CompletionScore считает процент заполненности профиля.
// Веса полей фиксированы, в сумме дают 100; профиль считается полным от 90.
func (c CandidateProfile) CompletionScore() (score int, isComplete bool) {
	type weighted struct {
		weight int
		filled bool
	}
	fields := []weighted{
		{15, len(c.Skills) > 0},
		{10, c.Experience > 0},
		{10, c.Education != ""},
		{10, c.Location != ""},
		{15, c.Summary != ""},
		{5, c.LinkedinURL != ""},
		{5, c.GithubURL != ""},
		{5, c.PortfolioURL != ""},
		{5, c.CurrentJobTitle != ""},
		{20, c.ResumeID != ""},
	}
	for _, f := range fields {
		if f.filled {
			score += f.weight
		}
	}
	return score, score >= 90
}

type CandidateProfileExt struct {
	CandidateProfile
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

type CandidateProject struct {
	BaseModel
	CandidateID  string         `gorm:"type:varchar(36);index"` // ид пользователя-кандидата
	Title        string         `gorm:"type:varchar(255)"`
	Description  string
	Technologies pq.StringArray `gorm:"type:text[]"`
	ProjectURL   string         `gorm:"type:varchar(255)"`
	GithubURL    string         `gorm:"type:varchar(255)"`
	StartDate    string         `gorm:"type:varchar(50)"`
	EndDate      string         `gorm:"type:varchar(50)"`
	IsOngoing    bool
	TeamSize     int
	Role         string         `gorm:"type:varchar(255)"`
	Achievements pq.StringArray `gorm:"type:text[]"`
}

type CandidateAchievement struct {
	BaseModel
	CandidateID     string `gorm:"type:varchar(36);index"`
	Title           string `gorm:"type:varchar(255)"`
	Description     string
	AchievementType string `gorm:"type:varchar(100)"`
	IssuedBy        string `gorm:"type:varchar(255)"`
	IssuedDate      string `gorm:"type:varchar(50)"`
	CredentialID    string `gorm:"type:varchar(255)"`
	CredentialURL   string `gorm:"type:varchar(255)"`
	ExpiryDate      string `gorm:"type:varchar(50)"`
}

type CandidateFilter struct {
	Skills            []string `json:"skills"`
	Location          string   `json:"location"`
	MinExperience     *int     `json:"min_experience"`
	MaxExperience     *int     `json:"max_experience"`
	WorkPreference    string   `json:"work_preference"`
	IsActivelyLooking *bool    `json:"is_actively_looking"`
}
