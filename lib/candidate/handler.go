package candidatehandler

import (
	"recruit-track-backend/db"
	achievementstore "recruit-track-backend/lib/candidate/achievement-store"
	projectstore "recruit-track-backend/lib/candidate/project-store"
	candidatestore "recruit-track-backend/lib/candidate/store"
	usersstore "recruit-track-backend/lib/users/store"
	candidateapimodels "recruit-track-backend/models/api/candidate"
	dbmodels "recruit-track-backend/models/db"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrProfileAlreadyExists = errors.New("профиль кандидата уже создан")
	ErrProfileNotFound      = errors.New("профиль кандидата не найден")
)

type Provider interface {
	CreateProfile(userID string, data candidateapimodels.ProfileData) (view candidateapimodels.ProfileView, err error)
	UpdateProfile(userID string, data candidateapimodels.ProfileData) (view candidateapimodels.ProfileView, err error)
	GetProfile(userID string) (view *candidateapimodels.ProfileView, err error)
	CalculateCompletion(userID string) (result candidateapimodels.CompletionView, err error)
	AddProject(userID string, data candidateapimodels.ProjectData) (id string, err error)
	UpdateProject(userID, projectID string, data candidateapimodels.ProjectData) error
	DeleteProject(userID, projectID string) error
	ListProjects(userID string) (list []dbmodels.CandidateProject, err error)
	AddAchievement(userID string, data candidateapimodels.AchievementData) (id string, err error)
	DeleteAchievement(userID, achievementID string) error
	ListAchievements(userID string) (list []dbmodels.CandidateAchievement, err error)
	List() (list []candidateapimodels.ProfileView, err error)
	ListExt() (list []dbmodels.CandidateProfileExt, err error)
	Search(filter dbmodels.CandidateFilter) (list []candidateapimodels.ProfileView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            candidatestore.NewInstance(db.DB),
		projectStore:     projectstore.NewInstance(db.DB),
		achievementStore: achievementstore.NewInstance(db.DB),
		userStore:        usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            candidatestore.Provider
	projectStore     projectstore.Provider
	achievementStore achievementstore.Provider
	userStore        usersstore.Provider
}

func (i impl) CreateProfile(userID string, data candidateapimodels.ProfileData) (candidateapimodels.ProfileView, error) {
	logger := log.WithField("user_id", userID)
	exist, err := i.store.ExistByUserID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки наличия профиля")
		return candidateapimodels.ProfileView{}, err
	}
	if exist {
		return candidateapimodels.ProfileView{}, ErrProfileAlreadyExists
	}
	rec := dbmodels.CandidateProfile{
		UserID:         userID,
		WorkPreference: "hybrid",
		Availability:   "negotiable",
	}
	applyProfileData(&rec, data)
	rec.ProfileCompletionPercentage, rec.IsProfileComplete = rec.CompletionScore()
	_, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания профиля")
		return candidateapimodels.ProfileView{}, err
	}
	identityUpd := data.IdentityUpdateMap()
	if len(identityUpd) != 0 {
		err = i.userStore.Update(userID, identityUpd)
		if err != nil {
			logger.WithError(err).Error("профиль создан, но учетные данные не обновлены")
			return candidateapimodels.ProfileView{}, errors.Wrap(err, "профиль создан, но учетные данные не обновлены")
		}
	}
	return i.profileView(userID)
}

func (i impl) UpdateProfile(userID string, data candidateapimodels.ProfileData) (candidateapimodels.ProfileView, error) {
	logger := log.WithField("user_id", userID)
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return candidateapimodels.ProfileView{}, err
	}
	if profile == nil {
		return candidateapimodels.ProfileView{}, ErrProfileNotFound
	}
	updMap := data.UpdateMap()
	// заполненность пересчитывается от итогового состояния профиля
	next := profile.CandidateProfile
	applyProfileData(&next, data)
	updMap["profile_completion_percentage"], updMap["is_profile_complete"] = next.CompletionScore()
	err = i.store.UpdateByUserID(userID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления профиля")
		return candidateapimodels.ProfileView{}, err
	}
	identityUpd := data.IdentityUpdateMap()
	if len(identityUpd) != 0 {
		err = i.userStore.Update(userID, identityUpd)
		if err != nil {
			logger.WithError(err).Error("профиль обновлен, но учетные данные не обновлены")
			return candidateapimodels.ProfileView{}, errors.Wrap(err, "профиль обновлен, но учетные данные не обновлены")
		}
	}
	return i.profileView(userID)
}

func (i impl) GetProfile(userID string) (*candidateapimodels.ProfileView, error) {
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	view := candidateapimodels.ProfileConvertExt(*profile)
	return &view, nil
}

func (i impl) CalculateCompletion(userID string) (candidateapimodels.CompletionView, error) {
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return candidateapimodels.CompletionView{}, err
	}
	if profile == nil {
		return candidateapimodels.CompletionView{}, ErrProfileNotFound
	}
	score, isComplete := profile.CompletionScore()
	err = i.store.UpdateByUserID(userID, map[string]interface{}{
		"profile_completion_percentage": score,
		"is_profile_complete":           isComplete,
	})
	if err != nil {
		return candidateapimodels.CompletionView{}, err
	}
	return candidateapimodels.CompletionView{
		Score:      score,
		IsComplete: isComplete,
	}, nil
}

func (i impl) AddProject(userID string, data candidateapimodels.ProjectData) (string, error) {
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", ErrProfileNotFound
	}
	id, err := i.projectStore.Create(data.ToModel(userID))
	if err != nil {
		return "", err
	}
	err = i.store.UpdateByUserID(userID, map[string]interface{}{
		"projects_count": profile.ProjectsCount + 1,
	})
	if err != nil {
		return id, errors.Wrap(err, "проект сохранен, но счетчик проектов не обновлен")
	}
	return id, nil
}

func (i impl) UpdateProject(userID, projectID string, data candidateapimodels.ProjectData) error {
	rec, err := i.projectStore.GetByID(projectID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("проект не найден")
	}
	if rec.CandidateID != userID {
		return errors.New("операция недоступна")
	}
	return i.projectStore.Update(projectID, data.UpdateMap())
}

func (i impl) DeleteProject(userID, projectID string) error {
	rec, err := i.projectStore.GetByID(projectID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("проект не найден")
	}
	if rec.CandidateID != userID {
		return errors.New("операция недоступна")
	}
	err = i.projectStore.Delete(projectID)
	if err != nil {
		return err
	}
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return errors.Wrap(err, "проект удален, но счетчик проектов не обновлен")
	}
	if profile == nil {
		return errors.New("проект удален, но счетчик проектов не обновлен: профиль не найден")
	}
	count := profile.ProjectsCount - 1
	if count < 0 {
		count = 0
	}
	err = i.store.UpdateByUserID(userID, map[string]interface{}{
		"projects_count": count,
	})
	if err != nil {
		return errors.Wrap(err, "проект удален, но счетчик проектов не обновлен")
	}
	return nil
}

func (i impl) ListProjects(userID string) ([]dbmodels.CandidateProject, error) {
	return i.projectStore.List(userID)
}

func (i impl) AddAchievement(userID string, data candidateapimodels.AchievementData) (string, error) {
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", ErrProfileNotFound
	}
	id, err := i.achievementStore.Create(data.ToModel(userID))
	if err != nil {
		return "", err
	}
	err = i.store.UpdateByUserID(userID, map[string]interface{}{
		"achievements_count": profile.AchievementsCount + 1,
	})
	if err != nil {
		return id, errors.Wrap(err, "достижение сохранено, но счетчик достижений не обновлен")
	}
	return id, nil
}

func (i impl) DeleteAchievement(userID, achievementID string) error {
	rec, err := i.achievementStore.GetByID(achievementID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("достижение не найдено")
	}
	if rec.CandidateID != userID {
		return errors.New("операция недоступна")
	}
	err = i.achievementStore.Delete(achievementID)
	if err != nil {
		return err
	}
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return errors.Wrap(err, "достижение удалено, но счетчик достижений не обновлен")
	}
	if profile == nil {
		return errors.New("достижение удалено, но счетчик достижений не обновлен: профиль не найден")
	}
	count := profile.AchievementsCount - 1
	if count < 0 {
		count = 0
	}
	err = i.store.UpdateByUserID(userID, map[string]interface{}{
		"achievements_count": count,
	})
	if err != nil {
		return errors.Wrap(err, "достижение удалено, но счетчик достижений не обновлен")
	}
	return nil
}

func (i impl) ListAchievements(userID string) ([]dbmodels.CandidateAchievement, error) {
	return i.achievementStore.List(userID)
}

func (i impl) List() ([]candidateapimodels.ProfileView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListExt() ([]dbmodels.CandidateProfileExt, error) {
	return i.store.List()
}

func (i impl) Search(filter dbmodels.CandidateFilter) ([]candidateapimodels.ProfileView, error) {
	list, err := i.store.ListByFilter(filter)
	if err != nil {
		return nil, err
	}
	if len(filter.Skills) != 0 {
		list = filterBySkills(list, filter.Skills)
	}
	return convertList(list), nil
}

// filterBySkills оставляет профили, у которых есть пересечение навыков с запросом.
// Сравнение нестрогое: подстрока без учета регистра в обе стороны.
func filterBySkills(list []dbmodels.CandidateProfileExt, skills []string) []dbmodels.CandidateProfileExt {
	result := make([]dbmodels.CandidateProfileExt, 0, len(list))
	for _, rec := range list {
		if skillsOverlap(rec.Skills, skills) {
			result = append(result, rec)
		}
	}
	return result
}

func skillsOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if skillMatches(h, w) {
				return true
			}
		}
	}
	return false
}

func skillMatches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func convertList(list []dbmodels.CandidateProfileExt) []candidateapimodels.ProfileView {
	result := make([]candidateapimodels.ProfileView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.ProfileConvertExt(rec))
	}
	return result
}

func (i impl) profileView(userID string) (candidateapimodels.ProfileView, error) {
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return candidateapimodels.ProfileView{}, err
	}
	if profile == nil {
		return candidateapimodels.ProfileView{}, ErrProfileNotFound
	}
	return candidateapimodels.ProfileConvertExt(*profile), nil
}

func applyProfileData(rec *dbmodels.CandidateProfile, data candidateapimodels.ProfileData) {
	if data.Skills != nil {
		rec.Skills = pq.StringArray(data.Skills)
	}
	if data.Experience != nil {
		rec.Experience = *data.Experience
	}
	if data.Education != nil {
		rec.Education = *data.Education
	}
	if data.Location != nil {
		rec.Location = *data.Location
	}
	if data.Summary != nil {
		rec.Summary = *data.Summary
	}
	if data.LinkedinURL != nil {
		rec.LinkedinURL = *data.LinkedinURL
	}
	if data.GithubURL != nil {
		rec.GithubURL = *data.GithubURL
	}
	if data.PortfolioURL != nil {
		rec.PortfolioURL = *data.PortfolioURL
	}
	if data.CurrentJobTitle != nil {
		rec.CurrentJobTitle = *data.CurrentJobTitle
	}
	if data.CurrentCompany != nil {
		rec.CurrentCompany = *data.CurrentCompany
	}
	if data.ExpectedSalary != nil {
		rec.ExpectedSalary = *data.ExpectedSalary
	}
	if data.NoticePeriod != nil {
		rec.NoticePeriod = *data.NoticePeriod
	}
	if data.Availability != nil {
		rec.Availability = *data.Availability
	}
	if data.WorkPreference != nil {
		rec.WorkPreference = *data.WorkPreference
	}
	if data.IsActivelyLooking != nil {
		rec.IsActivelyLooking = *data.IsActivelyLooking
	}
	if data.PreferredLocations != nil {
		rec.PreferredLocations = pq.StringArray(data.PreferredLocations)
	}
	if data.Certifications != nil {
		rec.Certifications = pq.StringArray(data.Certifications)
	}
	if data.Languages != nil {
		rec.Languages = pq.StringArray(data.Languages)
	}
	if data.PreferredSalaryMin != nil {
		rec.PreferredSalaryMin = *data.PreferredSalaryMin
	}
	if data.PreferredSalaryMax != nil {
		rec.PreferredSalaryMax = *data.PreferredSalaryMax
	}
}
