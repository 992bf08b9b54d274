package queryhandler

import (
	"fmt"
	"recruit-track-backend/db"
	notificationhandler "recruit-track-backend/lib/notification"
	queryresponsestore "recruit-track-backend/lib/query/response-store"
	querystore "recruit-track-backend/lib/query/store"
	"recruit-track-backend/models"
	queryapimodels "recruit-track-backend/models/api/query"
	dbmodels "recruit-track-backend/models/db"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrQueryNotFound    = errors.New("обращение не найдено")
	ErrResponseNotFound = errors.New("ответ не найден")
)

type Provider interface {
	Create(fromUserID string, data queryapimodels.QueryData) (id string, err error)
	Respond(responderID, queryID string, req queryapimodels.RespondRequest) (id string, err error)
	UpdateStatus(queryID string, status models.QueryStatus) error
	ListForUser(userID string) (list []queryapimodels.QueryView, err error)
	MarkResponseAsRead(userID, responseID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         querystore.NewInstance(db.DB),
		responseStore: queryresponsestore.NewInstance(db.DB),
		notifier:      notificationhandler.Instance,
	}
}

type impl struct {
	store         querystore.Provider
	responseStore queryresponsestore.Provider
	notifier      notificationhandler.Provider
}

func (i impl) Create(fromUserID string, data queryapimodels.QueryData) (string, error) {
	logger := log.WithField("from_user_id", fromUserID)
	rec := dbmodels.Query{
		FromUserID: fromUserID,
		ToUserID:   data.ToUserID,
		Subject:    data.Subject,
		Message:    data.Message,
		Priority:   data.Priority,
		Category:   data.Category,
		Status:     models.QueryStatusOpen,
	}
	if data.JobID != "" {
		rec.JobID = &data.JobID
	}
	if data.CandidateID != "" {
		rec.CandidateID = &data.CandidateID
	}
	if data.InterviewID != "" {
		rec.InterviewID = &data.InterviewID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания обращения")
		return "", err
	}
	err = i.notifier.Notify(
		data.ToUserID,
		"Новое обращение",
		fmt.Sprintf("Получено обращение: %s", data.Subject),
		models.NotificationTypeQueryReceived,
		id,
	)
	if err != nil {
		logger.WithError(err).Error("обращение создано, но уведомление не отправлено")
		return id, errors.Wrap(err, "обращение создано, но уведомление не отправлено")
	}
	return id, nil
}

func (i impl) Respond(responderID, queryID string, req queryapimodels.RespondRequest) (string, error) {
	logger := log.WithField("query_id", queryID)
	query, err := i.store.GetByID(queryID)
	if err != nil {
		return "", err
	}
	if query == nil {
		return "", ErrQueryNotFound
	}
	id, err := i.responseStore.Create(dbmodels.QueryResponse{
		QueryID:     queryID,
		ResponderID: responderID,
		Message:     req.Message,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения ответа")
		return "", err
	}
	// ответ всегда переводит обращение в работу, в тч решенное открывается заново
	err = i.store.Update(queryID, map[string]interface{}{
		"status": models.QueryStatusInProgress,
	})
	if err != nil {
		return id, errors.Wrap(err, "ответ сохранен, но статус обращения не обновлен")
	}
	err = i.notifier.Notify(
		query.FromUserID,
		"Получен ответ",
		fmt.Sprintf("Ответ на обращение: %s", query.Subject),
		models.NotificationTypeQueryResponded,
		queryID,
	)
	if err != nil {
		logger.WithError(err).Error("ответ сохранен, но уведомление не отправлено")
		return id, errors.Wrap(err, "ответ сохранен, но уведомление не отправлено")
	}
	return id, nil
}

func (i impl) UpdateStatus(queryID string, status models.QueryStatus) error {
	query, err := i.store.GetByID(queryID)
	if err != nil {
		return err
	}
	if query == nil {
		return ErrQueryNotFound
	}
	return i.store.Update(queryID, map[string]interface{}{"status": status})
}

func (i impl) ListForUser(userID string) ([]queryapimodels.QueryView, error) {
	list, err := i.store.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(list)
	result := make([]queryapimodels.QueryView, 0, len(list))
	for _, rec := range list {
		responses, err := i.responseStore.ListByQuery(rec.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, queryapimodels.QueryConvert(rec, userID, responses))
	}
	return result, nil
}

func (i impl) MarkResponseAsRead(userID, responseID string) error {
	response, err := i.responseStore.GetByID(responseID)
	if err != nil {
		return err
	}
	if response == nil {
		return ErrResponseNotFound
	}
	query, err := i.store.GetByID(response.QueryID)
	if err != nil {
		return err
	}
	if query == nil {
		return ErrQueryNotFound
	}
	if query.FromUserID != userID && query.ToUserID != userID {
		return errors.New("операция недоступна")
	}
	return i.responseStore.Update(responseID, map[string]interface{}{"is_read": true})
}

// SortNewestFirst сортирует обращения от новых к старым
func SortNewestFirst(list []dbmodels.Query) {
	sort.SliceStable(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
}
