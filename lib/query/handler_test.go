package queryhandler

import (
	"recruit-track-backend/models"
	notificationapimodels "recruit-track-backend/models/api/notification"
	queryapimodels "recruit-track-backend/models/api/query"
	dbmodels "recruit-track-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeQueryStore struct {
	query   *dbmodels.Query
	list    []dbmodels.Query
	created []dbmodels.Query
	updates map[string]map[string]interface{}
}

func newFakeQueryStore(query *dbmodels.Query) *fakeQueryStore {
	return &fakeQueryStore{query: query, updates: map[string]map[string]interface{}{}}
}

func (f *fakeQueryStore) Create(rec dbmodels.Query) (string, error) {
	f.created = append(f.created, rec)
	return "query-id", nil
}

func (f *fakeQueryStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeQueryStore) GetByID(id string) (*dbmodels.Query, error) { return f.query, nil }

func (f *fakeQueryStore) ListForUser(userID string) ([]dbmodels.Query, error) {
	return f.list, nil
}

type fakeResponseStore struct {
	response *dbmodels.QueryResponse
	byQuery  map[string][]dbmodels.QueryResponse
	created  []dbmodels.QueryResponse
	updates  map[string]map[string]interface{}
}

func newFakeResponseStore() *fakeResponseStore {
	return &fakeResponseStore{
		byQuery: map[string][]dbmodels.QueryResponse{},
		updates: map[string]map[string]interface{}{},
	}
}

func (f *fakeResponseStore) Create(rec dbmodels.QueryResponse) (string, error) {
	f.created = append(f.created, rec)
	return "response-id", nil
}

func (f *fakeResponseStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeResponseStore) GetByID(id string) (*dbmodels.QueryResponse, error) {
	return f.response, nil
}

func (f *fakeResponseStore) ListByQuery(queryID string) ([]dbmodels.QueryResponse, error) {
	return f.byQuery[queryID], nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) Notify(userID, title, message string, nType models.NotificationType, relatedID string) error {
	f.sent = append(f.sent, userID)
	return nil
}

func (f *fakeNotifier) ListForUser(userID string) ([]notificationapimodels.NotificationView, error) {
	return nil, nil
}

func (f *fakeNotifier) UnreadCount(userID string) (int64, error) { return 0, nil }

func (f *fakeNotifier) MarkAsRead(userID, notificationID string) error { return nil }

func TestQueryCreate(t *testing.T) {
	data := queryapimodels.QueryData{
		ToUserID: "hr-id",
		Subject:  "Вопрос по вакансии",
		Message:  "Когда ждать обратную связь?",
		Priority: models.QueryPriorityMedium,
		Category: models.QueryCategoryGeneral,
	}

	t.Run(`обращение создается открытым, получатель уведомляется`, func(t *testing.T) {
		store := newFakeQueryStore(nil)
		notifier := &fakeNotifier{}
		handler := impl{store: store, responseStore: newFakeResponseStore(), notifier: notifier}
		id, err := handler.Create("candidate-id", data)
		require.Nil(t, err)
		require.Equal(t, "query-id", id)
		rec := store.created[0]
		require.Equal(t, models.QueryStatusOpen, rec.Status)
		require.Equal(t, "candidate-id", rec.FromUserID)
		require.Nil(t, rec.JobID)
		require.Equal(t, []string{"hr-id"}, notifier.sent)
	})

	t.Run(`связанные сущности сохраняются по ссылке`, func(t *testing.T) {
		store := newFakeQueryStore(nil)
		handler := impl{store: store, responseStore: newFakeResponseStore(), notifier: &fakeNotifier{}}
		withJob := data
		withJob.JobID = "job-id"
		_, err := handler.Create("candidate-id", withJob)
		require.Nil(t, err)
		require.NotNil(t, store.created[0].JobID)
		require.Equal(t, "job-id", *store.created[0].JobID)
	})
}

func TestQueryRespond(t *testing.T) {
	newQuery := func(status models.QueryStatus) *dbmodels.Query {
		rec := &dbmodels.Query{
			FromUserID: "candidate-id",
			ToUserID:   "hr-id",
			Subject:    "Вопрос по вакансии",
			Status:     status,
		}
		rec.ID = "query-id"
		return rec
	}

	t.Run(`ответ переводит обращение в работу`, func(t *testing.T) {
		store := newFakeQueryStore(newQuery(models.QueryStatusOpen))
		responses := newFakeResponseStore()
		notifier := &fakeNotifier{}
		handler := impl{store: store, responseStore: responses, notifier: notifier}
		id, err := handler.Respond("hr-id", "query-id", queryapimodels.RespondRequest{Message: "Ответим завтра"})
		require.Nil(t, err)
		require.Equal(t, "response-id", id)
		require.Equal(t, models.QueryStatusInProgress, store.updates["query-id"]["status"])
		// автор обращения уведомляется об ответе
		require.Equal(t, []string{"candidate-id"}, notifier.sent)
	})

	t.Run(`решенное обращение открывается заново`, func(t *testing.T) {
		store := newFakeQueryStore(newQuery(models.QueryStatusResolved))
		handler := impl{store: store, responseStore: newFakeResponseStore(), notifier: &fakeNotifier{}}
		_, err := handler.Respond("hr-id", "query-id", queryapimodels.RespondRequest{Message: "Дополнение"})
		require.Nil(t, err)
		require.Equal(t, models.QueryStatusInProgress, store.updates["query-id"]["status"])
	})

	t.Run(`неизвестное обращение отклоняется`, func(t *testing.T) {
		handler := impl{store: newFakeQueryStore(nil), responseStore: newFakeResponseStore(), notifier: &fakeNotifier{}}
		_, err := handler.Respond("hr-id", "missing", queryapimodels.RespondRequest{Message: "Ответ"})
		require.Equal(t, ErrQueryNotFound, err)
	})
}

func TestQueryListForUser(t *testing.T) {
	queryAt := func(id string, from string, createdAt time.Time) dbmodels.Query {
		rec := dbmodels.Query{FromUserID: from, ToUserID: "hr-id", Status: models.QueryStatusOpen}
		rec.ID = id
		rec.CreatedAt = createdAt
		return rec
	}
	now := time.Now()

	t.Run(`список отсортирован от новых к старым`, func(t *testing.T) {
		store := newFakeQueryStore(nil)
		store.list = []dbmodels.Query{
			queryAt("old", "candidate-id", now.Add(-2*time.Hour)),
			queryAt("new", "candidate-id", now),
			queryAt("middle", "candidate-id", now.Add(-time.Hour)),
		}
		handler := impl{store: store, responseStore: newFakeResponseStore(), notifier: &fakeNotifier{}}
		list, err := handler.ListForUser("candidate-id")
		require.Nil(t, err)
		require.Equal(t, 3, len(list))
		require.Equal(t, "new", list[0].ID)
		require.Equal(t, "middle", list[1].ID)
		require.Equal(t, "old", list[2].ID)
	})

	t.Run(`признак владельца выставляется для автора`, func(t *testing.T) {
		store := newFakeQueryStore(nil)
		store.list = []dbmodels.Query{queryAt("query-id", "candidate-id", now)}
		responses := newFakeResponseStore()
		responses.byQuery["query-id"] = []dbmodels.QueryResponse{{Message: "Ответ"}}
		handler := impl{store: store, responseStore: responses, notifier: &fakeNotifier{}}

		list, err := handler.ListForUser("candidate-id")
		require.Nil(t, err)
		require.Equal(t, true, list[0].IsOwner)
		require.Equal(t, 1, len(list[0].Responses))

		list, err = handler.ListForUser("hr-id")
		require.Nil(t, err)
		require.Equal(t, false, list[0].IsOwner)
	})
}

func TestMarkResponseAsRead(t *testing.T) {
	query := &dbmodels.Query{FromUserID: "candidate-id", ToUserID: "hr-id"}
	query.ID = "query-id"
	response := &dbmodels.QueryResponse{QueryID: "query-id", ResponderID: "hr-id"}
	response.ID = "response-id"

	t.Run(`участник обращения отмечает ответ прочитанным`, func(t *testing.T) {
		responses := newFakeResponseStore()
		responses.response = response
		handler := impl{store: newFakeQueryStore(query), responseStore: responses, notifier: &fakeNotifier{}}
		err := handler.MarkResponseAsRead("candidate-id", "response-id")
		require.Nil(t, err)
		require.Equal(t, true, responses.updates["response-id"]["is_read"])
	})

	t.Run(`посторонний пользователь получает отказ`, func(t *testing.T) {
		responses := newFakeResponseStore()
		responses.response = response
		handler := impl{store: newFakeQueryStore(query), responseStore: responses, notifier: &fakeNotifier{}}
		err := handler.MarkResponseAsRead("stranger-id", "response-id")
		require.NotNil(t, err)
		require.Equal(t, 0, len(responses.updates))
	})
}
