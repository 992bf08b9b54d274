package dbmodels

import (
	"recruit-track-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatusChange(t *testing.T) {
	t.Run(`переход вперед по воронке разрешен`, func(t *testing.T) {
		app := Application{Status: models.ApplicationStatusApplied}
		ok, err := app.IsAllowStatusChange(models.ApplicationStatusScreening)
		require.Nil(t, err)
		require.Equal(t, true, ok)

		app.Status = models.ApplicationStatusScreening
		ok, err = app.IsAllowStatusChange(models.ApplicationStatusInterviewScheduled)
		require.Nil(t, err)
		require.Equal(t, true, ok)

		app.Status = models.ApplicationStatusInterviewScheduled
		ok, err = app.IsAllowStatusChange(models.ApplicationStatusInterviewed)
		require.Nil(t, err)
		require.Equal(t, true, ok)
	})

	t.Run(`переход назад по воронке запрещен`, func(t *testing.T) {
		app := Application{Status: models.ApplicationStatusInterviewed}
		ok, err := app.IsAllowStatusChange(models.ApplicationStatusScreening)
		require.NotNil(t, err)
		require.Equal(t, false, ok)

		app.Status = models.ApplicationStatusScreening
		ok, err = app.IsAllowStatusChange(models.ApplicationStatusApplied)
		require.NotNil(t, err)
		require.Equal(t, false, ok)
	})

	t.Run(`терминальные статусы доступны с любого этапа`, func(t *testing.T) {
		for _, status := range []models.ApplicationStatus{
			models.ApplicationStatusApplied,
			models.ApplicationStatusScreening,
			models.ApplicationStatusInterviewScheduled,
			models.ApplicationStatusInterviewed,
		} {
			app := Application{Status: status}
			ok, err := app.IsAllowStatusChange(models.ApplicationStatusSelected)
			require.Nil(t, err)
			require.Equal(t, true, ok)

			ok, err = app.IsAllowStatusChange(models.ApplicationStatusRejected)
			require.Nil(t, err)
			require.Equal(t, true, ok)
		}
	})

	t.Run(`из терминального статуса выхода нет`, func(t *testing.T) {
		app := Application{Status: models.ApplicationStatusSelected}
		ok, err := app.IsAllowStatusChange(models.ApplicationStatusInterviewed)
		require.NotNil(t, err)
		require.Equal(t, false, ok)

		app.Status = models.ApplicationStatusRejected
		ok, err = app.IsAllowStatusChange(models.ApplicationStatusSelected)
		require.NotNil(t, err)
		require.Equal(t, false, ok)
	})

	t.Run(`повтор текущего статуса не ошибка, но и не переход`, func(t *testing.T) {
		app := Application{Status: models.ApplicationStatusScreening}
		ok, err := app.IsAllowStatusChange(models.ApplicationStatusScreening)
		require.Nil(t, err)
		require.Equal(t, false, ok)
	})

	t.Run(`неизвестный статус отклоняется`, func(t *testing.T) {
		app := Application{Status: models.ApplicationStatusApplied}
		ok, err := app.IsAllowStatusChange(models.ApplicationStatus("on_hold"))
		require.NotNil(t, err)
		require.Equal(t, false, ok)
	})
}
