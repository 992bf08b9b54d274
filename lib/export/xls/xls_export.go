package xlsexport

import (
	"bytes"
	"fmt"
	dbmodels "recruit-track-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.CandidateProfileExt) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"ФИО", "Контакты", "Навыки", "Опыт (лет)", "Образование", "Город", "Текущая должность", "Формат работы", "В активном поиске", "Заполненность профиля"}

func (i impl) ExportCandidateList(list []dbmodels.CandidateProfileExt) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.CandidateProfileExt, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%s %s", item.FirstName, item.LastName)); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.PhoneNumber, item.Email)); err != nil {
			return row, err
		}

		// "Навыки"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Skills, ", ")); err != nil {
			return row, err
		}

		// "Опыт (лет)"
		col++
		if err := writeColumn(f, sheet, col, row, item.Experience); err != nil {
			return row, err
		}

		// "Образование"
		col++
		if err := writeColumn(f, sheet, col, row, item.Education); err != nil {
			return row, err
		}

		// "Город"
		col++
		if err := writeColumn(f, sheet, col, row, item.Location); err != nil {
			return row, err
		}

		// "Текущая должность"
		col++
		if err := writeColumn(f, sheet, col, row, item.CurrentJobTitle); err != nil {
			return row, err
		}

		// "Формат работы"
		col++
		if err := writeColumn(f, sheet, col, row, item.WorkPreference); err != nil {
			return row, err
		}

		// "В активном поиске"
		col++
		value := "Нет"
		if item.IsActivelyLooking {
			value = "Да"
		}
		if err := writeColumn(f, sheet, col, row, value); err != nil {
			return row, err
		}

		// "Заполненность профиля"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%d%%", item.ProfileCompletionPercentage)); err != nil {
			return row, err
		}
	}
	return row, nil
}
