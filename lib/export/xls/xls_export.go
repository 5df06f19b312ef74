package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "career-coach-backend/models/db"
)

type Provider interface {
	ExportAssessmentList(list []dbmodels.Assessment) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var assessmentHeaders = []string{"Дата", "Пользователь", "Тип оценки", "Тариф", "Балл", "Уровень соответствия"}

func (i impl) ExportAssessmentList(list []dbmodels.Assessment) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, assessmentHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeAssessmentData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Оценки")
	return f.WriteToBuffer()
}

func writeAssessmentData(f *excelize.File, sheet string, list []dbmodels.Assessment, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(assessmentHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Дата"
		col := 1
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}

		// "Пользователь"
		col++
		if err := writeColumn(f, sheet, col, row, item.UserID); err != nil {
			return row, err
		}

		// "Тип оценки"
		col++
		if err := writeColumn(f, sheet, col, row, item.Kind.ToHuman()); err != nil {
			return row, err
		}

		// "Тариф"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Tier)); err != nil {
			return row, err
		}

		// "Балл"
		col++
		if err := writeColumn(f, sheet, col, row, item.Score); err != nil {
			return row, err
		}

		// "Уровень соответствия"
		col++
		if err := writeColumn(f, sheet, col, row, item.MatchLevel); err != nil {
			return row, err
		}
	}
	return row, nil
}
