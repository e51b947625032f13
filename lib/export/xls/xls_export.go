package xlsexport

import (
	"bytes"
	"strings"
	"time"

	"childminder-backend/lib/deadline"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCaseRegister(list []enforcementapimodels.CaseView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const registerSheet = "Case register"

var caseColumns = []column{
	{"Reference", 24},
	{"Provider", 28},
	{"Type", 14},
	{"Status", 22},
	{"Risk level", 12},
	{"Concern", 40},
	{"Risk categories", 30},
	{"Date opened", 14},
	{"Deadline", 14},
	{"Date closed", 14},
	{"Supervisor", 24},
	{"Opened by", 24},
}

func (i impl) ExportCaseRegister(list []enforcementapimodels.CaseView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx close failed")
		}
	}()
	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		return nil, err
	}
	row, err := writeHeader(f, registerSheet, 0, caseColumns)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header failed")
	}
	if len(list) != 0 {
		if err = writeCaseData(f, registerSheet, list, row); err != nil {
			return nil, errors.Wrap(err, "xlsx case rows failed")
		}
	}
	return f.WriteToBuffer()
}

func writeCaseData(f *excelize.File, sheet string, list []enforcementapimodels.CaseView, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(caseColumns), row+len(list)); err != nil {
		return err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.ReferenceNumber,
			item.EmployeeName,
			item.TypeName,
			item.StatusName,
			string(item.RiskLevel),
			item.Concern,
			strings.Join(item.RiskCategories, ", "),
			shortDate(&item.DateCreated),
			shortDate(item.Deadline),
			shortDate(item.DateClosed),
			item.SupervisorName,
			item.CreatedBy,
		}
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func shortDate(d *time.Time) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return deadline.FormatShortDate(*d)
}
