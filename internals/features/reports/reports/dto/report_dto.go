package dto

import (
	"encoding/json"
	"strings"

	"github.com/bytedance/sonic"

	"halaqat_backend/internals/features/reports/reports/model"
	"halaqat_backend/internals/features/reports/reports/service"
	helper "halaqat_backend/internals/helpers"
)

// GenerateReportRequest is the body of POST /generate_ai_report. HalaqaID
// may be a number, a numeric string, "all" or null.
type GenerateReportRequest struct {
	ReportType string          `json:"report_type"`
	TimePeriod string          `json:"time_period"`
	HalaqaID   json.RawMessage `json:"halaqa_id"`
}

func (r GenerateReportRequest) ToRequest() (service.Request, error) {
	raw := strings.TrimSpace(string(r.HalaqaID))
	if raw == "null" {
		raw = ""
	}
	id, err := helper.OptionalID("halaqa_id", strings.Trim(raw, `"`))
	if err != nil {
		return service.Request{}, err
	}
	return service.Request{
		Kind:       helper.OrDefault(r.ReportType, service.KindWeekly),
		TimePeriod: helper.OrDefault(r.TimePeriod, "current_week"),
		HalaqaID:   id,
	}, nil
}

// ExportReportRequest is the body of POST /export_report_pdf: a report
// previously returned by /generate_ai_report.
type ExportReportRequest struct {
	Report json.RawMessage `json:"report"`
}

// Decode returns ok=false when no report, or an empty one, was sent.
func (r ExportReportRequest) Decode() (model.Report, bool, error) {
	raw := strings.TrimSpace(string(r.Report))
	if raw == "" || raw == "null" {
		return model.Report{}, false, nil
	}
	var probe map[string]interface{}
	if err := sonic.UnmarshalString(raw, &probe); err != nil {
		return model.Report{}, false, err
	}
	if len(probe) == 0 {
		return model.Report{}, false, nil
	}
	var rep model.Report
	if err := sonic.UnmarshalString(raw, &rep); err != nil {
		return model.Report{}, false, err
	}
	return rep, true, nil
}
