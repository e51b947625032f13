// Package notice renders the plain-text preview of every enforcement notice.
package notice

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	Suspension       = "suspension"
	Warning          = "warning"
	Cancellation     = "cancellation"
	ReviewExtend     = "review_extend"
	ReviewLift       = "review_lift"
	DecisionCancel   = "decision_cancel"
	DecisionWithdraw = "decision_withdraw"
)

var titles = map[string]string{
	Suspension:       "Notice of suspension",
	Warning:          "Warning notice",
	Cancellation:     "Notice of intention to cancel",
	ReviewExtend:     "Notice of extension of suspension",
	ReviewLift:       "Notice of lifting of suspension",
	DecisionCancel:   "Notice of decision to cancel",
	DecisionWithdraw: "Notice of withdrawal",
}

var templates = template.Must(
	template.New("notice").
		Funcs(template.FuncMap{"upper": strings.ToUpper}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

// Data is everything a notice may print, templates pick what they need.
// Dates holds formatted key dates by name.
type Data struct {
	Provider            string
	Address             string
	Reference           string
	IssuedOn            string
	Supervisor          string
	Concern             string
	RiskDetail          string
	RiskCategories      []string
	NoticeType          string
	BreachDetails       string
	RequiredActions     string
	MonitoringMethod    string
	Grounds             []string
	EvidenceSummary     string
	InvestigationStatus string
	LiftConditions      string
	Representations     string
	Dates               map[string]string
}

func Title(name string) string {
	return titles[name]
}

func Render(name string, data Data) (string, error) {
	if _, ok := titles[name]; !ok {
		return "", errors.Errorf("unknown notice: %s", name)
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return "", errors.Wrapf(err, "render notice %s", name)
	}
	return strings.TrimSpace(buf.String()), nil
}
