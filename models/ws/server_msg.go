package wsmodels

const (
	CodeDispatchProgress = "dispatch_progress"
	CodeDispatchDone     = "dispatch_done"
	CodeDeadlineAlert    = "deadline_alert"
)

type ServerMessage struct {
	ToUserID string      `json:"-"`
	Time     string      `json:"time"` // event time
	Code     string      `json:"code"`
	Msg      string      `json:"msg"`
	Data     interface{} `json:"data,omitempty"`
}
