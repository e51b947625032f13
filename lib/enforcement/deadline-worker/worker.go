package deadlineworker

import (
	"context"
	"fmt"
	"time"

	"childminder-backend/lib/deadline"
	enforcementhandler "childminder-backend/lib/enforcement"
	baseworker "childminder-backend/lib/utils/base-worker"
	connectionhub "childminder-backend/lib/ws/hub/connection-hub"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	wsmodels "childminder-backend/models/ws"
)

// Pusher sends the review alert to the supervising officer's socket.
type Pusher interface {
	SendMessage(msg wsmodels.ServerMessage)
}

// StartWorker runs the statutory deadline checks: expired representations periods
// and suspension reviews coming due.
func StartWorker(ctx context.Context, interval time.Duration, alertDays int) {
	i := &impl{
		BaseImpl:  *baseworker.NewInstance("DeadlineWorker", 10*time.Second, interval),
		job:       enforcementhandler.Instance.(enforcementhandler.DeadlineJob),
		pusher:    connectionhub.Instance,
		alertDays: alertDays,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	job       enforcementhandler.DeadlineJob
	pusher    Pusher
	alertDays int
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	moved, err := i.job.ExpireRepresentations(ctx)
	if err != nil {
		logger.WithError(err).Error("representations expiry check failed")
	} else if moved > 0 {
		logger.WithField("cases", moved).Info("cancellation cases moved to decision pending")
	}

	alerted, err := i.job.AlertReviewsDue(ctx, i.alertDays)
	if err != nil {
		logger.WithError(err).Error("review due check failed")
		return
	}
	for _, c := range alerted {
		i.notify(c)
	}
}

func (i impl) notify(c enforcementapimodels.CaseView) {
	if i.pusher == nil || c.SupervisorID == nil || c.Deadline == nil {
		return
	}
	i.pusher.SendMessage(wsmodels.ServerMessage{
		ToUserID: *c.SupervisorID,
		Time:     time.Now().Format(time.RFC3339),
		Code:     wsmodels.CodeDeadlineAlert,
		Msg:      fmt.Sprintf("Suspension %s is due for review by %s", c.ReferenceNumber, deadline.FormatShortDate(*c.Deadline)),
		Data:     c,
	})
}
