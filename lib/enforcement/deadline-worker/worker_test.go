package deadlineworker

import (
	"context"
	"testing"
	"time"

	enforcementapimodels "childminder-backend/models/api/enforcement"
	wsmodels "childminder-backend/models/ws"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeJob struct {
	expireErr error
	alerted   []enforcementapimodels.CaseView
	alertDays int
}

func (f *fakeJob) ExpireRepresentations(ctx context.Context) (int, error) {
	return 0, f.expireErr
}

func (f *fakeJob) AlertReviewsDue(ctx context.Context, alertDays int) ([]enforcementapimodels.CaseView, error) {
	f.alertDays = alertDays
	return f.alerted, nil
}

type fakePusher struct {
	msgs []wsmodels.ServerMessage
}

func (f *fakePusher) SendMessage(msg wsmodels.ServerMessage) {
	f.msgs = append(f.msgs, msg)
}

func TestHandle(t *testing.T) {
	sup := "sup"
	due := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	job := &fakeJob{
		expireErr: errors.New("db down"),
		alerted: []enforcementapimodels.CaseView{
			{ID: "c1", ReferenceNumber: "suspension/p1/2024", SupervisorID: &sup, Deadline: &due},
			{ID: "c2", ReferenceNumber: "suspension/p2/2024", Deadline: &due},
		},
	}
	pusher := &fakePusher{}
	w := impl{job: job, pusher: pusher, alertDays: 7}

	w.handle(context.Background())

	require.Equal(t, 7, job.alertDays)
	require.Len(t, pusher.msgs, 1)
	require.Equal(t, "sup", pusher.msgs[0].ToUserID)
	require.Equal(t, wsmodels.CodeDeadlineAlert, pusher.msgs[0].Code)
	require.Equal(t, "Suspension suspension/p1/2024 is due for review by 12/03/2024", pusher.msgs[0].Msg)
}
