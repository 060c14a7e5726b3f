package job

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "1", Type: task.Type()}, nil
}

type fakeRecorder struct {
	entries []model.ActivityEntry
}

func (f *fakeRecorder) Record(_ context.Context, e model.ActivityEntry) {
	f.entries = append(f.entries, e)
}

type fakeWriter struct {
	mu      sync.Mutex
	entries []model.ActivityEntry
	err     error
}

func (f *fakeWriter) Insert(_ context.Context, e model.ActivityEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
	return f.err
}

func entry() model.ActivityEntry {
	return model.ActivityEntry{
		ActorID:     4,
		ActorRole:   model.RoleAdmin,
		Action:      "Delete Wisata",
		Description: "Hapus wisata ID: 9",
		Timestamp:   time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestQueueAuditSinkEnqueues(t *testing.T) {
	logger := zerolog.Nop()
	q := &fakeEnqueuer{}
	fb := &fakeRecorder{}

	NewQueueAuditSink(q, fb, &logger, nil).Record(context.Background(), entry())

	require.Len(t, q.tasks, 1)
	assert.Equal(t, TaskAuditRecord, q.tasks[0].Type())
	assert.Empty(t, fb.entries)

	var got model.ActivityEntry
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload(), &got))
	assert.Equal(t, entry(), got)
}

func TestQueueAuditSinkFallsBack(t *testing.T) {
	logger := zerolog.Nop()
	fb := &fakeRecorder{}

	NewQueueAuditSink(&fakeEnqueuer{err: errors.New("redis down")}, fb, &logger, nil).
		Record(context.Background(), entry())

	require.Len(t, fb.entries, 1)
	assert.Equal(t, "Delete Wisata", fb.entries[0].Action)
}

func TestHandleAuditRecordTask(t *testing.T) {
	logger := zerolog.Nop()
	w := &fakeWriter{}
	j := &JobService{logger: &logger}
	j.InitHandlers(Handlers{Activities: w})

	task, err := NewAuditTask(entry())
	require.NoError(t, err)
	require.NoError(t, j.handleAuditRecordTask(context.Background(), task))
	require.Len(t, w.entries, 1)

	w.err = errors.New("insert failed")
	assert.Error(t, j.handleAuditRecordTask(context.Background(), task))

	bad := asynq.NewTask(TaskAuditRecord, []byte("{"))
	assert.ErrorIs(t, j.handleAuditRecordTask(context.Background(), bad), asynq.SkipRetry)
}

type fakeWelcome struct {
	to, name string
}

func (f *fakeWelcome) SendWelcomeEmail(to, name string) error {
	f.to, f.name = to, name
	return nil
}

func TestWelcomeFlow(t *testing.T) {
	logger := zerolog.Nop()
	q := &fakeEnqueuer{}
	require.NoError(t, NewWelcomeMailer(q).EnqueueWelcome(context.Background(), "siti@example.com", "Siti"))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, TaskWelcome, q.tasks[0].Type())

	sender := &fakeWelcome{}
	j := &JobService{logger: &logger}
	j.InitHandlers(Handlers{Email: sender})
	require.NoError(t, j.handleWelcomeEmailTask(context.Background(), q.tasks[0]))
	assert.Equal(t, "siti@example.com", sender.to)
	assert.Equal(t, "Siti", sender.name)
}

func TestWelcomeEnqueueError(t *testing.T) {
	err := NewWelcomeMailer(&fakeEnqueuer{err: errors.New("redis down")}).
		EnqueueWelcome(context.Background(), "a@b.id", "A")
	assert.Error(t, err)
}

type fakeExpirer struct {
	today string
	n     int64
	err   error
}

func (f *fakeExpirer) ExpireBefore(_ context.Context, today string) (int64, error) {
	f.today = today
	return f.n, f.err
}

func TestSchedulerExpirePromos(t *testing.T) {
	logger := zerolog.Nop()
	exp := &fakeExpirer{n: 3}

	s, err := NewScheduler(&logger, "@daily", exp)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2026, 8, 16, 20, 0, 0, 0, time.UTC) }

	s.ExpirePromos()
	assert.Equal(t, "2026-08-17", exp.today)

	exp.err = errors.New("db down")
	assert.NotPanics(t, s.ExpirePromos)
}

func TestSchedulerInvalidSpec(t *testing.T) {
	logger := zerolog.Nop()
	_, err := NewScheduler(&logger, "every tuesday-ish", &fakeExpirer{})
	assert.Error(t, err)
}

func TestSchedulerStartStop(t *testing.T) {
	logger := zerolog.Nop()
	s, err := NewScheduler(&logger, "", &fakeExpirer{})
	require.NoError(t, err)
	s.Start()
	s.Stop()
}
