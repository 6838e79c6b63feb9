package reminder

import (
	"context"
	"sync"
	"time"

	notifdomain "mytask-backend/internal/notification/domain"
	taskdomain "mytask-backend/internal/task/domain"
	"mytask-backend/pkg/mailer"
)

type fakeTaskStore struct {
	mu      sync.Mutex
	tasks   []*taskdomain.Task
	scanErr error
	listErr error
	markErr map[string]error
	marked  []string
}

func (f *fakeTaskStore) FindDueBetween(ctx context.Context, from, to time.Time) ([]*taskdomain.Task, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*taskdomain.Task
	for _, t := range f.tasks {
		if t.DueDate == nil {
			continue
		}
		if t.DueDate.After(from) && !t.DueDate.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) ListAll(ctx context.Context) ([]*taskdomain.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*taskdomain.Task(nil), f.tasks...), nil
}

func (f *fakeTaskStore) MarkReminderSent(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.markErr[path]; err != nil {
		return err
	}
	f.marked = append(f.marked, path)
	for _, t := range f.tasks {
		if t.Path == path {
			t.EmailReminderSent = true
		}
	}
	return nil
}

type fakeNotificationStore struct {
	mu      sync.Mutex
	created map[string][]*notifdomain.Notification
	err     error
}

func (f *fakeNotificationStore) Create(ctx context.Context, userID string, n *notifdomain.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.created == nil {
		f.created = map[string][]*notifdomain.Notification{}
	}
	f.created[userID] = append(f.created[userID], n)
	return nil
}

func (f *fakeNotificationStore) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, list := range f.created {
		n += len(list)
	}
	return n
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   []mailer.Message
	failTo map[string]error
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	if err := f.failTo[msg.To]; err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}
