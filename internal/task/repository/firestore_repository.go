package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mytask-backend/internal/task/domain"
)

const tasksCollection = "tasks"

// firestoreTaskRepository implements TaskRepository on Cloud Firestore
type firestoreTaskRepository struct {
	client *firestore.Client
}

// NewFirestoreTaskRepository creates a new Firestore-based TaskRepository
func NewFirestoreTaskRepository(client *firestore.Client) TaskRepository {
	return &firestoreTaskRepository{client: client}
}

func (r *firestoreTaskRepository) tasksRef(userID, boardID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("boards").Doc(boardID).Collection(tasksCollection)
}

func (r *firestoreTaskRepository) archivedRef(userID, boardID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("boards").Doc(boardID).Collection("archived")
}

func (r *firestoreTaskRepository) Create(ctx context.Context, userID, boardID string, task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.BoardID = boardID
	task.UserID = userID
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	_, err := r.tasksRef(userID, boardID).Doc(task.ID).Create(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *firestoreTaskRepository) FindByID(ctx context.Context, userID, boardID, taskID string) (*domain.Task, error) {
	doc, err := r.tasksRef(userID, boardID).Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return taskFromDoc(doc)
}

func (r *firestoreTaskRepository) FindByBoard(ctx context.Context, userID, boardID string) ([]*domain.Task, error) {
	return collectTasks(r.tasksRef(userID, boardID).Documents(ctx))
}

func (r *firestoreTaskRepository) Update(ctx context.Context, userID, boardID string, task *domain.Task) error {
	task.UpdatedAt = time.Now()
	_, err := r.tasksRef(userID, boardID).Doc(task.ID).Set(ctx, task)
	return err
}

func (r *firestoreTaskRepository) Delete(ctx context.Context, userID, boardID, taskID string) error {
	_, err := r.tasksRef(userID, boardID).Doc(taskID).Delete(ctx)
	return err
}

func (r *firestoreTaskRepository) Archive(ctx context.Context, userID, boardID, taskID string) error {
	src := r.tasksRef(userID, boardID).Doc(taskID)
	dst := r.archivedRef(userID, boardID).Doc(taskID)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(src)
		if err != nil {
			return fmt.Errorf("task not found: %w", err)
		}
		if err := tx.Create(dst, doc.Data()); err != nil {
			return err
		}
		return tx.Delete(src)
	})
}

func (r *firestoreTaskRepository) FindArchived(ctx context.Context, userID, boardID string) ([]*domain.Task, error) {
	return collectTasks(r.archivedRef(userID, boardID).Documents(ctx))
}

func (r *firestoreTaskRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Task, error) {
	// One collection-group query across every user's boards; the engine never
	// enumerates users.
	iter := r.client.CollectionGroup(tasksCollection).
		Where("dueDate", ">", from).
		Where("dueDate", "<=", to).
		Documents(ctx)
	return collectTasks(iter)
}

func (r *firestoreTaskRepository) ListAll(ctx context.Context) ([]*domain.Task, error) {
	return collectTasks(r.client.CollectionGroup(tasksCollection).Documents(ctx))
}

func (r *firestoreTaskRepository) MarkReminderSent(ctx context.Context, path string) error {
	_, err := r.client.Doc(path).Update(ctx, []firestore.Update{
		{Path: "emailReminderSent", Value: true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent for %s: %w", path, err)
	}
	return nil
}

func (r *firestoreTaskRepository) CountByStatus(ctx context.Context, userID string) (map[domain.TaskStatus]int, error) {
	iter := r.client.CollectionGroup(tasksCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	tasks, err := collectTasks(iter)
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.TaskStatus]int)
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts, nil
}

func collectTasks(iter *firestore.DocumentIterator) ([]*domain.Task, error) {
	defer iter.Stop()
	var tasks []*domain.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		task, err := taskFromDoc(doc)
		if err != nil {
			logrus.WithField("path", doc.Ref.Path).WithError(err).Warn("skipping undecodable task document")
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// taskFromDoc decodes a task document by hand rather than with DataTo so that
// legacy documents whose dueDate was written as a string still load. An
// unparseable dueDate is reported to the caller as an error.
func taskFromDoc(doc *firestore.DocumentSnapshot) (*domain.Task, error) {
	data := doc.Data()

	task := &domain.Task{
		ID:                asString(data["id"]),
		BoardID:           asString(data["boardId"]),
		UserID:            asString(data["userId"]),
		Title:             asString(data["title"]),
		Description:       asString(data["description"]),
		Status:            domain.TaskStatus(asString(data["status"])),
		Priority:          domain.Priority(asString(data["priority"])),
		UserEmail:         asString(data["userEmail"]),
		EmailReminderSent: asBool(data["emailReminderSent"]),
		Path:              RelativePath(doc.Ref),
	}
	if task.ID == "" {
		task.ID = doc.Ref.ID
	}

	if raw, ok := data["dueDate"]; ok && raw != nil {
		due, err := asTime(raw)
		if err != nil {
			return nil, fmt.Errorf("dueDate: %w", err)
		}
		task.DueDate = &due
	}
	if created, err := asTime(data["createdAt"]); err == nil {
		task.CreatedAt = created
	}
	if updated, err := asTime(data["updatedAt"]); err == nil {
		task.UpdatedAt = updated
	}

	return task, nil
}

// RelativePath strips the "projects/.../documents/" prefix from a document
// reference, leaving the path the rest of the app addresses documents by.
func RelativePath(ref *firestore.DocumentRef) string {
	const marker = "/documents/"
	if i := strings.Index(ref.Path, marker); i >= 0 {
		return ref.Path[i+len(marker):]
	}
	return ref.Path
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02",
}

func asTime(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable timestamp %q", t)
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}
