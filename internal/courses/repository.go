package courses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/tungtase04539/ai-news/internal/supabase"
)

var ErrNotFound = errors.New("course not found")

// Repository is the persistence strategy, picked once at startup: the
// Supabase-backed one when the backend is configured, the in-memory one in
// demo mode. Call sites never branch on configuration state.
type Repository interface {
	List(ctx context.Context) ([]Course, error)
	Get(ctx context.Context, id string) (Course, error)
	Create(ctx context.Context, course Course) (Course, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (Course, error)
	Delete(ctx context.Context, id string) error
}

type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(client *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: client}
}

func (r *SupabaseRepository) List(ctx context.Context) ([]Course, error) {
	raw, err := r.client.Select(ctx, table)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	items := make([]Course, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToCourse(row))
	}
	return items, nil
}

func (r *SupabaseRepository) Get(ctx context.Context, id string) (Course, error) {
	raw, err := r.client.Get(ctx, table, id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return Course{}, ErrNotFound
		}
		return Course{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Course{}, fmt.Errorf("decode course: %w", err)
	}
	return rowToCourse(row), nil
}

func (r *SupabaseRepository) Create(ctx context.Context, course Course) (Course, error) {
	raw, err := r.client.Insert(ctx, table, courseToRow(course))
	if err != nil {
		return Course{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Course{}, fmt.Errorf("decode created course: %w", err)
	}
	return rowToCourse(row), nil
}

func (r *SupabaseRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (Course, error) {
	set, err := translatePatch(patch)
	if err != nil {
		return Course{}, err
	}
	raw, err := r.client.Patch(ctx, table, id, set)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return Course{}, ErrNotFound
		}
		return Course{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Course{}, fmt.Errorf("decode updated course: %w", err)
	}
	return rowToCourse(row), nil
}

func (r *SupabaseRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, table, id); err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// translatePatch maps app field names to persisted columns. A field with no
// mapping is a programming error and fails loudly instead of dropping data.
func translatePatch(patch map[string]interface{}) (map[string]interface{}, error) {
	set := make(map[string]interface{}, len(patch))
	for field, value := range patch {
		column, ok := columns[field]
		if !ok {
			return nil, fmt.Errorf("course field %q has no column mapping", field)
		}
		set[column] = value
	}
	return set, nil
}

// MemoryRepository backs demo mode. Ids come from the millisecond clock
// with a monotonic guard, so two creates inside the same millisecond still
// get distinct ids. Newest entries sit at the front.
type MemoryRepository struct {
	mu     sync.Mutex
	items  []Course
	lastID int64
}

func NewMemoryRepository(seed []Course) *MemoryRepository {
	items := make([]Course, len(seed))
	copy(items, seed)
	return &MemoryRepository{items: items}
}

func (r *MemoryRepository) nextID() string {
	now := time.Now().UnixMilli()
	if now <= r.lastID {
		now = r.lastID + 1
	}
	r.lastID = now
	return strconv.FormatInt(now, 10)
}

func (r *MemoryRepository) List(ctx context.Context) ([]Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Course, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, course Course) (Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	course.ID = r.nextID()
	r.items = append([]Course{course}, r.items...)
	return course, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if err := applyPatch(&r.items[i], patch); err != nil {
			return Course{}, err
		}
		return r.items[i], nil
	}
	return Course{}, ErrNotFound
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func applyPatch(c *Course, patch map[string]interface{}) error {
	for field, value := range patch {
		var err error
		switch field {
		case "title":
			err = patchString(&c.Title, field, value)
		case "instructor":
			err = patchString(&c.Instructor, field, value)
		case "thumbnail":
			err = patchString(&c.Thumbnail, field, value)
		case "duration":
			err = patchString(&c.Duration, field, value)
		case "lessonCount":
			err = patchInt(&c.LessonCount, field, value)
		case "category":
			err = patchString(&c.Category, field, value)
		case "description":
			err = patchString(&c.Description, field, value)
		case "isVip":
			err = patchBool(&c.IsVip, field, value)
		case "price":
			err = patchInt(&c.Price, field, value)
		case "students":
			err = patchInt(&c.Students, field, value)
		case "rating":
			err = patchFloat(&c.Rating, field, value)
		default:
			return fmt.Errorf("course field %q has no column mapping", field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func patchString(dst *string, field string, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("course field %q has unexpected type %T", field, value)
	}
	*dst = s
	return nil
}

func patchInt(dst *int, field string, value interface{}) error {
	n, ok := value.(int)
	if !ok {
		return fmt.Errorf("course field %q has unexpected type %T", field, value)
	}
	*dst = n
	return nil
}

func patchBool(dst *bool, field string, value interface{}) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("course field %q has unexpected type %T", field, value)
	}
	*dst = b
	return nil
}

func patchFloat(dst *float64, field string, value interface{}) error {
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("course field %q has unexpected type %T", field, value)
	}
	*dst = f
	return nil
}
