package tools

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

var ErrNotFound = errors.New("tool not found")

// Repository is the persistence strategy for tools, selected once at
// startup (remote when the backend is configured, in-memory in demo mode).
type Repository interface {
	List(ctx context.Context) ([]Tool, error)
	Get(ctx context.Context, id string) (Tool, error)
	Create(ctx context.Context, tool Tool) (Tool, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (Tool, error)
	Delete(ctx context.Context, id string) error
}

type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(client *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: client}
}

func (r *SupabaseRepository) List(ctx context.Context) ([]Tool, error) {
	raw, err := r.client.Select(ctx, table)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode tools: %w", err)
	}
	items := make([]Tool, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToTool(row))
	}
	return items, nil
}

func (r *SupabaseRepository) Get(ctx context.Context, id string) (Tool, error) {
	raw, err := r.client.Get(ctx, table, id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return Tool{}, ErrNotFound
		}
		return Tool{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Tool{}, fmt.Errorf("decode tool: %w", err)
	}
	return rowToTool(row), nil
}

func (r *SupabaseRepository) Create(ctx context.Context, tool Tool) (Tool, error) {
	raw, err := r.client.Insert(ctx, table, toolToRow(tool))
	if err != nil {
		return Tool{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Tool{}, fmt.Errorf("decode created tool: %w", err)
	}
	return rowToTool(row), nil
}

func (r *SupabaseRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (Tool, error) {
	set := make(map[string]interface{}, len(patch))
	for field, value := range patch {
		column, ok := columns[field]
		if !ok {
			return Tool{}, fmt.Errorf("tool field %q has no column mapping", field)
		}
		set[column] = value
	}
	raw, err := r.client.Patch(ctx, table, id, set)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return Tool{}, ErrNotFound
		}
		return Tool{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Tool{}, fmt.Errorf("decode updated tool: %w", err)
	}
	return rowToTool(row), nil
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

type MemoryRepository struct {
	mu     sync.Mutex
	items  []Tool
	lastID int64
}

func NewMemoryRepository(seed []Tool) *MemoryRepository {
	items := make([]Tool, len(seed))
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

func (r *MemoryRepository) List(ctx context.Context) ([]Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Tool, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}
	return Tool{}, ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, tool Tool) (Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tool.ID = r.nextID()
	r.items = append([]Tool{tool}, r.items...)
	return tool, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if err := applyPatch(&r.items[i], patch); err != nil {
			return Tool{}, err
		}
		return r.items[i], nil
	}
	return Tool{}, ErrNotFound
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

func applyPatch(t *Tool, patch map[string]interface{}) error {
	for field, value := range patch {
		var err error
		switch field {
		case "name":
			err = patchString(&t.Name, field, value)
		case "description":
			err = patchString(&t.Description, field, value)
		case "logo":
			err = patchString(&t.Logo, field, value)
		case "category":
			err = patchString(&t.Category, field, value)
		case "url":
			err = patchString(&t.URL, field, value)
		case "isFeatured":
			err = patchBool(&t.IsFeatured, field, value)
		case "tags":
			err = patchStrings(&t.Tags, field, value)
		default:
			return fmt.Errorf("tool field %q has no column mapping", field)
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
		return fmt.Errorf("tool field %q has unexpected type %T", field, value)
	}
	*dst = s
	return nil
}

func patchBool(dst *bool, field string, value interface{}) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("tool field %q has unexpected type %T", field, value)
	}
	*dst = b
	return nil
}

func patchStrings(dst *[]string, field string, value interface{}) error {
	list, ok := value.([]string)
	if !ok {
		return fmt.Errorf("tool field %q has unexpected type %T", field, value)
	}
	*dst = list
	return nil
}
