package articles

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

var ErrNotFound = errors.New("article not found")

// Repository is the persistence strategy for articles, selected once at
// startup (remote when the backend is configured, in-memory in demo mode).
type Repository interface {
	List(ctx context.Context) ([]Article, error)
	Get(ctx context.Context, id string) (Article, error)
	Create(ctx context.Context, article Article) (Article, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (Article, error)
	Delete(ctx context.Context, id string) error
}

type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(client *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: client}
}

func (r *SupabaseRepository) List(ctx context.Context) ([]Article, error) {
	raw, err := r.client.Select(ctx, table)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	items := make([]Article, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToArticle(row))
	}
	return items, nil
}

func (r *SupabaseRepository) Get(ctx context.Context, id string) (Article, error) {
	raw, err := r.client.Get(ctx, table, id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Article{}, fmt.Errorf("decode article: %w", err)
	}
	return rowToArticle(row), nil
}

func (r *SupabaseRepository) Create(ctx context.Context, article Article) (Article, error) {
	raw, err := r.client.Insert(ctx, table, articleToRow(article))
	if err != nil {
		return Article{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Article{}, fmt.Errorf("decode created article: %w", err)
	}
	return rowToArticle(row), nil
}

func (r *SupabaseRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (Article, error) {
	set := make(map[string]interface{}, len(patch))
	for field, value := range patch {
		column, ok := columns[field]
		if !ok {
			return Article{}, fmt.Errorf("article field %q has no column mapping", field)
		}
		set[column] = value
	}
	raw, err := r.client.Patch(ctx, table, id, set)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Article{}, fmt.Errorf("decode updated article: %w", err)
	}
	return rowToArticle(row), nil
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
	items  []Article
	lastID int64
}

func NewMemoryRepository(seed []Article) *MemoryRepository {
	items := make([]Article, len(seed))
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

func (r *MemoryRepository) List(ctx context.Context) ([]Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Article, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Article{}, ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, article Article) (Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	article.ID = r.nextID()
	r.items = append([]Article{article}, r.items...)
	return article, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if err := applyPatch(&r.items[i], patch); err != nil {
			return Article{}, err
		}
		return r.items[i], nil
	}
	return Article{}, ErrNotFound
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

func applyPatch(a *Article, patch map[string]interface{}) error {
	for field, value := range patch {
		var err error
		switch field {
		case "title":
			err = patchString(&a.Title, field, value)
		case "excerpt":
			err = patchString(&a.Excerpt, field, value)
		case "content":
			err = patchString(&a.Content, field, value)
		case "thumbnail":
			err = patchString(&a.Thumbnail, field, value)
		case "author":
			err = patchString(&a.Author, field, value)
		case "date":
			err = patchString(&a.Date, field, value)
		case "category":
			err = patchString(&a.Category, field, value)
		case "views":
			err = patchInt(&a.Views, field, value)
		case "likes":
			err = patchInt(&a.Likes, field, value)
		case "comments":
			err = patchInt(&a.Comments, field, value)
		case "isVip":
			err = patchBool(&a.IsVip, field, value)
		case "tags":
			err = patchStrings(&a.Tags, field, value)
		default:
			return fmt.Errorf("article field %q has no column mapping", field)
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
		return fmt.Errorf("article field %q has unexpected type %T", field, value)
	}
	*dst = s
	return nil
}

func patchInt(dst *int, field string, value interface{}) error {
	n, ok := value.(int)
	if !ok {
		return fmt.Errorf("article field %q has unexpected type %T", field, value)
	}
	*dst = n
	return nil
}

func patchBool(dst *bool, field string, value interface{}) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("article field %q has unexpected type %T", field, value)
	}
	*dst = b
	return nil
}

func patchStrings(dst *[]string, field string, value interface{}) error {
	list, ok := value.([]string)
	if !ok {
		return fmt.Errorf("article field %q has unexpected type %T", field, value)
	}
	*dst = list
	return nil
}
