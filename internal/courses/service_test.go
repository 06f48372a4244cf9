package courses

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(nil))
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(context.Background(), CreateRequest{
		Title:       "ChatGPT từ A đến Z",
		Instructor:  "Nguyễn Văn A",
		Duration:    "8 giờ",
		LessonCount: 24,
		Category:    CategoryChatGPT,
		Description: "Khóa học toàn diện",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Thumbnail != defaultThumbnail {
		t.Fatalf("expected default thumbnail, got %q", created.Thumbnail)
	}
	if created.Rating != defaultRating {
		t.Fatalf("expected default rating %v, got %v", defaultRating, created.Rating)
	}
	if created.Price != 0 || created.Students != 0 {
		t.Fatalf("expected zero price and students, got %d/%d", created.Price, created.Students)
	}
}

func TestCreateKeepsExplicitValues(t *testing.T) {
	svc := newTestService()
	price, students, rating := 499000, 1200, 4.9
	created, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Midjourney nâng cao",
		Instructor:  "Trần Thị B",
		Thumbnail:   "/images/courses/midjourney.jpg",
		Duration:    "6 giờ",
		LessonCount: 18,
		Category:    CategoryImageCreation,
		Description: "Làm chủ Midjourney",
		IsVip:       true,
		Price:       &price,
		Students:    &students,
		Rating:      &rating,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Thumbnail != "/images/courses/midjourney.jpg" {
		t.Fatalf("explicit thumbnail overwritten: %q", created.Thumbnail)
	}
	if created.Price != price || created.Students != students || created.Rating != rating {
		t.Fatalf("explicit values overwritten: %+v", created)
	}
	if !created.IsVip {
		t.Fatal("expected vip flag to stick")
	}
}

func TestCreatePrependsWithIncreasingIDs(t *testing.T) {
	svc := newTestService()
	first, err := svc.Create(context.Background(), CreateRequest{
		Title: "First", Instructor: "A", Duration: "1 giờ", LessonCount: 1,
		Category: CategoryAIBasics, Description: "d",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	second, err := svc.Create(context.Background(), CreateRequest{
		Title: "Second", Instructor: "A", Duration: "1 giờ", LessonCount: 1,
		Category: CategoryAIBasics, Description: "d",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	firstID, _ := strconv.ParseInt(first.ID, 10, 64)
	secondID, _ := strconv.ParseInt(second.ID, 10, 64)
	if secondID <= firstID {
		t.Fatalf("ids not increasing: %d then %d", firstID, secondID)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
}

func TestUpdateIsPartial(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(context.Background(), CreateRequest{
		Title: "VIP course", Instructor: "A", Duration: "2 giờ", LessonCount: 5,
		Category: CategoryPromptEngineering, Description: "d", IsVip: true,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	price := 299000
	updated, err := svc.Update(context.Background(), created.ID, UpdateRequest{Price: &price})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Price != price {
		t.Fatalf("price not updated: %d", updated.Price)
	}
	if updated.Title != "VIP course" {
		t.Fatalf("untouched field changed: %q", updated.Title)
	}
	// Setting a price does not clear the vip flag; the two are independent.
	if !updated.IsVip {
		t.Fatal("vip flag cleared by price update")
	}
}

func TestUpdateRejectsUnknownField(t *testing.T) {
	repo := NewMemoryRepository(nil)
	created, err := repo.Create(context.Background(), Course{Title: "x"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := repo.Update(context.Background(), created.ID, map[string]interface{}{"bogus": 1}); err == nil {
		t.Fatal("expected error for unmapped field")
	}
}

func TestUpdateRejectsMistypedValue(t *testing.T) {
	repo := NewMemoryRepository(nil)
	created, err := repo.Create(context.Background(), Course{Title: "x"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := repo.Update(context.Background(), created.ID, map[string]interface{}{"price": "free"}); err == nil {
		t.Fatal("expected error for mistyped value")
	}
	got, err := repo.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Price != 0 {
		t.Fatalf("rejected patch still applied: %d", got.Price)
	}
}

func TestDeleteMissingCourse(t *testing.T) {
	svc := newTestService()
	if err := svc.Delete(context.Background(), "doesnotexist"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
