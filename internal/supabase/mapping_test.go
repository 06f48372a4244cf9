package supabase

import "testing"

type sampleRow struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
	CreatedAt string `json:"created_at,omitempty"`
}

func TestValidateMappingAccepts(t *testing.T) {
	columns := map[string]string{
		"name":      "name",
		"itemCount": "item_count",
	}
	if err := ValidateMapping(sampleRow{}, columns); err != nil {
		t.Fatalf("expected valid mapping, got %v", err)
	}
}

func TestValidateMappingRejectsUnknownColumn(t *testing.T) {
	columns := map[string]string{
		"name":      "nam",
		"itemCount": "item_count",
	}
	if err := ValidateMapping(sampleRow{}, columns); err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestValidateMappingRejectsUnmappedColumn(t *testing.T) {
	columns := map[string]string{
		"name": "name",
	}
	if err := ValidateMapping(sampleRow{}, columns); err == nil {
		t.Fatal("expected error for unmapped item_count column")
	}
}

func TestValidateMappingRejectsDuplicateColumn(t *testing.T) {
	columns := map[string]string{
		"name":      "name",
		"alias":     "name",
		"itemCount": "item_count",
	}
	if err := ValidateMapping(sampleRow{}, columns); err == nil {
		t.Fatal("expected error for column mapped twice")
	}
}

func TestValidateMappingIgnoresServerOwnedColumns(t *testing.T) {
	// id and created_at stay unmapped on purpose.
	columns := map[string]string{
		"name":      "name",
		"itemCount": "item_count",
		"id":        "id",
	}
	if err := ValidateMapping(sampleRow{}, columns); err != nil {
		t.Fatalf("mapping id explicitly should still validate, got %v", err)
	}
}
