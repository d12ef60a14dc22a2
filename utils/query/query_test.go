package queryHelper

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTranslateFilterEmpty(t *testing.T) {
	filter := ListParams{}.TranslateFilter()
	if len(filter) != 0 {
		t.Errorf("expected an empty filter, got %v", filter)
	}
}

func TestTranslateFilterSearch(t *testing.T) {
	p := ListParams{
		Search:       "toronto (main)",
		SearchFields: []string{"name", "city"},
	}
	filter := p.TranslateFilter()

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or clause, got %v", filter)
	}
	if len(or) != 2 {
		t.Fatalf("expected 2 search fields, got %d", len(or))
	}

	re, ok := or[0]["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex predicate, got %T", or[0]["name"])
	}
	if re.Options != "i" {
		t.Errorf("expected case-insensitive regex, got options %q", re.Options)
	}
	// Metacharacters in user input must be matched literally.
	if re.Pattern != `toronto \(main\)` {
		t.Errorf("pattern: got %q", re.Pattern)
	}
}

func TestTranslateFilterSearchWithoutFields(t *testing.T) {
	filter := ListParams{Search: "x"}.TranslateFilter()
	if _, ok := filter["$or"]; ok {
		t.Error("search without fields must not add a $or clause")
	}
}

func TestTranslateFilterPredicates(t *testing.T) {
	featured := true
	active := false
	p := ListParams{
		Category: "visas",
		Type:     "blog",
		Status:   "new",
		Featured: &featured,
		IsActive: &active,
	}
	filter := p.TranslateFilter()

	if filter["category"] != "visas" {
		t.Errorf("category: got %v", filter["category"])
	}
	if filter["type"] != "blog" {
		t.Errorf("type: got %v", filter["type"])
	}
	if filter["status"] != "new" {
		t.Errorf("status: got %v", filter["status"])
	}
	if filter["featured"] != true {
		t.Errorf("featured: got %v", filter["featured"])
	}
	if filter["is_active"] != false {
		t.Errorf("is_active: got %v", filter["is_active"])
	}
}

func TestNormalizeClampsBounds(t *testing.T) {
	p := ListParams{Page: 0, Limit: -5}
	p.Normalize()
	if p.Page != 1 || p.Limit != 10 {
		t.Errorf("got page=%d limit=%d, want 1/10", p.Page, p.Limit)
	}

	p = ListParams{Page: 3, Limit: 500}
	p.Normalize()
	if p.Limit != 100 {
		t.Errorf("limit: got %d, want 100", p.Limit)
	}
	if p.Page != 3 {
		t.Errorf("page: got %d, want 3", p.Page)
	}
}

func TestSkip(t *testing.T) {
	p := ListParams{Page: 2, Limit: 10}
	if got := p.Skip(); got != 10 {
		t.Errorf("Skip: got %d, want 10", got)
	}
	p = ListParams{Page: 1, Limit: 20}
	if got := p.Skip(); got != 0 {
		t.Errorf("Skip: got %d, want 0", got)
	}
}

func TestParseBoolFlag(t *testing.T) {
	if v := ParseBoolFlag("true"); v == nil || !*v {
		t.Error("expected true")
	}
	if v := ParseBoolFlag("false"); v == nil || *v {
		t.Error("expected false")
	}
	if v := ParseBoolFlag(""); v != nil {
		t.Error("expected nil for empty value")
	}
	if v := ParseBoolFlag("yes"); v != nil {
		t.Error("expected nil for unrecognized value")
	}
}
