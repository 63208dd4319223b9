package pokemon

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDetailJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	detailType := reflect.TypeOf(Detail{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"SpriteURL", "spriteUrl"},
		{"Types", "types"},
		{"Stats", "stats"},
		{"EvolutionLine", "evolutionLine"},
		{"MegaForms", "megaForms"},
		{"GigantamaxForms", "gigantamaxForms"},
		{"Card", "card"},
		{"Recommendation", "recommendation"},
	}

	for _, f := range fields {
		field, ok := detailType.FieldByName(f.name)
		if !ok {
			t.Fatalf("missing field %s", f.name)
		}
		if got := field.Tag.Get("json"); got != f.tag {
			t.Fatalf("field %s expected tag %q got %q", f.name, f.tag, got)
		}
	}
}

func TestDetailEncodesAbsentCardAsNull(t *testing.T) {
	raw, err := json.Marshal(Detail{Recommendation: DefaultRecommendation()})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	card, ok := decoded["card"]
	if !ok {
		t.Fatalf("expected card key to be present")
	}
	if card != nil {
		t.Fatalf("expected card to be null, got %v", card)
	}
	if _, ok := decoded["recommendation"]; !ok {
		t.Fatalf("expected recommendation key to be present")
	}
}

func TestDefaultRecommendation(t *testing.T) {
	rec := DefaultRecommendation()
	if rec.Role != "Balanced" || rec.Nature != "Neutral" {
		t.Fatalf("unexpected default %+v", rec)
	}
	if rec.SuggestedMoves == nil || len(rec.SuggestedMoves) != 0 {
		t.Fatalf("expected empty non-nil moves, got %#v", rec.SuggestedMoves)
	}

	// Each call returns a fresh slice.
	rec.SuggestedMoves = append(rec.SuggestedMoves, "Protect")
	if len(DefaultRecommendation().SuggestedMoves) != 0 {
		t.Fatalf("expected default to be unaffected by caller mutation")
	}
}
