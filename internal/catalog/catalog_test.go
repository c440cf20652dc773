package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emmanuel128/repaso-app/internal/content"
	"github.com/emmanuel128/repaso-app/pkg/supabase"
)

func TestSectionsAreOrderedAndComplete(t *testing.T) {
	svc := NewService(nil)
	sections := svc.Sections()
	if len(sections) != 8 {
		t.Fatalf("expected 8 study sections, got %d", len(sections))
	}
	for i, section := range sections {
		if section.ID != i+1 {
			t.Fatalf("section %d out of order: id %d", i, section.ID)
		}
		if len(section.Cards) == 0 || len(section.Generators) == 0 {
			t.Fatalf("section %d incomplete: %d cards, %d generators", section.ID, len(section.Cards), len(section.Generators))
		}
		for _, gen := range section.Generators {
			if _, ok := content.ParseType(string(gen.Type)); !ok {
				t.Fatalf("section %d has invalid generator type %q", section.ID, gen.Type)
			}
			if gen.Section == "" || gen.Topics == "" {
				t.Fatalf("section %d generator missing prompt inputs: %+v", section.ID, gen)
			}
		}
	}
}

func TestSectionLookup(t *testing.T) {
	svc := NewService(nil)
	section, ok := svc.Section(5)
	if !ok || section.Title != "Bases Biológicas" {
		t.Fatalf("unexpected section: %+v ok=%v", section, ok)
	}
	if _, ok := svc.Section(99); ok {
		t.Fatal("lookup of unknown section must fail")
	}
}

func TestSectionsCopyIsIsolated(t *testing.T) {
	svc := NewService(nil)
	sections := svc.Sections()
	sections[0].Title = "mutated"
	if fresh := svc.Sections(); fresh[0].Title == "mutated" {
		t.Fatal("Sections must return a copy")
	}
}

func TestAreasPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/areas" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a1","tenant_id":"t1","name":"Ética","slug":"etica","order_index":1,"status":"published"}]`))
	}))
	defer srv.Close()

	svc := NewService(supabase.NewClient(srv.URL, "anon-key"))
	areas, err := svc.Areas(context.Background())
	if err != nil {
		t.Fatalf("areas: %v", err)
	}
	if len(areas) != 1 || areas[0].Slug != "etica" {
		t.Fatalf("unexpected areas: %+v", areas)
	}
}
