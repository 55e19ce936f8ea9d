package sections

import (
	"encoding/json"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	if !r.Known("hero") {
		t.Error("Expected hero to be a known section type")
	}
	if r.Known("carousel-9000") {
		t.Error("Expected unknown tag to be rejected")
	}

	shape, ok := r.Shape("faq")
	if !ok || shape != ShapeItems {
		t.Errorf("Shape(faq) = %v, %v; want items, true", shape, ok)
	}
	shape, ok = r.Shape("video")
	if !ok || shape != ShapeObject {
		t.Errorf("Shape(video) = %v, %v; want object, true", shape, ok)
	}

	if types := r.Types(); len(types) == 0 {
		t.Error("Expected non-empty type list")
	}
}

func TestDefaultTemplates(t *testing.T) {
	r := Default()

	seeds, ok := r.Template("home")
	if !ok {
		t.Fatal("Expected home template")
	}
	if len(seeds) == 0 {
		t.Fatal("Expected home template to have seeds")
	}
	if seeds[0].SectionType != "hero" {
		t.Errorf("home template starts with %q, want hero", seeds[0].SectionType)
	}
	for _, s := range seeds {
		if !r.Known(s.SectionType) {
			t.Errorf("home template references unknown type %q", s.SectionType)
		}
	}

	if _, ok := r.Template("nonexistent"); ok {
		t.Error("Expected missing template to report !ok")
	}
}

func TestValidate(t *testing.T) {
	r := Default()

	tests := []struct {
		name        string
		sectionType string
		payload     string
		wantErr     bool
	}{
		{"object payload for object type", "video", `{"url":"https://example.com/v.mp4","autoplay":true,"loop":false}`, false},
		{"array payload for items type", "faq", `[{"question":"Q?","answer":"A."}]`, false},
		{"empty payload allowed", "hero", ``, false},
		{"null payload allowed", "faq", `null`, false},
		{"array for object type", "video", `[1,2,3]`, true},
		{"object for items type", "testimonials", `{"quote":"hi"}`, true},
		{"invalid json", "hero", `{not json`, true},
		{"unknown type", "carousel-9000", `{}`, true},
		{"scalar payload rejected", "video", `42`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Validate(tt.sectionType, json.RawMessage(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q, %q) error = %v, wantErr %v", tt.sectionType, tt.payload, err, tt.wantErr)
			}
		})
	}
}

func TestParseRejectsBadRegistry(t *testing.T) {
	t.Run("unknown shape", func(t *testing.T) {
		_, err := Parse([]byte("section_types:\n  hero: blob\n"))
		if err == nil {
			t.Error("Expected error for unknown shape")
		}
	})

	t.Run("template references unknown type", func(t *testing.T) {
		_, err := Parse([]byte("section_types:\n  hero: object\ntemplates:\n  home:\n    - type: mystery\n"))
		if err == nil {
			t.Error("Expected error for unknown template section type")
		}
	})
}
