package prompt

import (
	"strings"
	"testing"

	"paintpreview/internal/domain"
)

func TestBuildIsDeterministic(t *testing.T) {
	b := NewStaticBuilder()
	paint := domain.Paint{ProductCode: "ND-050", Name: "nordic sky", ColorHex: "#AFC7D9", Manufacturer: "nippon", Finish: "Matte"}

	p1, n1 := b.Build(paint)
	p2, n2 := b.Build(paint)
	if p1 != p2 || n1 != n2 {
		t.Fatalf("prompt not deterministic:\n%q\n%q", p1, p2)
	}
}

func TestBuildMentionsPaintDetails(t *testing.T) {
	b := NewStaticBuilder()
	p, n := b.Build(domain.Paint{ProductCode: "KP-200", Name: "kyoto plum", ColorHex: "#8A4B62", Manufacturer: "kansai", Finish: "satin"})

	for _, want := range []string{"Kyoto Plum", "#8A4B62", "satin", "Kansai"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q: %q", want, p)
		}
	}
	if n == "" {
		t.Fatal("negative prompt should not be empty")
	}
}

func TestBuildFallsBackToProductCode(t *testing.T) {
	b := NewStaticBuilder()
	p, _ := b.Build(domain.Paint{ProductCode: "XX-001"})
	if !strings.Contains(p, "XX-001") {
		t.Fatalf("prompt should fall back to product code: %q", p)
	}
}
