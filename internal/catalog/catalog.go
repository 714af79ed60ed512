package catalog

import (
	"strings"

	"paintpreview/internal/domain"
)

// Resolver is the lookup contract the orchestrator depends on. Resolution is
// order-preserving and silently drops unknown codes; duplicate codes resolve
// to duplicate entries so a caller can request several variants of one color.
type Resolver interface {
	Resolve(productCodes []string) []domain.Paint
}

// Catalog is an in-memory paint table keyed by product code. Reads only after
// construction, so it is safe for concurrent use without locking.
type Catalog struct {
	byCode map[string]domain.Paint
}

// New builds a catalog from the given paint records. Later records win on
// duplicate product codes.
func New(paints []domain.Paint) *Catalog {
	byCode := make(map[string]domain.Paint, len(paints))
	for _, p := range paints {
		byCode[normalizeCode(p.ProductCode)] = p
	}
	return &Catalog{byCode: byCode}
}

// Default returns a catalog seeded with the stock paint table.
func Default() *Catalog {
	return New(stockPaints)
}

// Resolve maps product codes to paint records, preserving input order and
// dropping codes with no match. Duplicates are not collapsed.
func (c *Catalog) Resolve(productCodes []string) []domain.Paint {
	resolved := make([]domain.Paint, 0, len(productCodes))
	for _, code := range productCodes {
		if paint, ok := c.byCode[normalizeCode(code)]; ok {
			resolved = append(resolved, paint)
		}
	}
	return resolved
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var stockPaints = []domain.Paint{
	{ProductCode: "ND-050", Name: "Nordic Sky", ColorHex: "#AFC7D9", Manufacturer: "Nippon", Finish: "matte", PriceCents: 5490},
	{ProductCode: "ND-112", Name: "Nordic Fog", ColorHex: "#D5DCE1", Manufacturer: "Nippon", Finish: "matte", PriceCents: 5490},
	{ProductCode: "KP-200", Name: "Kyoto Plum", ColorHex: "#8A4B62", Manufacturer: "Kansai", Finish: "satin", PriceCents: 6190},
	{ProductCode: "KP-215", Name: "Kyoto Moss", ColorHex: "#6E7F5C", Manufacturer: "Kansai", Finish: "satin", PriceCents: 6190},
	{ProductCode: "SW-310", Name: "Seaside White", ColorHex: "#F4F1E8", Manufacturer: "Sherwood", Finish: "eggshell", PriceCents: 4890},
	{ProductCode: "SW-342", Name: "Harbor Gray", ColorHex: "#9BA3A8", Manufacturer: "Sherwood", Finish: "eggshell", PriceCents: 4890},
	{ProductCode: "TR-078", Name: "Terracotta Dawn", ColorHex: "#C97B55", Manufacturer: "Tanaka", Finish: "gloss", PriceCents: 7250},
	{ProductCode: "TR-091", Name: "Terracotta Dusk", ColorHex: "#A35A3D", Manufacturer: "Tanaka", Finish: "gloss", PriceCents: 7250},
}
