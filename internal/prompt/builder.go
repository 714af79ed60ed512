package prompt

import (
	"fmt"
	"strings"

	"paintpreview/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Builder renders generation prompts from paint records. Rendering is
// deterministic: the same paint always yields the same prompt pair.
type Builder interface {
	Build(paint domain.Paint) (prompt, negativePrompt string)
}

// StaticBuilder is the stock prompt renderer. Stateless.
type StaticBuilder struct{}

func NewStaticBuilder() *StaticBuilder {
	return &StaticBuilder{}
}

func (b *StaticBuilder) Build(paint domain.Paint) (string, string) {
	c := cases.Title(language.Und)

	name := strings.TrimSpace(paint.Name)
	if name == "" {
		name = paint.ProductCode
	}
	finish := strings.ToLower(strings.TrimSpace(paint.Finish))
	if finish == "" {
		finish = "matte"
	}
	manufacturer := strings.TrimSpace(paint.Manufacturer)

	var sb strings.Builder
	fmt.Fprintf(&sb, "A photo of the same house with exterior walls repainted in %s (%s), %s finish",
		c.String(name), paint.ColorHex, finish)
	if manufacturer != "" {
		fmt.Fprintf(&sb, ", %s paint", c.String(manufacturer))
	}
	sb.WriteString(", photorealistic, keep the original architecture, windows, doors and roof unchanged")

	negative := "blurry, distorted architecture, extra buildings, people, text, watermark, cartoon"
	return sb.String(), negative
}

var _ Builder = (*StaticBuilder)(nil)
