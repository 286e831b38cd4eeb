package gluecss

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render produces the stylesheet text for a render context.
//
// Layout (matches stylesheets produced by glue, so existing headers stay valid):
//
//	/* glue: <version> hash: <hash> */
//	.a,.b:hover{ shared background-image rule }
//	.a{ position and size }            one block per image
//	@media (pixel ratio) { ... }       one block per ratio
func Render(ctx *RenderContext) string {
	var b strings.Builder
	writeStylesheet(&b, ctx)
	return b.String()
}

// RenderTo writes the stylesheet to w
func RenderTo(w io.Writer, ctx *RenderContext) error {
	if _, err := io.WriteString(w, Render(ctx)); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}

func writeStylesheet(b *strings.Builder, ctx *RenderContext) {
	b.WriteString(Header(ctx.Version, ctx.Hash))
	b.WriteString("\n")

	// Shared rule: every selector on one line, comma separated
	for _, img := range ctx.Images {
		b.WriteString("." + img.Selector())
		if !img.Last {
			b.WriteString(",")
		}
	}
	b.WriteString("{\n")
	fmt.Fprintf(b, "    background-image:url('%s');\n", ctx.SpritePath)
	b.WriteString("    background-repeat:no-repeat;\n")
	b.WriteString("}\n")

	for _, img := range ctx.Images {
		b.WriteString("\n")
		fmt.Fprintf(b, ".%s{\n", img.Selector())
		fmt.Fprintf(b, "    background-position:%s %s;\n", pixels(img.OffsetX), pixels(img.OffsetY))
		fmt.Fprintf(b, "    width:%dpx;\n", img.Width)
		fmt.Fprintf(b, "    height:%dpx;\n", img.Height)
		b.WriteString("}\n")
	}
	b.WriteString("\n")

	for _, ratio := range ctx.Ratios {
		writeRatio(b, ctx, ratio)
	}
}

func writeRatio(b *strings.Builder, ctx *RenderContext, ratio Ratio) {
	r := formatRatio(ratio.Ratio)

	b.WriteString("\n")
	fmt.Fprintf(b, "@media screen and (-webkit-min-device-pixel-ratio: %s), "+
		"screen and (min--moz-device-pixel-ratio: %s),"+
		"screen and (-o-min-device-pixel-ratio: %s),"+
		"screen and (min-device-pixel-ratio: %s){\n", r, r, ratio.Fraction, r)

	// Selector list: one per line, ", " after all but the last
	b.WriteString("    ")
	for _, img := range ctx.Images {
		b.WriteString("." + img.Selector())
		if !img.Last {
			b.WriteString(", ")
		}
		b.WriteString("\n    ")
	}
	b.WriteString("{\n")

	size := fmt.Sprintf("%dpx %dpx", ctx.Width, ctx.Height)
	fmt.Fprintf(b, "        background-image:url('%s');\n", ratio.SpritePath)
	fmt.Fprintf(b, "        -webkit-background-size: %s;\n", size)
	fmt.Fprintf(b, "        -moz-background-size: %s;\n", size)
	fmt.Fprintf(b, "        background-size: %s;\n", size)
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

// pixels adds the px unit to non-zero values
func pixels(v int) string {
	if v == 0 {
		return "0"
	}
	return strconv.Itoa(v) + "px"
}

// formatRatio prints 2 as "2" and 1.5 as "1.5"
func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
