package gluecss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeName(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		sprite     string
		opts       Options
		wantLabel  string
		wantPseudo string
	}{
		{
			name:      "defaults",
			filename:  "close.png",
			sprite:    "icons",
			opts:      DefaultOptions(),
			wantLabel: "sprite_icons_close",
		},
		{
			name:      "global namespace only",
			filename:  "a.png",
			sprite:    "icons",
			opts:      Options{Namespace: "icon", Separator: "_"},
			wantLabel: "icon_a",
		},
		{
			name:       "pseudo-class extracted",
			filename:   "b__hover.png",
			sprite:     "icons",
			opts:       Options{Namespace: "icon", Separator: "_"},
			wantLabel:  "icon_b",
			wantPseudo: ":hover",
		},
		{
			name:      "no namespaces",
			filename:  "arrow-left.png",
			sprite:    "icons",
			opts:      Options{Separator: "_"},
			wantLabel: "arrow-left",
		},
		{
			name:      "custom separator",
			filename:  "close.png",
			sprite:    "icons",
			opts:      Options{Namespace: "sprite", SpriteNamespace: "{sprite_name}", Separator: "--"},
			wantLabel: "sprite--icons--close",
		},
		{
			name:      "sprite namespace template",
			filename:  "close.png",
			sprite:    "icons",
			opts:      Options{SpriteNamespace: "set-{sprite_name}", Separator: "_"},
			wantLabel: "set-icons_close",
		},
		{
			name:      "camelcase",
			filename:  "close.png",
			sprite:    "icons",
			opts:      Options{Namespace: "sprite", SpriteNamespace: "{sprite_name}", Separator: CamelCaseSeparator},
			wantLabel: "spriteIconsClose",
		},
		{
			name:       "camelcase with pseudo",
			filename:   "close__hover.png",
			sprite:     "icons",
			opts:       Options{Namespace: "sprite", SpriteNamespace: "{sprite_name}", Separator: CamelCaseSeparator},
			wantLabel:  "spriteIconsClose",
			wantPseudo: ":hover",
		},
		{
			name:      "unsafe characters removed",
			filename:  "my icon (1).png",
			sprite:    "my sprite!",
			opts:      DefaultOptions(),
			wantLabel: "sprite_mysprite_myicon1",
		},
		{
			name:      "dots in the name keep only the last extension off",
			filename:  "icon.large.png",
			sprite:    "icons",
			opts:      Options{Separator: "_"},
			wantLabel: "iconlarge",
		},
		{
			name:      "empty filename ends with separator",
			filename:  ".png",
			sprite:    "icons",
			opts:      Options{Namespace: "sprite", Separator: "_"},
			wantLabel: "sprite_",
		},
		{
			name:      "double underscore without pseudo-class",
			filename:  "btn__primary.png",
			sprite:    "icons",
			opts:      Options{Separator: "_"},
			wantLabel: "btn__primary",
		},
		{
			name:       "leftmost pseudo-class wins",
			filename:   "nav__focus__hover.png",
			sprite:     "icons",
			opts:       Options{Separator: "_"},
			wantLabel:  "nav__hover",
			wantPseudo: ":focus",
		},
		{
			name:       "hyphenated pseudo-class",
			filename:   "item__first-child.png",
			sprite:     "icons",
			opts:       Options{Separator: "_"},
			wantLabel:  "item",
			wantPseudo: ":first-child",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, pseudo := SynthesizeName(tt.filename, tt.sprite, tt.opts)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantPseudo, pseudo)
		})
	}
}

func TestSynthesizeName_PlainFileHasNoPseudo(t *testing.T) {
	label, pseudo := SynthesizeName("icon.png", "icons", Options{Separator: "_"})
	assert.Equal(t, "icon", label)
	assert.Empty(t, pseudo)
}

func TestTitleFirst(t *testing.T) {
	assert.Equal(t, "Icons", titleFirst("icons"))
	assert.Equal(t, "Écran", titleFirst("écran"))
	assert.Equal(t, "", titleFirst(""))
	assert.Equal(t, "1x", titleFirst("1x"))
}
