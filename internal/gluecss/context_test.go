package gluecss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSprite(opts Options) Sprite {
	return Sprite{
		Name:       "icons",
		Hash:       "abc123",
		Options:    opts,
		Width:      32,
		Height:     16,
		SpritePath: "/img/icons.png",
		Images: []Image{
			{Filename: "a.png", Path: "src/a.png", X: 0, Y: 0, Width: 16, Height: 16},
			{Filename: "b__hover.png", Path: "src/b__hover.png", X: 16, Y: 0, Width: 16, Height: 16},
		},
		Ratios: []Ratio{
			{Ratio: 2, Fraction: "2/1", SpritePath: "/img/icons@2x.png"},
		},
	}
}

func TestBuildContext(t *testing.T) {
	sprite := testSprite(Options{Namespace: "icon", Separator: "_"})

	ctx, err := BuildContext(sprite, "0.13")
	require.NoError(t, err)

	assert.Equal(t, "0.13", ctx.Version)
	assert.Equal(t, "abc123", ctx.Hash)
	assert.Equal(t, "/img/icons.png", ctx.SpritePath)
	assert.Equal(t, 32, ctx.Width)
	assert.Equal(t, 16, ctx.Height)

	require.Len(t, ctx.Images, 2)
	assert.Equal(t, "icon_a", ctx.Images[0].Label)
	assert.Empty(t, ctx.Images[0].Pseudo)
	assert.False(t, ctx.Images[0].Last)

	assert.Equal(t, "icon_b", ctx.Images[1].Label)
	assert.Equal(t, ":hover", ctx.Images[1].Pseudo)
	assert.True(t, ctx.Images[1].Last)
	assert.Equal(t, -16, ctx.Images[1].OffsetX)
	assert.Equal(t, 0, ctx.Images[1].OffsetY)

	// The input sprite is not mutated
	assert.Empty(t, sprite.Images[0].Label)
	assert.False(t, sprite.Images[1].Last)
}

func TestBuildContext_CacheBuster(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		sprite := testSprite(Options{Namespace: "icon", Separator: "_", CacheBuster: true})
		sprite.Ratios = append(sprite.Ratios, Ratio{Ratio: 3, Fraction: "3/1", SpritePath: "/img/icons@3x.png"})

		ctx, err := BuildContext(sprite, "0.13")
		require.NoError(t, err)
		assert.Equal(t, "/img/icons.png?abc123", ctx.SpritePath)
		assert.Equal(t, "/img/icons@2x.png?abc123", ctx.Ratios[0].SpritePath)
		assert.Equal(t, "/img/icons@3x.png?abc123", ctx.Ratios[1].SpritePath)

		// The input ratios keep their original paths
		assert.Equal(t, "/img/icons@2x.png", sprite.Ratios[0].SpritePath)
	})

	t.Run("disabled", func(t *testing.T) {
		ctx, err := BuildContext(testSprite(Options{Namespace: "icon", Separator: "_"}), "0.13")
		require.NoError(t, err)
		assert.Equal(t, "/img/icons.png", ctx.SpritePath)
		assert.Equal(t, "/img/icons@2x.png", ctx.Ratios[0].SpritePath)
	})
}

func TestBuildContext_PreservesOrder(t *testing.T) {
	sprite := testSprite(DefaultOptions())
	sprite.Images = []Image{
		{Filename: "z.png"}, {Filename: "m.png"}, {Filename: "a.png"},
	}

	ctx, err := BuildContext(sprite, "0.13")
	require.NoError(t, err)

	labels := make([]string, 0, len(ctx.Images))
	for _, img := range ctx.Images {
		labels = append(labels, img.Label)
	}
	assert.Equal(t, []string{"sprite_icons_z", "sprite_icons_m", "sprite_icons_a"}, labels)
}

func TestBuildContext_DuplicateLabels(t *testing.T) {
	sprite := testSprite(DefaultOptions())
	sprite.Images = []Image{
		{Filename: "arrow up.png", Path: "src/arrow up.png"},
		{Filename: "arrowup.png", Path: "src/arrowup.png"},
		{Filename: "down.png", Path: "src/down.png"},
	}

	ctx, err := BuildContext(sprite, "0.13")
	require.Error(t, err)
	assert.Nil(t, ctx)

	var dupErr *DuplicateLabelError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "icons", dupErr.Sprite)
	require.Len(t, dupErr.Duplicates, 2)
	assert.Equal(t, "src/arrow up.png", dupErr.Duplicates[0].Path)
	assert.Equal(t, "src/arrowup.png", dupErr.Duplicates[1].Path)
	assert.Equal(t, "sprite_icons_arrowup", dupErr.Duplicates[0].Label)
}
