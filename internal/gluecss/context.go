package gluecss

import "errors"

// BuildContext assembles the render context for a sprite.
// Labels are synthesized on copies of the images, so sprite is left untouched.
func BuildContext(sprite Sprite, version string) (*RenderContext, error) {
	opts := sprite.Options

	// 1. Name every image in input order
	images := make([]Image, len(sprite.Images))
	for i, img := range sprite.Images {
		img.Label, img.Pseudo = SynthesizeName(img.Filename, sprite.Name, opts)
		img.OffsetX = -img.X
		img.OffsetY = -img.Y
		img.Last = i == len(sprite.Images)-1
		images[i] = img
	}

	// 2. Reject colliding class names before anything is rendered
	if err := Validate(images); err != nil {
		var dupErr *DuplicateLabelError
		if errors.As(err, &dupErr) {
			dupErr.Sprite = sprite.Name
		}
		return nil, err
	}

	ratios := make([]Ratio, len(sprite.Ratios))
	copy(ratios, sprite.Ratios)

	ctx := &RenderContext{
		Version:    version,
		Hash:       sprite.Hash,
		SpritePath: sprite.SpritePath,
		Width:      sprite.Width,
		Height:     sprite.Height,
		Images:     images,
		Ratios:     ratios,
	}

	// 3. Cache-bust every sheet URL
	if opts.CacheBuster {
		ctx.SpritePath = ApplyCacheBuster(ctx.SpritePath, sprite.Hash)
		for i := range ctx.Ratios {
			ctx.Ratios[i].SpritePath = ApplyCacheBuster(ctx.Ratios[i].SpritePath, sprite.Hash)
		}
	}

	return ctx, nil
}
