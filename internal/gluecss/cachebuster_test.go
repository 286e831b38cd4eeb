package gluecss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCacheBuster(t *testing.T) {
	assert.Equal(t, "/img/sprite.png?abc123", ApplyCacheBuster("/img/sprite.png", "abc123"))
	assert.Equal(t, "sprite@2x.png?abc123", ApplyCacheBuster("sprite@2x.png", "abc123"))
}
