// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueOr(t *testing.T) {
	assert.True(t, ValueOr(nil, true))
	assert.False(t, ValueOr(To(false), true))
	assert.Equal(t, 3, ValueOr(To(3), 0))
}
