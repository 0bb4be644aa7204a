// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexToXUsesBarCenters(t *testing.T) {
	tr := NewTimeTransform(0, 10)

	// Bar centers, not edges: index 0 is half a slot in.
	assert.Equal(t, 5.0, tr.IndexToX(0))
	assert.Equal(t, 55.0, tr.IndexToX(5))
}

func TestIndexToXWithScrolledViewport(t *testing.T) {
	tr := NewTimeTransform(100, 8)

	assert.Equal(t, 4.0, tr.IndexToX(100))
	assert.Equal(t, -4.0, tr.IndexToX(99))
}

func TestXToIndexInvertsIndexToX(t *testing.T) {
	tr := NewTimeTransform(42, 6.5)
	for idx := 42; idx < 90; idx++ {
		assert.Equal(t, idx, tr.XToIndex(tr.IndexToX(idx)))
	}
}

func TestXToIndexRoundsToNearestBar(t *testing.T) {
	tr := NewTimeTransform(0, 10)

	// Anything within the slot maps to the slot's bar.
	assert.Equal(t, 0, tr.XToIndex(1))
	assert.Equal(t, 0, tr.XToIndex(9))
	assert.Equal(t, 1, tr.XToIndex(11))
}

func TestXToIndexZeroSpacing(t *testing.T) {
	tr := NewTimeTransform(0, 0)

	assert.Equal(t, 0, tr.XToIndex(123))
}
