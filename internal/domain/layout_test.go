package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowHeight(t *testing.T) {
	l := DefaultLayout()
	for _, n := range []int{1, 2, 7, 25} {
		assert.Equal(t, n*60+30, l.WindowHeight(n), "count %d", n)
	}
}

func TestScrollOffset(t *testing.T) {
	l := DefaultLayout()
	for i := 0; i < 10; i++ {
		assert.Zero(t, l.ScrollOffset(i), "index %d", i)
	}
	assert.Equal(t, 60, l.ScrollOffset(10))
	assert.Equal(t, 120, l.ScrollOffset(11))
	for i := 10; i < 100; i++ {
		assert.Equal(t, (i-10)*60+60, l.ScrollOffset(i), "index %d", i)
	}
}

func TestScrollOffsetCustomLayout(t *testing.T) {
	l := Layout{ItemHeight: 40, VisibleItems: 5}
	assert.Zero(t, l.ScrollOffset(4))
	assert.Equal(t, 40, l.ScrollOffset(5))
	assert.Equal(t, 200, l.ScrollOffset(9))
}
