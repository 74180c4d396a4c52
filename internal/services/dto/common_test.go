package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, 25, 1, 10)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 10, page.PageSize)

	exact := NewPage([]int{}, 20, 2, 10)
	assert.Equal(t, 2, exact.Pages)

	empty := NewPage[int](nil, 0, 1, 10)
	assert.NotNil(t, empty.Items)
	assert.Zero(t, empty.Pages)

	assert.Zero(t, NewPage[int](nil, 5, 1, 0).Pages)
}
