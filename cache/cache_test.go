package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	s := New(time.Minute)
	s.Set(KeyCategories, []string{"green", "black"})

	v, ok := s.Get(KeyCategories)
	assert.True(t, ok)
	assert.Equal(t, []string{"green", "black"}, v)

	_, ok = s.Get(KeyProducts)
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	s := New(-time.Second)
	s.Set(KeyProducts, "stale")
	_, ok := s.Get(KeyProducts)
	assert.False(t, ok)
}

func TestExpiredReadEvictsEntry(t *testing.T) {
	s := New(-time.Second)
	s.Set(KeyProducts, "stale")
	s.Set(KeyCategories, "also stale")
	assert.Equal(t, 2, s.Len())

	_, ok := s.Get(KeyProducts)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len(), "expired entry must be dropped on read")

	_, ok = s.Get(KeyCategories)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestProductWriteInvalidatesProductKeysOnly(t *testing.T) {
	s := New(time.Minute)
	s.Set(KeyCategories, "cats")
	s.Set(KeyProducts, "all")
	s.Set(KeyProductsByCategory("c1"), "filtered")

	s.Notify(EventProductWrite)

	_, ok := s.Get(KeyProducts)
	assert.False(t, ok)
	_, ok = s.Get(KeyProductsByCategory("c1"))
	assert.False(t, ok)
	_, ok = s.Get(KeyCategories)
	assert.True(t, ok, "category list must survive a product write")
}

func TestCategoryWriteInvalidatesBoth(t *testing.T) {
	s := New(time.Minute)
	s.Set(KeyCategories, "cats")
	s.Set(KeyProductsByCategory("c1"), "filtered")

	s.Notify(EventCategoryWrite)

	_, ok := s.Get(KeyCategories)
	assert.False(t, ok)
	_, ok = s.Get(KeyProductsByCategory("c1"))
	assert.False(t, ok)
}

func TestUnknownEventIsNoop(t *testing.T) {
	s := New(time.Minute)
	s.Set(KeyProducts, "all")
	s.Notify("order.write")
	_, ok := s.Get(KeyProducts)
	assert.True(t, ok)
}
