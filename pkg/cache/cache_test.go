package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string](10, time.Minute)
	key := Key{ExperienceID: uuid.New(), Date: "2030-05-01"}

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, "snapshot")

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "snapshot", got)
}

func TestCacheOverwriteSameKey(t *testing.T) {
	c := New[int](10, time.Minute)
	key := Key{ExperienceID: uuid.New(), Date: "2030-05-01"}

	c.Set(key, 1)
	c.Set(key, 2)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheExpiry(t *testing.T) {
	c := New[string](10, 10*time.Millisecond)
	key := Key{ExperienceID: uuid.New(), Date: "2030-05-01"}

	c.Set(key, "snapshot")
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get(key)
	assert.False(t, ok, "expired entry must be a miss")
}

func TestCacheEvictsOldestInserted(t *testing.T) {
	c := New[int](3, time.Minute)

	keys := make([]Key, 4)
	for i := range keys {
		keys[i] = Key{ExperienceID: uuid.New(), Date: fmt.Sprintf("2030-05-0%d", i+1)}
	}

	c.Set(keys[0], 0)
	c.Set(keys[1], 1)
	c.Set(keys[2], 2)
	c.Set(keys[3], 3)

	_, ok := c.Get(keys[0])
	assert.False(t, ok, "oldest-inserted entry should have been evicted")

	for i := 1; i < 4; i++ {
		_, ok := c.Get(keys[i])
		assert.True(t, ok, "entry %d should survive", i)
	}
	assert.Equal(t, 3, c.Len())
}

func TestCacheInvalidateExperience(t *testing.T) {
	c := New[int](10, time.Minute)
	target := uuid.New()
	other := uuid.New()

	c.Set(Key{ExperienceID: target, Date: "2030-05-01"}, 1)
	c.Set(Key{ExperienceID: target, Date: "2030-05-02"}, 2)
	c.Set(Key{ExperienceID: target, Extra: "p=4|s=guide"}, 3)
	c.Set(Key{ExperienceID: other, Date: "2030-05-01"}, 4)

	removed := c.InvalidateExperience(target)
	assert.Equal(t, 3, removed)

	// Every entry referencing the target experience is gone.
	_, ok := c.Get(Key{ExperienceID: target, Date: "2030-05-01"})
	assert.False(t, ok)
	_, ok = c.Get(Key{ExperienceID: target, Extra: "p=4|s=guide"})
	assert.False(t, ok)

	// Entries for other experiences survive.
	got, ok := c.Get(Key{ExperienceID: other, Date: "2030-05-01"})
	require.True(t, ok)
	assert.Equal(t, 4, got)
}
