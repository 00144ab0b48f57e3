package shapegraph

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDPoolTake(t *testing.T) {
	src := []string{"a", "b", "c", "d"}
	pool := NewIDPool(src)
	src[3] = "x"

	ids, err := pool.Take(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, ids)
	assert.Equal(t, []string{"a"}, pool.Remaining())

	_, err = pool.Take(2)
	assert.True(t, errors.Is(err, ErrPoolExhausted))
	assert.Equal(t, 1, pool.Len())

	id, err := pool.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", id)
	_, err = pool.Pop()
	assert.Equal(t, ErrPoolExhausted, err)
}

func TestReadIDPool(t *testing.T) {
	pool, err := ReadIDPool(strings.NewReader(` ["a", "b", "c"] `))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, pool.Remaining())

	pool, err = ReadIDPool(strings.NewReader("\"a\",\n\nb\n  c  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, pool.Remaining())

	_, err = ReadIDPool(strings.NewReader(`["a", 3]`))
	assert.Error(t, err)
}

func TestNewID(t *testing.T) {
	now := time.UnixMilli(0x176e14f3b4d)
	assert.Equal(t, "176e14f3b4df", newID(now, 0xf))
	assert.Equal(t, "176e14f3b4d290d6", newID(now, 0x290d6))

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{12,16}$`), NewID())

	ids := GenerateIDs(50)
	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, ids, 50)
}
