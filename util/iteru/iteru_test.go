package iteru_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"monowedge.dev/monowedge/util/iteru"
)

func TestCollect2(t *testing.T) {
	seq := maps.All(map[string]int{"a": 1, "b": 2, "c": 3})
	keys, values := iteru.Collect2(seq)

	slices.Sort(keys)
	slices.Sort(values)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestValues2(t *testing.T) {
	seq := slices.All([]string{"x", "y"})
	assert.Equal(t, []string{"x", "y"}, iteru.Values2(seq))
}
