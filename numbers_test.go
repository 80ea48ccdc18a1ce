// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phonefwd

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumbersZeroValue(t *testing.T) {
	t.Parallel()

	var p Numbers
	assert.Equal(t, 0, p.Len())

	_, ok := p.Get(0)
	assert.False(t, ok)

	require.True(t, p.Append("123"))
	assert.Equal(t, 1, p.Len())

	num, ok := p.Get(0)
	require.True(t, ok)
	assert.Equal(t, "123", num)
}

func TestNumbersNil(t *testing.T) {
	t.Parallel()

	var p *Numbers
	assert.Equal(t, 0, p.Len())

	_, ok := p.Get(0)
	assert.False(t, ok)

	assert.Nil(t, p.AsSlice())

	// iteration, sort and compact on nil must not panic
	for range p.All() {
		t.Fatal("nil Numbers yielded an element")
	}
	p.Sort()
	p.Compact()
}

func TestNumbersAppendRejectsInvalid(t *testing.T) {
	t.Parallel()

	p := new(Numbers)
	for _, num := range []string{"", "12a", "1 2", "+48"} {
		assert.False(t, p.Append(num), "Append(%q)", num)
	}
	assert.Equal(t, 0, p.Len())
}

func TestNumbersGetOutOfRange(t *testing.T) {
	t.Parallel()

	p := new(Numbers)
	require.True(t, p.Append("5"))

	for _, i := range []int{-1, 1, 42} {
		_, ok := p.Get(i)
		assert.False(t, ok, "Get(%d)", i)
	}
}

func TestNumbersSortExtendedOrder(t *testing.T) {
	t.Parallel()

	p := new(Numbers)
	for _, num := range []string{"#", "90", "*", "9", "09", "*1", "100"} {
		require.True(t, p.Append(num))
	}

	p.Sort()

	want := []string{"09", "100", "9", "90", "*", "*1", "#"}
	assert.Equal(t, want, p.AsSlice())
}

func TestNumbersSortStable(t *testing.T) {
	t.Parallel()

	p := new(Numbers)
	for _, num := range []string{"7", "7", "1", "7"} {
		require.True(t, p.Append(num))
	}

	p.Sort()
	assert.Equal(t, []string{"1", "7", "7", "7"}, p.AsSlice())

	p.Compact()
	assert.Equal(t, []string{"1", "7"}, p.AsSlice())
}

func TestNumbersCompactAdjacentOnly(t *testing.T) {
	t.Parallel()

	p := new(Numbers)
	for _, num := range []string{"1", "1", "2", "1"} {
		require.True(t, p.Append(num))
	}

	p.Compact()
	assert.Equal(t, []string{"1", "2", "1"}, p.AsSlice())
}

func TestNumbersAll(t *testing.T) {
	t.Parallel()

	p := new(Numbers)
	want := []string{"3", "1", "2"}
	for _, num := range want {
		require.True(t, p.Append(num))
	}

	got := slices.Collect(p.All())
	assert.Equal(t, want, got)

	// early break
	for range p.All() {
		break
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"1", "1", 0},
		{"1", "2", -1},
		{"12", "1", 1},
		{"9", "*", -1},
		{"*", "#", -1},
		{"9#", "*0", -1},
		{"#", "0", 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Compare(tc.a, tc.b), "Compare(%q, %q)", tc.a, tc.b)
	}
}
