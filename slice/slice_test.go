package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		val      string
		expected bool
	}{
		{
			name:     "value exists in slice",
			slice:    []string{"a", "b", "c"},
			val:      "a",
			expected: true,
		},
		{
			name:     "value does not exist in slice",
			slice:    []string{"a", "b", "c"},
			val:      "d",
			expected: false,
		},
		{
			name:     "empty slice",
			slice:    []string{},
			val:      "a",
			expected: false,
		},
		{
			name:     "nil slice",
			slice:    nil,
			val:      "a",
			expected: false,
		},
		{
			name:     "empty string value",
			slice:    []string{"a", "b", "c", ""},
			val:      "",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Contains(tt.slice, tt.val)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestContainsCaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		val      string
		expected bool
	}{
		{
			name:     "exact match",
			slice:    []string{"a", "b", "c"},
			val:      "a",
			expected: true,
		},
		{
			name:     "case insensitive match - uppercase search",
			slice:    []string{"a", "b", "c"},
			val:      "A",
			expected: true,
		},
		{
			name:     "case insensitive match - lowercase search",
			slice:    []string{"A", "B", "C"},
			val:      "a",
			expected: true,
		},
		{
			name:     "case insensitive match - mixed case",
			slice:    []string{"Apple", "Banana", "Cherry"},
			val:      "aPpLe",
			expected: true,
		},
		{
			name:     "no match",
			slice:    []string{"a", "b", "c"},
			val:      "d",
			expected: false,
		},
		{
			name:     "empty slice",
			slice:    []string{},
			val:      "a",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Contains(tt.slice, tt.val, WithCaseInsensitive())
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		vals     []string
		expected bool
	}{
		{
			name:     "one value exists in slice",
			slice:    []string{"a", "b", "c"},
			vals:     []string{"a", "d"},
			expected: true,
		},
		{
			name:     "multiple values exist in slice",
			slice:    []string{"a", "b", "c"},
			vals:     []string{"a", "b"},
			expected: true,
		},
		{
			name:     "no values exist in slice",
			slice:    []string{"a", "b", "c"},
			vals:     []string{"d", "e"},
			expected: false,
		},
		{
			name:     "empty slice",
			slice:    []string{},
			vals:     []string{"a", "b"},
			expected: false,
		},
		{
			name:     "nil slice",
			slice:    nil,
			vals:     []string{"a", "b"},
			expected: false,
		},
		{
			name:     "empty values",
			slice:    []string{"a", "b", "c"},
			vals:     []string{},
			expected: false,
		},
		{
			name:     "nil values",
			slice:    []string{"a", "b", "c"},
			vals:     nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ContainsAny(tt.slice, tt.vals...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestOmit(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		vals     []string
		expected []string
	}{
		{
			name:     "omit single value",
			slice:    []string{"a", "b", "c"},
			vals:     []string{"a"},
			expected: []string{"b", "c"},
		},
		{
			name:     "omit multiple values",
			slice:    []string{"a", "b", "c"},
			vals:     []string{"a", "c"},
			expected: []string{"b"},
		},
		{
			name:     "omit all values",
			slice:    []string{"a", "b", "c"},
			vals:     []string{"a", "b", "c"},
			expected: nil,
		},
		{
			name:     "omit no values",
			slice:    []string{"a", "b", "c"},
			vals:     []string{"d", "e"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty slice",
			slice:    []string{},
			vals:     []string{"a", "b"},
			expected: nil,
		},
		{
			name:     "nil slice",
			slice:    nil,
			vals:     []string{"a", "b"},
			expected: nil,
		},
		{
			name:     "empty values",
			slice:    []string{"a", "b", "c"},
			vals:     []string{},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "nil values",
			slice:    []string{"a", "b", "c"},
			vals:     nil,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "duplicate values in slice",
			slice:    []string{"a", "b", "a", "c"},
			vals:     []string{"a"},
			expected: []string{"b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Omit(tt.slice, tt.vals...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithCaseInsensitive(t *testing.T) {
	var opts withOpts
	optFunc := WithCaseInsensitive()
	optFunc(&opts)
	assert.True(t, opts.caseInsensitive)
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		expected []string
	}{
		{
			name:     "keeps first occurrence",
			slice:    []string{"c", "a", "c", "b", "a"},
			expected: []string{"c", "a", "b"},
		},
		{
			name:     "no duplicates",
			slice:    []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "nil slice",
			slice:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Unique(tt.slice)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGrouped(t *testing.T) {
	tests := []struct {
		name     string
		slice    []int
		size     int
		expected [][]int
	}{
		{
			name:     "even groups",
			slice:    []int{0, 1, 2, 3, 4, 5},
			size:     3,
			expected: [][]int{{0, 1, 2}, {3, 4, 5}},
		},
		{
			name:     "trailing elements dropped",
			slice:    []int{0, 1, 2, 3, 4},
			size:     2,
			expected: [][]int{{0, 1}, {2, 3}},
		},
		{
			name:     "group larger than slice",
			slice:    []int{1},
			size:     2,
			expected: [][]int{},
		},
		{
			name:     "zero size",
			slice:    []int{1},
			size:     0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Grouped(tt.slice, tt.size)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPairwise(t *testing.T) {
	result := Pairwise([]int{0, 1, 2, 3, 4, 5})
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4, 5}}, result)
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		expected []any
	}{
		{
			name:     "nested slices",
			values:   []any{[]any{1, 2}, []any{3, []int{4, 5}}},
			expected: []any{1, 2, 3, 4, 5},
		},
		{
			name:     "bytes are kept whole",
			values:   []any{"a", []byte("b")},
			expected: []any{"a", []byte("b")},
		},
		{
			name:     "arrays",
			values:   []any{[2]string{"x", "y"}},
			expected: []any{"x", "y"},
		},
		{
			name:     "no values",
			values:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Flatten(tt.values...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompact(t *testing.T) {
	a, b := 1, 2
	tests := []struct {
		name     string
		slice    []*int
		expected []*int
	}{
		{
			name:     "removes nils",
			slice:    []*int{nil, &a, nil, &b},
			expected: []*int{&a, &b},
		},
		{
			name:     "all nil",
			slice:    []*int{nil, nil},
			expected: []*int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compact(tt.slice)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestShuffled(t *testing.T) {
	slice := []int{1, 2, 3, 4, 5, 6, 7, 8}
	result := Shuffled(slice)
	assert.ElementsMatch(t, slice, result)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, slice, "input must not be reordered")
}
