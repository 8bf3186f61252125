package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"Int", 7, 7},
		{"Float", float64(12), 12},
		{"String", "42", 42},
		{"Bytes", []byte("3"), 3},
		{"Garbage", "abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt64(tt.in))
		})
	}
}

func TestIsIntegral(t *testing.T) {
	assert.True(t, IsIntegral(3))
	assert.True(t, IsIntegral(float64(3)))
	assert.False(t, IsIntegral(3.5))
	assert.False(t, IsIntegral("3"))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("TRUE"))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(nil))
}

func TestToStringSlice(t *testing.T) {
	assert.Nil(t, ToStringSlice(nil))
	assert.Equal(t, []string{"a", "b"}, ToStringSlice([]any{"a", "b"}))
	assert.Equal(t, []string{"x"}, ToStringSlice([]string{"x"}))
	assert.Equal(t, []string{"5"}, ToStringSlice(5))
}
