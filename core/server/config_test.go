package server_test

import (
	"testing"

	"schema-engine/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_SourceOrDefault(t *testing.T) {
	tests := []struct {
		name   string
		def    string
		source string
		want   string
	}{
		{"Explicit", "catalog", "warehouse", "warehouse"},
		{"Fallback", "catalog", "", "catalog"},
		{"BothEmpty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{DefaultSource: tt.def}
			assert.Equal(t, tt.want, c.SourceOrDefault(tt.source))
		})
	}
}
