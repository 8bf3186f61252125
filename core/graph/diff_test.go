package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifferences(t *testing.T) {
	tests := []struct {
		name     string
		existing Properties
		desired  Properties
		want     []string
	}{
		{
			name:     "Identical",
			existing: Properties{"displayName": "Orders", "position": 1},
			desired:  Properties{"displayName": "Orders", "position": 1},
		},
		{
			name:     "JSONRoundTripNumbers",
			existing: Properties{"position": float64(3), "length": float64(0)},
			desired:  Properties{"position": 3, "length": 0},
		},
		{
			name:     "JSONRoundTripArrays",
			existing: Properties{"aliases": []any{"oid", "order_id"}},
			desired:  Properties{"aliases": []string{"oid", "order_id"}},
		},
		{
			name:     "AliasOrderMatters",
			existing: Properties{"aliases": []any{"order_id", "oid"}},
			desired:  Properties{"aliases": []string{"oid", "order_id"}},
			want:     []string{"aliases"},
		},
		{
			name:     "ChangedString",
			existing: Properties{"displayName": "Orders"},
			desired:  Properties{"displayName": "All Orders"},
			want:     []string{"displayName"},
		},
		{
			name:     "AddedAndRemovedKeys",
			existing: Properties{"usage": "reporting"},
			desired:  Properties{"author": "ana"},
			want:     []string{"author", "usage"},
		},
		{
			name:     "BoolVsNumber",
			existing: Properties{"isNullable": true},
			desired:  Properties{"isNullable": 1},
			want:     []string{"isNullable"},
		},
		{
			name:     "EmptyArrayEqualsAbsent",
			existing: Properties{},
			desired:  Properties{"aliases": []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Differences(tt.existing, tt.desired))
			assert.Equal(t, len(tt.want) > 0, HasDifference(tt.existing, tt.desired))
		})
	}
}
