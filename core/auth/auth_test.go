package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowList_Authorize(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		allowed []string
		user    string
		wantErr error
	}{
		{"OpenAnyUser", nil, "ana", nil},
		{"OpenEmptyUser", nil, "", ErrMissingUser},
		{"Listed", []string{"ana", "bo"}, "bo", nil},
		{"NotListed", []string{"ana"}, "eve", ErrNotAllowed},
		{"BlankEntriesIgnored", []string{""}, "eve", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAllowList(Config{AllowedUsers: tt.allowed}).Authorize(ctx, tt.user)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
