package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerStatus_String(t *testing.T) {
	tests := []struct {
		name   string
		status ServerStatus
		want   string
	}{
		{"offline", StatusOffline, "offline"},
		{"online", StatusOnline, "online"},
		{"starting", StatusStarting, "starting"},
		{"stopping", StatusStopping, "stopping"},
		{"restarting", StatusRestarting, "restarting"},
		{"saving", StatusSaving, "saving"},
		{"loading", StatusLoading, "loading"},
		{"crashed", StatusCrashed, "crashed"},
		{"pending", StatusPending, "pending"},
		{"preparing", StatusPreparing, "preparing"},
		{"gap code", ServerStatus(9), "unknown(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestServerStatus_Valid(t *testing.T) {
	for code := -2; code <= 12; code++ {
		status := ServerStatus(code)
		want := (code >= 0 && code <= 8) || code == 10
		assert.Equal(t, want, status.Valid(), "code %d", code)
	}
}

func TestServerStatus_CodesAreStable(t *testing.T) {
	// Wire codes are part of the API contract; 9 is intentionally unused.
	assert.Equal(t, 0, int(StatusOffline))
	assert.Equal(t, 1, int(StatusOnline))
	assert.Equal(t, 2, int(StatusStarting))
	assert.Equal(t, 3, int(StatusStopping))
	assert.Equal(t, 4, int(StatusRestarting))
	assert.Equal(t, 5, int(StatusSaving))
	assert.Equal(t, 6, int(StatusLoading))
	assert.Equal(t, 7, int(StatusCrashed))
	assert.Equal(t, 8, int(StatusPending))
	assert.Equal(t, 10, int(StatusPreparing))
}

func TestServerStatus_Transitional(t *testing.T) {
	assert.True(t, StatusStarting.Transitional())
	assert.True(t, StatusPreparing.Transitional())
	assert.False(t, StatusOnline.Transitional())
	assert.False(t, StatusOffline.Transitional())
	assert.False(t, StatusCrashed.Transitional())
}
