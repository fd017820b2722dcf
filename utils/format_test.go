package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Time(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{1500 * time.Millisecond, "1.50s"},
		{2*time.Minute + 3*time.Second, "2m 3.00s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3.00s"},
		{26*time.Hour + 4*time.Minute + 5*time.Second, "1d 2h 4m 5.00s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.in))
	}
}

func TestFormat_DecorateTextKeepsContent(t *testing.T) {
	for _, mt := range []MessageType{DefaultMessage, SuccessMessage, ErrorMessage, StatusMessage} {
		assert.Contains(t, DecorateText("carve", mt), "carve")
	}
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))
}

func TestMath_Helpers(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 0.5, Abs(-0.5))
	assert.Equal(t, 255, Clamp(300, 0, 255))
	assert.Equal(t, 0, Clamp(-4, 0, 255))
	assert.Equal(t, 7, Clamp(7, 0, 255))
}
