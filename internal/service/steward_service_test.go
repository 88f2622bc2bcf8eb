package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"idea-copilot-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestTruncateField(t *testing.T) {
	short := "fits as is"
	assert.Equal(t, short, truncateField(short))

	long := strings.Repeat("é", digestFieldLimit+20)
	got := truncateField(long)
	assert.Equal(t, digestFieldLimit, utf8.RuneCountInString(got))
	assert.True(t, strings.HasPrefix(long, got))
}

func TestEventNote(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		want    string
	}{
		{"title preferred", map[string]interface{}{"title": "a title", "summary": "a summary"}, "a title"},
		{"summary next", map[string]interface{}{"summary": "a summary", "status": "done"}, "a summary"},
		{"statement next", map[string]interface{}{"statement": "a statement"}, "a statement"},
		{"status last", map[string]interface{}{"status": "running"}, "running"},
		{"nothing usable", map[string]interface{}{"count": 3}, ""},
		{"nil payload", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &entity.Event{Payload: tt.payload}
			assert.Equal(t, tt.want, eventNote(event))
		})
	}
}
