package oracle

import (
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOk bool
	}{
		{
			name:   "bare object",
			raw:    `{"a": 1}`,
			want:   `{"a": 1}`,
			wantOk: true,
		},
		{
			name:   "prose wrapped",
			raw:    `Here is the JSON: {"a": 1} hope that helps`,
			want:   `{"a": 1}`,
			wantOk: true,
		},
		{
			name:   "nested objects",
			raw:    `{"outer": {"inner": {"x": 1}}}`,
			want:   `{"outer": {"inner": {"x": 1}}}`,
			wantOk: true,
		},
		{
			name:   "braces inside strings",
			raw:    `{"text": "use {curly} braces"} trailing`,
			want:   `{"text": "use {curly} braces"}`,
			wantOk: true,
		},
		{
			name:   "escaped quote inside string",
			raw:    `{"text": "she said \"hi {there}\""}`,
			want:   `{"text": "she said \"hi {there}\""}`,
			wantOk: true,
		},
		{
			name:   "no object",
			raw:    "just prose",
			wantOk: false,
		},
		{
			name:   "unbalanced",
			raw:    `{"a": {"b": 1}`,
			wantOk: false,
		},
		{
			name:   "empty input",
			raw:    "",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.raw)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
