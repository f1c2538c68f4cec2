package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]string
		wantErr []string
	}{
		{name: "empty store", data: nil},
		{name: "valid", data: map[string]string{"prefix": "!", "token": "abc"}},
		{name: "trailing space prefix", data: map[string]string{"prefix": "bot "}},
		{name: "custom keys ignored", data: map[string]string{"owner": ""}},
		{name: "blank prefix", data: map[string]string{"prefix": " "}, wantErr: []string{"prefix: must not be blank"}},
		{name: "inner whitespace", data: map[string]string{"prefix": "a b"}, wantErr: []string{"prefix: must not contain inner whitespace"}},
		{name: "placeholder token", data: map[string]string{"token": "TOKEN"}, wantErr: []string{"token: is not configured"}},
		{
			name:    "both",
			data:    map[string]string{"prefix": "", "token": ""},
			wantErr: []string{"prefix: must not be blank", "token: is not configured"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(newMemStore(tt.data))
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() = %q, want it to contain %q", err, want)
				}
			}
		})
	}
}
