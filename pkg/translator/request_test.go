package translator

import (
	"errors"
	"testing"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		sourceLang string
		maxLength  int
		wantErr    bool
		wantField  string
	}{
		{name: "valid vietnamese request", text: "Xin chào", sourceLang: "vi", maxLength: 256},
		{name: "valid english request", text: "Hello", sourceLang: "en", maxLength: 256},
		{name: "lower bound accepted", text: "Hello", sourceLang: "en", maxLength: 1},
		{name: "upper bound accepted", text: "Hello", sourceLang: "en", maxLength: 512},
		{name: "zero max length rejected", text: "Hello", sourceLang: "en", maxLength: 0, wantErr: true, wantField: "max_length"},
		{name: "negative max length rejected", text: "Hello", sourceLang: "en", maxLength: -1, wantErr: true, wantField: "max_length"},
		{name: "max length above bound rejected", text: "Hello", sourceLang: "en", maxLength: 513, wantErr: true, wantField: "max_length"},
		{name: "invalid direction rejected", text: "Bonjour", sourceLang: "fr", maxLength: 256, wantErr: true, wantField: "source_lang"},
		{name: "empty text rejected", text: "", sourceLang: "en", maxLength: 256, wantErr: true, wantField: "text"},
		{name: "whitespace-only text rejected", text: "   \n\t", sourceLang: "en", maxLength: 256, wantErr: true, wantField: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.text, tt.sourceLang, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("NewRequest() error type = %T, want *ValidationError", err)
				}
				if vErr.Field != tt.wantField {
					t.Errorf("NewRequest() error field = %q, want %q", vErr.Field, tt.wantField)
				}
				return
			}
			if req.Text != tt.text {
				t.Errorf("NewRequest() text = %q, want %q", req.Text, tt.text)
			}
			if string(req.Direction) != tt.sourceLang {
				t.Errorf("NewRequest() direction = %q, want %q", req.Direction, tt.sourceLang)
			}
			if req.MaxLength != tt.maxLength {
				t.Errorf("NewRequest() maxLength = %d, want %d", req.MaxLength, tt.maxLength)
			}
		})
	}
}
