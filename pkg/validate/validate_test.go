package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Singleline(t *testing.T) {
	type input struct {
		Title string `validate:"required,singleline"`
	}
	v := NewCustomValidator()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "ok", title: "Dune"},
		{name: "crlf", title: "Dune\r\nBcc: victim@evil.example", wantErr: true},
		{name: "lf", title: "Dune\nMessiah", wantErr: true},
		{name: "cr", title: "Dune\r", wantErr: true},
		{name: "empty", title: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(input{Title: tt.title})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
