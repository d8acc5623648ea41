package numeric_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trananhhq/shopbill/pkg/numeric"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 2.5, 2.5},
		{"int", 3, 3},
		{"numeric string", "3", 3},
		{"decimal string", "1.25", 1.25},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"json number", json.Number("7.5"), 7.5},
		{"bad json number", json.Number("x"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numeric.Coerce(tt.in))
		})
	}
}
