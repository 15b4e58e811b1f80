package shipments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTare(t *testing.T) {
	tests := []struct {
		name    string
		pallets int
		bags    int
		want    float64
	}{
		{"pallets get the flat tare", 2, 0, 25.7},
		{"pallets win even with bags present", 1, 10, 25.7},
		{"bags only use the per-bag tare", 0, 4, 0.5},
		{"empty line has no tare", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, defaultTare(tt.pallets, tt.bags), 1e-9)
		})
	}
}
