package cmd

import (
	"testing"

	"inventa/cli/internal/api"

	"github.com/stretchr/testify/require"
)

func TestParseSaleItems(t *testing.T) {
	tests := []struct {
		name    string
		specs   []string
		want    []api.SaleItem
		wantErr bool
	}{
		{
			name:  "quantity only",
			specs: []string{"p1:2"},
			want:  []api.SaleItem{{ProductID: "p1", Quantity: 2}},
		},
		{
			name:  "with unit price",
			specs: []string{"p1:2:9.5"},
			want:  []api.SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 9.5}},
		},
		{
			name:  "multiple items",
			specs: []string{"p1:1", "p2:3:4.25"},
			want: []api.SaleItem{
				{ProductID: "p1", Quantity: 1},
				{ProductID: "p2", Quantity: 3, UnitPrice: 4.25},
			},
		},
		{
			name:    "no items",
			specs:   nil,
			wantErr: true,
		},
		{
			name:    "missing quantity",
			specs:   []string{"p1"},
			wantErr: true,
		},
		{
			name:    "zero quantity",
			specs:   []string{"p1:0"},
			wantErr: true,
		},
		{
			name:    "negative price",
			specs:   []string{"p1:1:-2"},
			wantErr: true,
		},
		{
			name:    "too many fields",
			specs:   []string{"p1:1:2:3"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSaleItems(tt.specs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
