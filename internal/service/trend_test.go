package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeGrowthTrend(t *testing.T) {
	tests := []struct {
		name    string
		samples []int
		want    float64
	}{
		{
			name:    "steady growth over a full window",
			samples: []int{1200, 1150, 1100, 1080, 1050, 1020, 1000},
			want:    20,
		},
		{
			name:    "decline produces negative trend",
			samples: []int{900, 950, 960, 980, 990, 995, 1000},
			want:    -10,
		},
		{
			name:    "flat counts produce zero",
			samples: []int{500, 500, 500, 500, 500, 500, 500},
			want:    0,
		},
		{
			name:    "not enough samples yet",
			samples: []int{1200, 1150, 1100},
			want:    0,
		},
		{
			name:    "empty history",
			samples: nil,
			want:    0,
		},
		{
			name:    "initial value of zero is not divided",
			samples: []int{100, 80, 60, 40, 20, 10, 0},
			want:    0,
		},
		{
			name:    "negative initial value is guarded",
			samples: []int{100, 80, 60, 40, 20, 10, -5},
			want:    0,
		},
		{
			name:    "result is rounded to three decimals",
			samples: []int{1000, 900, 800, 700, 600, 500, 300},
			want:    233.333,
		},
		{
			name:    "extra samples beyond the window are ignored",
			samples: []int{1100, 1080, 1060, 1040, 1020, 1010, 1000, 1, 2},
			want:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeGrowthTrend(tt.samples))
		})
	}
}
