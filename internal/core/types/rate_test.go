package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "two decimals kept", input: "110.00", want: "110.00"},
		{name: "integer padded", input: "125", want: "125.00"},
		{name: "one decimal padded", input: "96.5", want: "96.50"},
		{name: "extra precision rounded", input: "102.755", want: "102.76"},
		{name: "zero allowed", input: "0", want: "0.00"},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "negative rejected", input: "-5.00", wantErr: true},
		{name: "garbage rejected", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRate("payableRate", tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTaar(t *testing.T) {
	got, err := NormalizeTaar("")
	require.NoError(t, err)
	assert.Equal(t, "0.000", got)

	got, err = NormalizeTaar("10.5")
	require.NoError(t, err)
	assert.Equal(t, "10.500", got)

	_, err = NormalizeTaar("-1")
	assert.Error(t, err)

	_, err = NormalizeTaar("x")
	assert.Error(t, err)
}
