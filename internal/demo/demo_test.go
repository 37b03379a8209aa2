package demo

import (
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Parts(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))

	for i := 0; i < 200; i++ {
		parts := g.Parts()
		require.GreaterOrEqual(t, len(parts), 1)
		require.LessOrEqual(t, len(parts), 10)
		for _, p := range parts {
			assert.GreaterOrEqual(t, p.Value, 1.0)
			assert.LessOrEqual(t, p.Value, 100.0)
			assert.True(t, p.Color.IsValid())
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewPCG(7, 7)))
	b := NewGenerator(rand.New(rand.NewPCG(7, 7)))

	assert.Equal(t, a.Parts(), b.Parts())
	assert.Equal(t, a.Mode(), b.Mode())
}

func TestGenerator_Mode(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(3, 4)))

	var pies, donuts int
	for i := 0; i < 200; i++ {
		m := g.Mode()
		if m.IsDonut() {
			donuts++
			assert.GreaterOrEqual(t, m.LineWidth(), 0.0)
			assert.Less(t, m.LineWidth(), 30.0)
		} else {
			pies++
		}
	}
	assert.NotZero(t, pies)
	assert.NotZero(t, donuts)
}

func TestParseParts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{"hex and names", "red:1, #0000ff:3", []float64{1, 3}, false},
		{"palette fallback", "2,3.5", []float64{2, 3.5}, false},
		{"short hex", "#f00:4", []float64{4}, false},
		{"zero value", "red:0,blue:5", []float64{0, 5}, false},
		{"trailing comma", "red:1,", []float64{1}, false},
		{"empty", "", nil, false},
		{"negative", "red:-1", nil, true},
		{"not a number", "red:abc", nil, true},
		{"nan", "red:NaN", nil, true},
		{"unknown color", "notacolor:1", nil, true},
		{"bad hex", "#zzzzzz:1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := ParseParts(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, parts, len(tt.want))
			for i, v := range tt.want {
				assert.Equal(t, v, parts[i].Value)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Red")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.Hex())

	c, err = ParseColor("#0000ff")
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", c.Hex())
	assert.True(t, colorful.Color{B: 1}.AlmostEqualRgb(c))
}

func TestPalette(t *testing.T) {
	assert.Equal(t, "#4477aa", Palette(0).Hex())
	assert.Equal(t, Palette(0), Palette(10))
	assert.Equal(t, Palette(1), Palette(-1))
}
