package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))
	FillPaletteRGBA(buf, cells, palette)
	assert.Equal(t, []byte{1, 2, 3, 255, 10, 20, 30, 255, 10, 20, 30, 255}, buf)

	FillPaletteRGBA(buf, cells, nil)
	assert.Equal(t, make([]byte, len(buf)), buf)
}

func TestWriteText(t *testing.T) {
	var out bytes.Buffer
	err := WriteText(&out, []uint8{0, 1, 2, 3, 9, 0}, 3, []byte(".yA"))
	require.NoError(t, err)
	assert.Equal(t, ".yA\n??.\n", out.String())
}

func TestWriteTextRejectsRaggedInput(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, WriteText(&out, []uint8{0, 0, 0}, 2, nil))
	assert.Error(t, WriteText(&out, nil, 0, nil))
}
