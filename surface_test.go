package fbdev

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Surface
		wantErr bool
	}{
		{"valid", Surface{Width: 4, Height: 3, RowBytes: 16, PixelBytes: 4, Data: make([]byte, 48)}, false},
		{"padded rows", Surface{Width: 3, Height: 2, RowBytes: 16, PixelBytes: 4, Data: make([]byte, 32)}, false},
		{"zero width", Surface{Width: 0, Height: 3, RowBytes: 16, PixelBytes: 4, Data: make([]byte, 48)}, true},
		{"negative height", Surface{Width: 4, Height: -1, RowBytes: 16, PixelBytes: 4}, true},
		{"zero pixel bytes", Surface{Width: 4, Height: 3, RowBytes: 16, PixelBytes: 0, Data: make([]byte, 48)}, true},
		{"row too short", Surface{Width: 5, Height: 3, RowBytes: 16, PixelBytes: 4, Data: make([]byte, 48)}, true},
		{"data too short", Surface{Width: 4, Height: 3, RowBytes: 16, PixelBytes: 4, Data: make([]byte, 47)}, true},
		{"data too long", Surface{Width: 4, Height: 3, RowBytes: 16, PixelBytes: 4, Data: make([]byte, 49)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrGeometry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSurfaceAccessors(t *testing.T) {
	s := Surface{Width: 4, Height: 3, RowBytes: 16, PixelBytes: 4, Data: make([]byte, 48)}
	for i := range s.Data {
		s.Data[i] = 0x55
	}

	assert.Equal(t, 48, s.Len())
	assert.Equal(t, image.Rect(0, 0, 4, 3), s.Bounds())
	assert.Equal(t, "4x3 stride=16 bpp=32", s.String())

	s.Clear()
	assert.Equal(t, make([]byte, 48), s.Data)
}

func TestSurfaceImage(t *testing.T) {
	s := Surface{Width: 3, Height: 2, RowBytes: 16, PixelBytes: 4, Data: make([]byte, 32)}
	img := s.Image()
	require.NotNil(t, img)
	assert.Equal(t, s.Bounds(), img.Bounds())
	assert.Equal(t, 16, img.Stride)

	img.Set(2, 1, image.White.C)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, s.Data[24:28], "writes go straight to Data")

	s16 := Surface{Width: 8, Height: 2, RowBytes: 16, PixelBytes: 2, Data: make([]byte, 32)}
	assert.Nil(t, s16.Image())
}
