// Package icon draws the application icon used by the window, the tray
// and the packaging tool.
package icon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"math"
)

var (
	background = color.RGBA{R: 0x77, G: 0x19, B: 0xAA, A: 0xFF}
	foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Draw renders a size×size notebook icon: a rounded purple square with a
// white "N".
func Draw(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	radius := 0.18 * s

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := (float64(x)+0.5)/s, (float64(y)+0.5)/s
			if !insideRounded(float64(x)+0.5, float64(y)+0.5, s, radius) {
				continue
			}
			if onLetter(fx, fy) {
				img.SetRGBA(x, y, foreground)
			} else {
				img.SetRGBA(x, y, background)
			}
		}
	}
	return img
}

func insideRounded(x, y, s, r float64) bool {
	cx := math.Min(math.Max(x, r), s-r)
	cy := math.Min(math.Max(y, r), s-r)
	return math.Hypot(x-cx, y-cy) <= r
}

// onLetter reports whether the unit-square point lies on the "N" glyph.
func onLetter(x, y float64) bool {
	const (
		top, bottom = 0.25, 0.75
		left, right = 0.28, 0.72
		stroke      = 0.12
	)
	if y < top || y > bottom {
		return false
	}
	if x >= left && x <= left+stroke || x >= right-stroke && x <= right {
		return true
	}
	// Diagonal from the top of the left bar to the bottom of the right bar.
	t := (y - top) / (bottom - top)
	dx := left + t*(right-stroke-left)
	return x >= dx && x <= dx+stroke
}

// PNG encodes Draw(size) as PNG.
func PNG(size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Draw(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ICO wraps raw PNG bytes in a minimal ICO container.
// Windows LoadImage(IMAGE_ICON) requires ICO format; since Vista,
// ICO supports embedded PNG data directly.
func ICO(pngData []byte, size int) []byte {
	dim := byte(size)
	if size >= 256 {
		dim = 0 // 0 means 256
	}
	buf := new(bytes.Buffer)
	// ICONDIR header
	binary.Write(buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1)) // type: 1 = ICO
	binary.Write(buf, binary.LittleEndian, uint16(1)) // count: 1 image

	// ICONDIRENTRY
	buf.WriteByte(dim)                                           // width
	buf.WriteByte(dim)                                           // height
	buf.WriteByte(0)                                             // color count
	buf.WriteByte(0)                                             // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1))            // color planes
	binary.Write(buf, binary.LittleEndian, uint16(32))           // bits per pixel
	binary.Write(buf, binary.LittleEndian, uint32(len(pngData))) // image data size
	binary.Write(buf, binary.LittleEndian, uint32(6+1*16))       // offset to image data (header + 1 entry)

	buf.Write(pngData)
	return buf.Bytes()
}

// Tray returns the tray icon in the format the platform's tray expects.
func Tray(goos string) ([]byte, error) {
	const size = 64
	data, err := PNG(size)
	if err != nil {
		return nil, err
	}
	if goos == "windows" {
		return ICO(data, size), nil
	}
	return data, nil
}
