package render

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"ldc/config"
)

func encodeTestImage(t *testing.T, width, height int, asJPEG bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{uint8(x * 7), uint8(y * 7), 128, 255})
		}
	}
	var buf bytes.Buffer
	var err error
	if asJPEG {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode processed image: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestDetectMediaType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		data     []byte
		want     string
	}{
		{"declared wins", "image/svg+xml", []byte("<svg/>"), "image/svg+xml"},
		{"png detected", "", encodeTestImage(t, 4, 4, false), "image/png"},
		{"jpeg detected", "", encodeTestImage(t, 4, 4, true), "image/jpeg"},
		{"unknown payload", "", []byte("random bytes here"), "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &blob{mediaType: tt.declared, data: tt.data}
			b.detectMediaType(zaptest.NewLogger(t))
			if b.mediaType != tt.want {
				t.Errorf("mediaType = %q, want %q", b.mediaType, tt.want)
			}
		})
	}
}

func TestDataURI(t *testing.T) {
	b := &blob{mediaType: "image/png", data: []byte{1, 2, 3}}
	if got := b.dataURI(); got != "data:image/png;base64,AQID" {
		t.Errorf("dataURI() = %q", got)
	}
}

func TestProcessScale(t *testing.T) {
	b := &blob{mediaType: "image/png", data: encodeTestImage(t, 20, 10, false)}
	cfg := &config.ImagesConfig{
		Resize:      config.ImageResizeModeScale,
		ScaleFactor: 0.5,
		JPEGQuality: 85,
	}
	b.process(cfg, zaptest.NewLogger(t))

	w, h := decodeSize(t, b.data)
	if h != 5 {
		t.Errorf("height = %d, want 5", h)
	}
	// aspect ratio preserved
	if w != 10 {
		t.Errorf("width = %d, want 10", w)
	}
}

func TestProcessStretch(t *testing.T) {
	b := &blob{mediaType: "image/jpeg", data: encodeTestImage(t, 20, 10, true)}
	cfg := &config.ImagesConfig{
		Resize:       config.ImageResizeModeStretch,
		TargetWidth:  8,
		TargetHeight: 8,
		JPEGQuality:  85,
	}
	b.process(cfg, zaptest.NewLogger(t))

	w, h := decodeSize(t, b.data)
	if w != 8 || h != 8 {
		t.Errorf("size = %dx%d, want 8x8", w, h)
	}
}

func TestProcessLeavesDataAlone(t *testing.T) {
	src := encodeTestImage(t, 10, 10, false)

	tests := []struct {
		name string
		blob blob
		cfg  *config.ImagesConfig
	}{
		{"no config", blob{mediaType: "image/png", data: src}, nil},
		{"mode none", blob{mediaType: "image/png", data: src}, &config.ImagesConfig{Resize: config.ImageResizeModeNone}},
		{"svg payload", blob{mediaType: "image/svg+xml", data: []byte("<svg/>")},
			&config.ImagesConfig{Resize: config.ImageResizeModeScale, ScaleFactor: 0.5}},
		{"undecodable payload", blob{mediaType: "image/png", data: []byte("broken")},
			&config.ImagesConfig{Resize: config.ImageResizeModeScale, ScaleFactor: 0.5}},
		{"scale factor of one", blob{mediaType: "image/png", data: src},
			&config.ImagesConfig{Resize: config.ImageResizeModeScale, ScaleFactor: 1.0}},
		{"stretch without target", blob{mediaType: "image/png", data: src},
			&config.ImagesConfig{Resize: config.ImageResizeModeStretch}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := string(tt.blob.data)
			tt.blob.process(tt.cfg, zaptest.NewLogger(t))
			if string(tt.blob.data) != before {
				t.Error("payload must stay untouched")
			}
		})
	}
}

func TestProcessGrayscaleJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			v := uint8(x * 15)
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}

	b := &blob{mediaType: "image/jpeg", data: buf.Bytes()}
	cfg := &config.ImagesConfig{
		Resize:       config.ImageResizeModeStretch,
		TargetWidth:  8,
		TargetHeight: 8,
		JPEGQuality:  85,
	}
	b.process(cfg, zaptest.NewLogger(t))

	decoded, format, err := image.Decode(bytes.NewReader(b.data))
	if err != nil {
		t.Fatalf("decode processed image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if !strings.HasPrefix(b.dataURI(), "data:image/jpeg;base64,") {
		t.Error("unexpected data URI prefix")
	}
	if _, ok := decoded.(*image.Gray); !ok {
		t.Errorf("grayscale source should re-encode as grayscale, got %T", decoded)
	}
}
