package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/draw"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"ldc/config"
	"ldc/jpegquality"
	"ldc/utils/images"
)

// blob is a staged binary payload awaiting consumption by the next image
// line lacking inline source content.
type blob struct {
	mediaType string
	data      []byte
}

// detectMediaType fills in the media type from payload magic bytes when the
// producing line did not carry one.
func (b *blob) detectMediaType(log *zap.Logger) {
	if len(b.mediaType) > 0 {
		return
	}
	if kind, err := filetype.Match(b.data); err == nil && kind != filetype.Unknown {
		b.mediaType = kind.MIME.Value
		log.Debug("Detected blob media type", zap.String("media_type", b.mediaType), zap.Int("bytes", len(b.data)))
		return
	}
	b.mediaType = "application/octet-stream"
	log.Warn("Unable to detect blob media type", zap.Int("bytes", len(b.data)))
}

// dataURI encodes the payload for inline embedding.
func (b *blob) dataURI() string {
	return "data:" + b.mediaType + ";base64," + base64.StdEncoding.EncodeToString(b.data)
}

// process applies configured resizing to raster payloads before they are
// encoded into the output. Never fails - a payload that cannot be processed
// is embedded untouched.
func (b *blob) process(cfg *config.ImagesConfig, log *zap.Logger) {
	if cfg == nil || cfg.Resize == config.ImageResizeModeNone {
		return
	}
	// do not touch vector images
	if strings.HasSuffix(strings.ToLower(b.mediaType), "svg") || strings.HasSuffix(strings.ToLower(b.mediaType), "svg+xml") {
		return
	}

	img, imgType, err := image.Decode(bytes.NewReader(b.data))
	if err != nil {
		log.Warn("Unable to decode blob image, embedding as is", zap.String("media_type", b.mediaType), zap.Error(err))
		return
	}

	var resized image.Image
	switch cfg.Resize {
	case config.ImageResizeModeScale:
		if cfg.ScaleFactor <= 0.0 || cfg.ScaleFactor == 1.0 {
			return
		}
		resized = imaging.Resize(img, 0, int(float64(img.Bounds().Dy())*cfg.ScaleFactor), imaging.Linear)
	case config.ImageResizeModeStretch:
		if cfg.TargetWidth < 1 || cfg.TargetHeight < 1 {
			return
		}
		resized = imaging.Resize(img, cfg.TargetWidth, cfg.TargetHeight, imaging.Lanczos)
	default:
		return
	}
	if resized == nil {
		log.Warn("Unable to resize blob image, embedding as is", zap.String("media_type", b.mediaType))
		return
	}

	buf := new(bytes.Buffer)
	switch imgType {
	case "png":
		err = imaging.Encode(buf, resized, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case "jpeg":
		quality := cfg.JPEGQuality
		// do not re-encode above the source quality, it only inflates output
		if jq, jerr := jpegquality.NewWithBytes(b.data); jerr == nil && jq.Quality() < quality {
			quality = jq.Quality()
			log.Debug("Limiting JPEG quality to source", zap.Int("quality", quality))
		}
		if images.IsGrayscale(resized) {
			// single channel jpeg is smaller
			g := image.NewGray(resized.Bounds())
			draw.Draw(g, g.Bounds(), resized, resized.Bounds().Min, draw.Src)
			resized = g
		}
		err = imaging.Encode(buf, resized, imaging.JPEG, imaging.JPEGQuality(quality))
	default:
		log.Warn("Unable to process blob image - unsupported format, embedding as is", zap.String("type", imgType))
		return
	}
	if err != nil {
		log.Warn("Unable to encode processed blob image, embedding as is", zap.String("type", imgType), zap.Error(err))
		return
	}

	log.Debug("Resized blob image",
		zap.Stringer("mode", cfg.Resize),
		zap.Int("width", resized.Bounds().Dx()),
		zap.Int("height", resized.Bounds().Dy()))
	b.data = buf.Bytes()
}
