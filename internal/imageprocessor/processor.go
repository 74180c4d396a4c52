package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Processor уменьшает аватары пользователей и компаний перед сохранением
type Processor struct {
	quality int // JPEG quality (1-100)
	maxSide int
}

// NewProcessor: maxSide <= 0 отключает уменьшение
func NewProcessor(quality, maxSide int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality, maxSide: maxSide}
}

// Supports - форматы, которые умеем перекодировать. gif и webp сохраняются как есть.
func (p *Processor) Supports(mime string) bool {
	return mime == "image/jpeg" || mime == "image/png"
}

// Fit вписывает изображение в квадрат maxSide с сохранением пропорций.
// Если картинка уже помещается, возвращает nil: исходный файл сохраняется без перекодирования.
func (p *Processor) Fit(reader io.Reader) (io.Reader, error) {
	if p.maxSide <= 0 {
		return nil, nil
	}

	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= p.maxSide && bounds.Dy() <= p.maxSide {
		return nil, nil
	}

	resized := p.resize(img, p.maxSide, p.maxSide)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, resized)
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return &buf, nil
}

func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	ratio := float64(bounds.Dx()) / float64(bounds.Dy())

	newWidth, newHeight := maxWidth, maxHeight
	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Dimensions - размеры изображения без перекодирования
func Dimensions(reader io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
