// Package imageio converts between image files and NHWC image tensors.
//
// Decoding supports PNG, JPEG, BMP, TIFF and WebP. Output is always PNG.
package imageio

import (
	"bufio"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/born-ml/srgan/internal/tensor"
)

// ErrSizeMismatch is returned when images in one batch differ in size or a
// tensor is not an RGB image batch.
var ErrSizeMismatch = errors.New("image size mismatch")

// Range selects how 8-bit channel values map to floats.
type Range int

const (
	// Symmetric maps [0, 255] to [-1, 1], the range of a tanh generator.
	Symmetric Range = iota
	// Unit maps [0, 255] to [0, 1].
	Unit
)

func (r Range) encode(c uint8) float32 {
	if r == Unit {
		return float32(c) / 255
	}
	return float32(c)/127.5 - 1
}

func (r Range) decode(v float32) uint8 {
	var f float64
	if r == Unit {
		f = float64(v) * 255
	} else {
		f = (float64(v) + 1) * 127.5
	}
	if math.IsNaN(f) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(255, f))))
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode image")
	}
	return img, format, nil
}

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, _, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return img, nil
}

// Save writes img to path as PNG.
func Save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create image")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(w.Flush(), "write %s", path)
}

// Resize scales img to width x height with Catmull-Rom interpolation.
func Resize(img image.Image, width, height int) *image.RGBA {
	resized := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Src, nil)
	return resized
}

// CropToMultiple crops img from the top-left corner so that both sides are
// multiples of m. Images smaller than m in either direction are rejected.
func CropToMultiple(img image.Image, m int) (*image.RGBA, error) {
	if m <= 0 {
		return nil, errors.Errorf("invalid multiple %d", m)
	}
	b := img.Bounds()
	w, h := (b.Dx()/m)*m, (b.Dy()/m)*m
	if w == 0 || h == 0 {
		return nil, errors.Wrapf(ErrSizeMismatch, "%dx%d image is smaller than %d", b.Dx(), b.Dy(), m)
	}

	cropped := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Copy(cropped, image.Point{}, img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+w, b.Min.Y+h), draw.Src, nil)
	return cropped, nil
}

// ToTensor stacks same-sized images into a [N, H, W, 3] float32 tensor.
// Alpha is dropped.
func ToTensor[B tensor.Backend](imgs []image.Image, r Range, backend B) (*tensor.Tensor[float32, B], error) {
	if len(imgs) == 0 {
		return nil, errors.New("no images")
	}
	bounds := imgs[0].Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	data := make([]float32, len(imgs)*h*w*3)
	for n, img := range imgs {
		b := img.Bounds()
		if b.Dx() != w || b.Dy() != h {
			return nil, errors.Wrapf(ErrSizeMismatch, "image %d is %dx%d, want %dx%d", n, b.Dx(), b.Dy(), w, h)
		}

		base := n * h * w * 3
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := base + (y*w+x)*3
				data[i] = r.encode(c.R)
				data[i+1] = r.encode(c.G)
				data[i+2] = r.encode(c.B)
			}
		}
	}

	return tensor.FromSlice(data, tensor.Shape{len(imgs), h, w, 3}, backend)
}

// FromTensor converts a [N, H, W, 3] tensor into opaque RGBA images,
// clamping values outside the range.
func FromTensor[B tensor.Backend](t *tensor.Tensor[float32, B], r Range) ([]*image.RGBA, error) {
	shape := t.Shape()
	if len(shape) != 4 || shape[3] != 3 {
		return nil, errors.Wrapf(ErrSizeMismatch, "expected [N,H,W,3] tensor, got %v", shape)
	}
	n, h, w := shape[0], shape[1], shape[2]
	data := t.Data()

	imgs := make([]*image.RGBA, n)
	for i := range imgs {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		src := data[i*h*w*3 : (i+1)*h*w*3]
		for p := 0; p < h*w; p++ {
			img.Pix[p*4] = r.decode(src[p*3])
			img.Pix[p*4+1] = r.decode(src[p*3+1])
			img.Pix[p*4+2] = r.decode(src[p*3+2])
			img.Pix[p*4+3] = 255
		}
		imgs[i] = img
	}
	return imgs, nil
}
