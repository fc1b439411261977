package objimport

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/tiff"
	"golang.org/x/image/bmp"

	mst "github.com/flywave/go-mst"
)

// ReadTextureImage decodes an image file from disk into a go-mst
// Texture, for materials whose source format the embedded OBJ loader
// did not already decode. jpeg/png/gif decode via the standard library;
// bmp and tiff route through golang.org/x/image/bmp and
// github.com/chai2010/tiff respectively.
func ReadTextureImage(path string, id int32) (*mst.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	_, format, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, err := decodeByFormat(f, format)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	buf := make([]byte, 0, bounds.Dx()*bounds.Dy()*4)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, a := color.RGBAModel.Convert(img.At(x, y)).RGBA()
			buf = append(buf, byte(r), byte(g), byte(b), byte(a))
		}
	}

	return &mst.Texture{
		Id:         id,
		Format:     mst.TEXTURE_FORMAT_RGBA,
		Size:       [2]uint64{uint64(bounds.Dx()), uint64(bounds.Dy())},
		Compressed: mst.TEXTURE_COMPRESSED_ZLIB,
		Data:       mst.CompressImage(buf),
	}, nil
}

func decodeByFormat(r io.Reader, format string) (image.Image, error) {
	switch format {
	case "jpeg", "jpg":
		return jpeg.Decode(r)
	case "png":
		return png.Decode(r)
	case "gif":
		return gif.Decode(r)
	case "bmp":
		return bmp.Decode(r)
	case "tif", "tiff":
		return tiff.Decode(r)
	default:
		return nil, errors.New("objimport: unsupported texture image format " + format)
	}
}
