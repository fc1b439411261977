package objimport

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

func TestReadTextureImageDecodesPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	path := t.TempDir() + "/tex.png"
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("could not create fixture file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("could not encode fixture png: %v", err)
	}
	f.Close()

	tex, err := ReadTextureImage(path, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tex.Id != 7 {
		t.Errorf("expected texture id 7, got %d", tex.Id)
	}
	if tex.Size[0] != 2 || tex.Size[1] != 2 {
		t.Errorf("expected 2x2 texture, got %v", tex.Size)
	}
	if len(tex.Data) == 0 {
		t.Error("expected non-empty compressed texture data")
	}
}

func TestDecodeByFormatRejectsUnknownFormat(t *testing.T) {
	if _, err := decodeByFormat(nil, "exotic"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
