package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/Faultbox/rackmodel/internal/logger"
	"github.com/Faultbox/rackmodel/internal/model"
)

var textureExts = map[string]bool{".png": true, ".bmp": true, ".tga": true}

// StitchTextures walks fsys for texture images laid out as
// <namespace>/<path>.<ext> and stitches each with its real dimensions.
// PNG, BMP and TGA files are read; other files are ignored.
func (a *Atlas) StitchTextures(fsys fs.FS) (int, error) {
	n := 0
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(p))
		if !textureExts[ext] {
			return nil
		}

		loc, ok := textureLocation(p)
		if !ok {
			logger.Debug("skipping texture outside a namespace", zap.String("path", p))
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		width, height, err := textureSize(data, ext)
		if err != nil {
			return fmt.Errorf("texture %s: %w", p, err)
		}
		a.StitchSized(loc, width, height)
		n++
		return nil
	})
	return n, err
}

// textureLocation maps "minecraft/blocks/stone.png" to minecraft:blocks/stone.
func textureLocation(p string) (model.ResourceLocation, bool) {
	ns, rest, ok := strings.Cut(p, "/")
	if !ok {
		return model.ResourceLocation{}, false
	}
	loc, err := model.ParseLocation(ns + ":" + strings.TrimSuffix(rest, path.Ext(rest)))
	if err != nil {
		return model.ResourceLocation{}, false
	}
	return loc, true
}

func textureSize(data []byte, ext string) (width, height int, err error) {
	if ext == ".tga" {
		return tgaSize(data)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// tgaSize reads the dimensions from a TGA header.
// Only uncompressed (type 2) and RLE (type 10) true-color images are accepted.
func tgaSize(data []byte) (width, height int, err error) {
	if len(data) < 18 {
		return 0, 0, fmt.Errorf("TGA data too short")
	}

	colorMapType := data[1]
	imageType := data[2]
	bpp := int(data[16])

	if colorMapType != 0 {
		return 0, 0, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != 2 && imageType != 10 {
		return 0, 0, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return 0, 0, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}

	width = int(data[12]) | int(data[13])<<8
	height = int(data[14]) | int(data[15])<<8
	return width, height, nil
}
