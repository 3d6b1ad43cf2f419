package format

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"

	"golang.org/x/image/draw"
)

// iconSizes are the square entries written to an ICO file, largest last.
// Entries larger than the source image are skipped.
var iconSizes = []int{16, 24, 32, 48, 64, 128, 256}

const (
	icoHeaderLen = 6
	icoEntryLen  = 16
	icoTypeIcon  = 1
	icoMaxSide   = 256
)

type icoHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type icoDirEntry struct {
	Width      uint8
	Height     uint8
	Colors     uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

// encodeICO writes a multi-resolution icon whose entries are PNG streams
// scaled down from img.
func encodeICO(w io.Writer, img image.Image) error {
	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	if side <= 0 {
		return fmt.Errorf("empty image")
	}

	sizes := iconEntrySizes(side)
	images := make([][]byte, 0, len(sizes))
	for _, s := range sizes {
		var buf bytes.Buffer
		if err := encodePNG(&buf, scaleTo(img, s)); err != nil {
			return fmt.Errorf("failed to encode %dx%d icon: %w", s, s, err)
		}
		images = append(images, buf.Bytes())
	}

	header := icoHeader{Type: icoTypeIcon, Count: uint16(len(images))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}

	offset := icoHeaderLen + icoEntryLen*len(images)
	for i, s := range sizes {
		entry := icoDirEntry{
			Width:      icoDimension(s),
			Height:     icoDimension(s),
			Planes:     1,
			BitCount:   32,
			BytesInRes: uint32(len(images[i])),
			Offset:     uint32(offset),
		}
		if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += len(images[i])
	}

	for _, data := range images {
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// iconEntrySizes lists the entry sides for a source of the given side. A
// source smaller than every standard size is stored as a single entry.
func iconEntrySizes(side int) []int {
	var sizes []int
	for _, s := range iconSizes {
		if s <= side {
			sizes = append(sizes, s)
		}
	}
	if len(sizes) == 0 {
		sizes = append(sizes, min(side, icoMaxSide))
	}
	return sizes
}

// icoDimension encodes a side length; 0 means 256.
func icoDimension(s int) uint8 {
	if s >= icoMaxSide {
		return 0
	}
	return uint8(s)
}

func scaleTo(img image.Image, side int) image.Image {
	b := img.Bounds()
	if b.Dx() == side && b.Dy() == side {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
