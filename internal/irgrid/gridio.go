package irgrid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/snappy"
)

// Grid file layout, all little-endian:
//
//	magic (4) | version (1) | compressed length (4) | CRC32 of the
//	compressed block (4) | snappy block
//
// The block decompresses to the header scalars followed by the packed
// arrays in declaration order. Entry and SmallCell keep their in-memory
// bit layout on the wire, so pack/unpack stay exact inverses.
const (
	gridMagic   = uint32(0x49524733) // "IRG3"
	gridVersion = uint8(1)
)

type gridHeader struct {
	BBoxMin, BBoxMax [3]float64
	Dims             IVec3
	Shift            int32
	NumEntries       int32
	NumRefs          int32
	NumCells         int32
	NumSmallCells    int32
	NumOffsets       int32
}

// SaveGrid writes the grid to w.
func SaveGrid(w io.Writer, g *Grid) error {
	var payload bytes.Buffer
	hdr := gridHeader{
		BBoxMin:       [3]float64(g.BBox.Min),
		BBoxMax:       [3]float64(g.BBox.Max),
		Dims:          g.Dims,
		Shift:         g.Shift,
		NumEntries:    int32(len(g.Entries)),
		NumRefs:       int32(len(g.RefIDs)),
		NumCells:      int32(len(g.Cells)),
		NumSmallCells: int32(len(g.SmallCells)),
		NumOffsets:    int32(len(g.Offsets)),
	}
	for _, v := range []interface{}{hdr, g.Entries, g.RefIDs, g.Offsets, g.Cells, g.SmallCells} {
		if err := binary.Write(&payload, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("encoding grid payload: %w", err)
		}
	}

	block := snappy.Encode(nil, payload.Bytes())

	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, gridMagic)
	binary.Write(&out, binary.LittleEndian, gridVersion)
	binary.Write(&out, binary.LittleEndian, uint32(len(block)))
	binary.Write(&out, binary.LittleEndian, crc32.ChecksumIEEE(block))
	out.Write(block)

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("writing grid: %w", err)
	}
	return nil
}

// LoadGrid reads a grid written by SaveGrid.
func LoadGrid(r io.Reader) (*Grid, error) {
	var (
		magic    uint32
		version  uint8
		blockLen uint32
		checksum uint32
	)
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("reading grid magic: %w", err)
	}
	if magic != gridMagic {
		return nil, fmt.Errorf("not a grid file: magic %#x", magic)
	}
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("reading grid version: %w", err)
	}
	if version != gridVersion {
		return nil, fmt.Errorf("unsupported grid version %d", version)
	}
	if err := binary.Read(r, binary.LittleEndian, &blockLen); err != nil {
		return nil, fmt.Errorf("reading grid block length: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &checksum); err != nil {
		return nil, fmt.Errorf("reading grid checksum: %w", err)
	}

	block := make([]byte, blockLen)
	if _, err := io.ReadFull(r, block); err != nil {
		return nil, fmt.Errorf("reading grid block: %w", err)
	}
	if got := crc32.ChecksumIEEE(block); got != checksum {
		return nil, fmt.Errorf("grid checksum mismatch: got %#x, want %#x", got, checksum)
	}

	payload, err := snappy.Decode(nil, block)
	if err != nil {
		return nil, fmt.Errorf("decompressing grid block: %w", err)
	}

	buf := bytes.NewReader(payload)
	var hdr gridHeader
	if err := binary.Read(buf, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("decoding grid header: %w", err)
	}

	g := &Grid{
		BBox:  BBox{Min: mgl64.Vec3(hdr.BBoxMin), Max: mgl64.Vec3(hdr.BBoxMax)},
		Dims:  hdr.Dims,
		Shift: hdr.Shift,
	}
	g.Entries = make([]Entry, hdr.NumEntries)
	g.RefIDs = make([]int32, hdr.NumRefs)
	g.Offsets = make([]int32, hdr.NumOffsets)
	if hdr.NumCells > 0 {
		g.Cells = make([]Cell, hdr.NumCells)
	}
	if hdr.NumSmallCells > 0 {
		g.SmallCells = make([]SmallCell, hdr.NumSmallCells)
	}
	for _, v := range []interface{}{g.Entries, g.RefIDs, g.Offsets, g.Cells, g.SmallCells} {
		if err := binary.Read(buf, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("decoding grid arrays: %w", err)
		}
	}
	return g, nil
}
