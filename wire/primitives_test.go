package wire

import (
	"math"
	"testing"
)

func TestReadF32NaN(t *testing.T) {
	c := NewCursor([]byte{79, 103, 129, 0xFF})
	v, err := c.ReadF32()
	if err != nil {
		t.Fatalf("ReadF32: %v", err)
	}
	if !math.IsNaN(float64(v)) {
		t.Fatalf("expected NaN, got %v", v)
	}
	if c.Pos() != 4 {
		t.Fatalf("cursor advanced %d, want 4", c.Pos())
	}
}

func TestReadF32NotNaN(t *testing.T) {
	c := NewCursor([]byte{79, 103, 129, 0xFE})
	v, err := c.ReadF32()
	if err != nil {
		t.Fatalf("ReadF32: %v", err)
	}
	if math.IsNaN(float64(v)) {
		t.Fatalf("expected non-NaN, got NaN")
	}
}

func TestReadF64NaN(t *testing.T) {
	c := NewCursor([]byte{100, 0, 0, 0, 79, 103, 0xF0, 0x7F})
	v, err := c.ReadF64()
	if err != nil {
		t.Fatalf("ReadF64: %v", err)
	}
	if !math.IsNaN(v) {
		t.Fatalf("expected NaN, got %v", v)
	}
}

func TestReadF64NotNaN(t *testing.T) {
	c := NewCursor([]byte{100, 0, 0, 0, 79, 103, 0x7F, 0xFF})
	v, err := c.ReadF64()
	if err != nil {
		t.Fatalf("ReadF64: %v", err)
	}
	if math.IsNaN(v) {
		t.Fatalf("expected non-NaN, got NaN")
	}
}

func TestReadBoolInvalid(t *testing.T) {
	c := NewCursor([]byte{2})
	if _, err := c.ReadBool(); err == nil {
		t.Fatalf("expected error for invalid bool byte")
	}
}

func TestReadStringInvalidUTF8(t *testing.T) {
	c := NewCursor([]byte{2, 0, 0, 0, 0xff, 0xfe})
	if _, err := c.ReadString(); err == nil {
		t.Fatalf("expected utf8 error")
	}
}

func TestReadBytesEmptyVec(t *testing.T) {
	c := NewCursor([]byte{0, 0, 0, 0})
	b, err := c.ReadBytes()
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty, got %v", b)
	}
	if c.Pos() != 4 {
		t.Fatalf("cursor advanced %d, want 4", c.Pos())
	}
}

func TestStandardOption(t *testing.T) {
	var conv Standard
	c := NewCursor([]byte{0})
	present, err := conv.ReadOption(c)
	if err != nil || present {
		t.Fatalf("present=%v err=%v, want false,nil", present, err)
	}
}

func TestConstSizeOptionAbsentSkipsPadding(t *testing.T) {
	var conv ConstSizeOption
	c := NewCursor([]byte{0, 0, 0, 0, 0xAA, 0xBB, 0xCC, 0xDD})
	present, err := conv.ReadCOption(c, func() (int, bool) { return 4, true })
	if err != nil {
		t.Fatalf("ReadCOption: %v", err)
	}
	if present {
		t.Fatalf("expected absent")
	}
	if c.Pos() != 8 {
		t.Fatalf("cursor at %d, want 8", c.Pos())
	}
}

func TestConstSizeOptionPresent(t *testing.T) {
	var conv ConstSizeOption
	c := NewCursor([]byte{1, 0, 0, 0})
	present, err := conv.ReadCOption(c, func() (int, bool) { return 4, true })
	if err != nil {
		t.Fatalf("ReadCOption: %v", err)
	}
	if !present {
		t.Fatalf("expected present")
	}
	if c.Pos() != 4 {
		t.Fatalf("cursor at %d, want 4", c.Pos())
	}
}

func TestConstSizeOptionUnknownInnerSize(t *testing.T) {
	var conv ConstSizeOption
	c := NewCursor([]byte{0, 0, 0, 0})
	if _, err := conv.ReadCOption(c, func() (int, bool) { return 0, false }); err == nil {
		t.Fatalf("expected ErrCannotSizeCOption")
	}
}

func TestConstSizeOptionInvalidTag(t *testing.T) {
	var conv ConstSizeOption
	c := NewCursor([]byte{2, 0, 0, 0})
	if _, err := conv.ReadCOption(c, func() (int, bool) { return 0, true }); err == nil {
		t.Fatalf("expected ErrInvalidCOptionTag")
	}
}
