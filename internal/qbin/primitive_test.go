package qbin

import (
	"errors"
	"testing"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	if got, err := DecodeU8(EncodeU8(0xAB)); err != nil || got != 0xAB {
		t.Fatalf("u8 round trip = %v, %v", got, err)
	}
	if got, err := DecodeI16(EncodeI16(-1234)); err != nil || got != -1234 {
		t.Fatalf("i16 round trip = %v, %v", got, err)
	}
	if got, err := DecodeI32(EncodeI32(-123456789)); err != nil || got != -123456789 {
		t.Fatalf("i32 round trip = %v, %v", got, err)
	}
	if got, err := DecodeF32(EncodeF32(1.5)); err != nil || got != 1.5 {
		t.Fatalf("f32 round trip = %v, %v", got, err)
	}
	if got, err := DecodeBool(EncodeBool(true)); err != nil || got != true {
		t.Fatalf("bool(true) round trip = %v, %v", got, err)
	}
	if got, err := DecodeBool(EncodeBool(false)); err != nil || got != false {
		t.Fatalf("bool(false) round trip = %v, %v", got, err)
	}
}

func TestDecodeBoolNonzeroIsTrue(t *testing.T) {
	got, err := DecodeBool([]byte{0x42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatalf("nonzero byte 0x42 should decode true")
	}
}

func TestDecodeI32LittleEndian(t *testing.T) {
	got, err := DecodeI32([]byte{0x01, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestDecodeU8WrongWidth(t *testing.T) {
	if _, err := DecodeU8([]byte{1, 2}); !errors.Is(err, ErrInvalidPrimitive) {
		t.Fatalf("expected ErrInvalidPrimitive, got %v", err)
	}
}

func TestRawPreservesNonCanonicalBytes(t *testing.T) {
	raw, err := DecodeRaw([]byte{0xAB}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 1 || raw[0] != 0xAB {
		t.Fatalf("raw = %v, want [0xAB]", raw)
	}
	clone := raw.Clone()
	clone[0] = 0x00
	if raw[0] != 0xAB {
		t.Fatalf("Clone shared backing array with source")
	}
}
