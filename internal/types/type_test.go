package types

import "testing"

func TestScalarConstructors(t *testing.T) {
	cases := []struct {
		name string
		got  Type
		want Type
	}{
		{"int32", IntScalar(32), Type{Code: Int, Bits: 32, Lanes: 1}},
		{"uint8", UIntScalar(8), Type{Code: UInt, Bits: 8, Lanes: 1}},
		{"float64", FloatScalar(64), Type{Code: Float, Bits: 64, Lanes: 1}},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %+v, want %+v", c.name, c.got, c.want)
		}
	}
}

func TestTypeEqualityIsFieldwise(t *testing.T) {
	a := IntScalar(32)
	b := IntScalar(32)
	if a != b {
		t.Fatalf("identical constructions should compare equal")
	}
	if a == FloatScalar(32) {
		t.Fatalf("different codes must not compare equal")
	}
	if a == IntScalar(64) {
		t.Fatalf("different bit widths must not compare equal")
	}
	if a == a.WithLanes(4) {
		t.Fatalf("different lane counts must not compare equal")
	}
}

func TestValid(t *testing.T) {
	if !IntScalar(32).Valid() {
		t.Fatalf("int32 should be valid")
	}
	if (Type{Code: Int, Bits: 7, Lanes: 1}).Valid() {
		t.Fatalf("bit width 7 should be rejected")
	}
	if (Type{Code: Int, Bits: 32, Lanes: 0}).Valid() {
		t.Fatalf("zero lanes should be rejected")
	}
	if (Type{Bits: 32, Lanes: 1}).Valid() {
		t.Fatalf("invalid code should be rejected")
	}
}

func TestCName(t *testing.T) {
	cases := map[Type]string{
		FloatScalar(32): "float",
		FloatScalar(64): "double",
		IntScalar(32):   "int32_t",
		UIntScalar(16):  "uint16_t",
	}
	for ty, want := range cases {
		if got := ty.CName(); got != want {
			t.Errorf("%s.CName() = %q, want %q", ty, got, want)
		}
	}
}

func TestFromDataType(t *testing.T) {
	ft, err := FromDataType("float")
	if err != nil || ft != FloatScalar(32) {
		t.Fatalf("FromDataType(float) = %+v, %v", ft, err)
	}
	it, err := FromDataType("int")
	if err != nil || it != IntScalar(32) {
		t.Fatalf("FromDataType(int) = %+v, %v", it, err)
	}
	if _, err := FromDataType("bogus"); err == nil {
		t.Fatalf("expected error for unknown data_type")
	}
}
