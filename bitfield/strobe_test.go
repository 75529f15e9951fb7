package bitfield

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestByteStrobes(t *testing.T) {
	tests := []struct {
		name  string
		lsb   int
		width int
		want  Strobes
	}{
		{
			"inside one lane",
			0, 4,
			Strobes{{Lane: 0, BFLSB: 0, BFMSB: 3, WDataLSB: 0, WDataMSB: 3}},
		},
		{
			"straddles two lanes",
			4, 8,
			Strobes{
				{Lane: 0, BFLSB: 0, BFMSB: 3, WDataLSB: 4, WDataMSB: 7},
				{Lane: 1, BFLSB: 4, BFMSB: 7, WDataLSB: 8, WDataMSB: 11},
			},
		},
		{
			"scalar",
			6, 1,
			Strobes{{Lane: 0, BFLSB: 0, BFMSB: 0, WDataLSB: 6, WDataMSB: 6}},
		},
		{
			"byte aligned",
			16, 8,
			Strobes{{Lane: 2, BFLSB: 0, BFMSB: 7, WDataLSB: 16, WDataMSB: 23}},
		},
		{
			"mid lane start over three lanes",
			5, 14,
			Strobes{
				{Lane: 0, BFLSB: 0, BFMSB: 2, WDataLSB: 5, WDataMSB: 7},
				{Lane: 1, BFLSB: 3, BFMSB: 10, WDataLSB: 8, WDataMSB: 15},
				{Lane: 2, BFLSB: 11, BFMSB: 13, WDataLSB: 16, WDataMSB: 18},
			},
		},
		{
			"ends on lane boundary",
			3, 13,
			Strobes{
				{Lane: 0, BFLSB: 0, BFMSB: 4, WDataLSB: 3, WDataMSB: 7},
				{Lane: 1, BFLSB: 5, BFMSB: 12, WDataLSB: 8, WDataMSB: 15},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := New(WithName("f"), WithLSB(test.lsb), WithWidth(test.width))
			if diff := cmp.Diff(test.want, b.ByteStrobes()); diff != "" {
				t.Errorf("ByteStrobes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestByteStrobesDict(t *testing.T) {
	b := New(WithName("f"), WithLSB(4), WithWidth(8))
	got := map[int]map[string]int{}
	for lane, strb := range b.ByteStrobes().Map() {
		got[lane] = strb.AsDict()
	}

	want := map[int]map[string]int{
		0: {"bf_lsb": 0, "bf_msb": 3, "wdata_lsb": 4, "wdata_msb": 7},
		1: {"bf_lsb": 4, "bf_msb": 7, "wdata_lsb": 8, "wdata_msb": 11},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestByteStrobesCoverField(t *testing.T) {
	for width := 1; width <= 64; width++ {
		for lsb := 0; lsb < 256; lsb++ {
			b := New(WithName("f"), WithLSB(lsb), WithWidth(width))
			strb := b.ByteStrobes()

			var wantLanes []int
			for i := lsb / 8; i <= b.MSB()/8; i++ {
				wantLanes = append(wantLanes, i)
			}
			if diff := cmp.Diff(wantLanes, strb.Lanes()); diff != "" {
				t.Fatalf("lsb=%d width=%d: lanes (-want +got):\n%s", lsb, width, diff)
			}

			next := lsb
			for _, s := range strb {
				if s.BFLSB > s.BFMSB || s.WDataLSB > s.WDataMSB {
					t.Fatalf("lsb=%d width=%d: inverted range %+v", lsb, width, s)
				}
				if s.BFLSB != s.WDataLSB-lsb || s.BFMSB != s.WDataMSB-lsb {
					t.Fatalf("lsb=%d width=%d: field offsets disagree %+v", lsb, width, s)
				}
				if s.WDataLSB != next {
					t.Fatalf("lsb=%d width=%d: lane %d starts at %d, want %d", lsb, width, s.Lane, s.WDataLSB, next)
				}
				if s.WDataLSB/8 != s.Lane || s.WDataMSB/8 != s.Lane {
					t.Fatalf("lsb=%d width=%d: %+v leaves its lane", lsb, width, s)
				}
				next = s.WDataMSB + 1
			}
			if next != b.MSB()+1 {
				t.Fatalf("lsb=%d width=%d: lanes end at %d, want %d", lsb, width, next-1, b.MSB())
			}
		}
	}
}

func TestStrobesLane(t *testing.T) {
	strb := New(WithLSB(12), WithWidth(10)).ByteStrobes()

	if _, ok := strb.Lane(0); ok {
		t.Error("lane 0 should not be present")
	}
	if _, ok := strb.Lane(3); ok {
		t.Error("lane 3 should not be present")
	}

	s, ok := strb.Lane(2)
	if !ok {
		t.Fatal("lane 2 missing")
	}
	if s.WDataLSB != 16 || s.WDataMSB != 21 || s.Width() != 6 {
		t.Errorf("unexpected lane 2: %+v", s)
	}
	if s.Mask() != 0x3F {
		t.Errorf("Mask() = %#x, want 0x3f", s.Mask())
	}

	s, _ = strb.Lane(1)
	if s.Mask() != 0xF0 {
		t.Errorf("Mask() = %#x, want 0xf0", s.Mask())
	}

	if _, ok := Strobes(nil).Lane(0); ok {
		t.Error("empty strobes reported a lane")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := [][3]int{{7, 8, 0}, {8, 8, 1}, {-1, 8, -1}, {-8, 8, -1}, {-9, 8, -2}, {0, 8, 0}}
	for _, test := range tests {
		if got := floorDiv(test[0], test[1]); got != test[2] {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", test[0], test[1], got, test[2])
		}
	}
}
