package bitfield

// ByteStrobe relates one byte lane of the write-data bus to the field.
// WDataLSB and WDataMSB are register bit positions inside the lane that the
// field occupies; BFLSB and BFMSB are the same range relative to the
// field's own bit 0.
type ByteStrobe struct {
	Lane     int
	BFLSB    int
	BFMSB    int
	WDataLSB int
	WDataMSB int
}

func (s ByteStrobe) AsDict() map[string]int {
	return map[string]int{
		"bf_lsb":    s.BFLSB,
		"bf_msb":    s.BFMSB,
		"wdata_lsb": s.WDataLSB,
		"wdata_msb": s.WDataMSB,
	}
}

// Width returns the number of field bits carried by the lane.
func (s ByteStrobe) Width() int {
	return s.WDataMSB - s.WDataLSB + 1
}

// Mask returns the lane-local mask of the bits the field occupies.
func (s ByteStrobe) Mask() uint8 {
	lo := s.WDataLSB - s.Lane*8
	return uint8(((1 << s.Width()) - 1) << lo)
}

// Strobes holds one ByteStrobe per lane, lowest lane first.
type Strobes []ByteStrobe

// Lanes returns the lane indexes in ascending order.
func (s Strobes) Lanes() []int {
	lanes := make([]int, len(s))
	for i, strb := range s {
		lanes[i] = strb.Lane
	}
	return lanes
}

// Lane returns the entry for lane i.
func (s Strobes) Lane(i int) (ByteStrobe, bool) {
	if len(s) == 0 || i < s[0].Lane || i > s[len(s)-1].Lane {
		return ByteStrobe{}, false
	}
	return s[i-s[0].Lane], true
}

// Map indexes the entries by lane.
func (s Strobes) Map() map[int]ByteStrobe {
	m := make(map[int]ByteStrobe, len(s))
	for _, strb := range s {
		m[strb.Lane] = strb
	}
	return m
}

// ByteStrobes splits the field into the byte lanes it overlaps.
func (b *BitField) ByteStrobes() Strobes {
	msb := b.MSB()
	first := floorDiv(b.lsb, 8)
	last := floorDiv(msb, 8)

	var strb Strobes
	for i := first; i <= last; i++ {
		wdataLSB := i * 8
		if i == first {
			wdataLSB = b.lsb
		}
		wdataMSB := (i+1)*8 - 1
		if wdataMSB > msb {
			wdataMSB = msb
		}

		strb = append(strb, ByteStrobe{
			Lane:     i,
			BFLSB:    wdataLSB - b.lsb,
			BFMSB:    wdataMSB - b.lsb,
			WDataLSB: wdataLSB,
			WDataMSB: wdataMSB,
		})
	}
	return strb
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
