package bitfield

import "golang.org/x/exp/slices"

// Access is the hardware access mode of a field. The behaviour behind each
// mode belongs to whatever generator consumes the field.
type Access string

const (
	AccessRW   Access = "rw"   // read-write
	AccessRW1C Access = "rw1c" // write 1 to clear
	AccessRW1S Access = "rw1s" // write 1 to set
	AccessRW1T Access = "rw1t" // write 1 to toggle
	AccessRO   Access = "ro"   // read-only
	AccessROC  Access = "roc"  // read-only, clear on read
	AccessROLL Access = "roll" // read-only, latch low
	AccessROLH Access = "rolh" // read-only, latch high
	AccessWO   Access = "wo"   // write-only
	AccessWOSC Access = "wosc" // write-only, self clearing
)

var accessModes = []Access{
	AccessRW, AccessRW1C, AccessRW1S, AccessRW1T,
	AccessRO, AccessROC, AccessROLL, AccessROLH,
	AccessWO, AccessWOSC,
}

// AccessModes returns every recognized access mode.
func AccessModes() []Access {
	return slices.Clone(accessModes)
}

// Valid reports whether a is one of the recognized access modes.
func (a Access) Valid() bool {
	return slices.Contains(accessModes, a)
}

func (a Access) String() string {
	return string(a)
}
