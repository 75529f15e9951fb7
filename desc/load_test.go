package desc

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"omibyte.io/csrgen/bitfield"
)

type summary struct {
	Path     string
	Register string
	Name     string
	LSB      int
	Width    int
	Reset    int64
	Access   bitfield.Access
	Enums    []string
}

func summarize(entries []Entry) []summary {
	var s []summary
	for _, e := range entries {
		s = append(s, summary{
			Path:     filepath.Base(e.Path),
			Register: e.Register,
			Name:     e.Field.Name(),
			LSB:      e.Field.LSB(),
			Width:    e.Field.Width(),
			Reset:    e.Field.Reset(),
			Access:   e.Field.Access(),
			Enums:    e.Field.EnumNames(),
		})
	}
	return s
}

func TestLoad(t *testing.T) {
	tests := []struct {
		input string
		want  []summary
	}{
		{
			"testdata/uart.yaml",
			[]summary{
				{"uart.yaml", "UART_CTRL", "EN", 0, 1, 0, bitfield.AccessRW, []string{}},
				{"uart.yaml", "UART_CTRL", "BAUD", 4, 12, 0x1A, bitfield.AccessRW, []string{}},
				{"uart.yaml", "UART_CTRL", "PARITY", 16, 2, 0, bitfield.AccessRW, []string{"NONE", "EVEN", "ODD"}},
				{"uart.yaml", "UART_STATUS", "TXDONE", 0, 1, 0, bitfield.AccessRW1C, []string{}},
				{"uart.yaml", "UART_STATUS", "RXCNT", 8, 5, 0, bitfield.AccessRO, []string{}},
			},
		},
		{
			"testdata/timer.svd",
			[]summary{
				{"timer.svd", "TMR_CTRL", "START", 0, 1, 0, bitfield.AccessWO, []string{}},
				{"timer.svd", "TMR_CTRL", "MODE", 5, 3, 2, bitfield.AccessRW, []string{"ONESHOT", "PERIODIC"}},
			},
		},
		{
			"testdata/port.atdf",
			[]summary{
				{"port.atdf", "DIR", "DIR", 0, 32, 0, bitfield.AccessRW, []string{}},
				{"port.atdf", "PINCFG", "PMUXEN", 0, 1, 0, bitfield.AccessRW, []string{}},
				{"port.atdf", "PINCFG", "INEN", 1, 1, 1, bitfield.AccessRW, []string{}},
				{"port.atdf", "PINCFG", "DRVSTR", 6, 1, 0, bitfield.AccessRW, []string{"NORMAL", "STRONG"}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			entries, err := Load(context.Background(), Options{Inputs: []string{test.input}, Validate: true})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, summarize(entries)); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadGlob(t *testing.T) {
	entries, err := Load(context.Background(), Options{Inputs: []string{"testdata/*.svd", "testdata/*.atdf"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 6 {
		t.Errorf("got %d entries, want 6", len(entries))
	}
}

func TestLoadValidate(t *testing.T) {
	entries, err := Load(context.Background(), Options{Inputs: []string{"testdata/invalid.yaml"}, Validate: true})
	if !errors.Is(err, bitfield.ErrValidation) {
		t.Fatalf("got %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("expected two joined failures, got %v", err)
	}

	if _, err := Load(context.Background(), Options{Inputs: []string{"testdata/invalid.yaml"}}); err != nil {
		t.Errorf("loading without validation failed: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(context.Background(), Options{Inputs: []string{"testdata/*.nope"}}); !errors.Is(err, ErrNoInputs) {
		t.Errorf("no match: got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, Options{Inputs: []string{"testdata/uart.yaml"}}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		fname string
		src   string
		want  error
	}{
		{"regs.json", `{}`, ErrUnsupportedFileType},
		{"device.svd", `<device><name>X</name></device>`, ErrUnsupportedRoot},
		{"empty.svd", ``, ErrUnsupportedRoot},
		{"device.atdf", `<avr-tools-device-file/>`, ErrUnsupportedRoot},
		{"bad.yaml", "bitfields:\n  - name: EN\n    width: wide\n", bitfield.ErrInvalidAttr},
		{"dup.yaml", "bitfields:\n  - name: EN\n    enum: [{name: A, value: 0}, {name: A, value: 1}]\n", bitfield.ErrEnumExists},
	}

	for _, test := range tests {
		t.Run(test.fname, func(t *testing.T) {
			if _, err := Decode(test.fname, []byte(test.src)); !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}

	if _, err := Decode("extra.yaml", []byte("registers: []\n")); err == nil {
		t.Error("expected an error for an unknown top-level key")
	}
	if _, err := Decode("null.yaml", []byte("bitfields:\n  -\n")); err == nil {
		t.Error("expected an error for an empty bitfield")
	}
}

func TestDecodeSVDFields(t *testing.T) {
	src := `<fields><field><name>A</name><lsb>3</lsb><msb>6</msb></field></fields>`
	entries, err := Decode("frag.svd", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []summary{{"frag.svd", "", "A", 3, 4, 0, bitfield.AccessRW, []string{}}}
	if diff := cmp.Diff(want, summarize(entries)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	entries, err := Load(context.Background(), Options{Inputs: []string{"testdata/uart.yaml", "testdata/timer.svd"}})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Dump(&buf, entries); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Decode("dump.yaml", buf.Bytes())
	if err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if len(reloaded) != len(entries) {
		t.Fatalf("got %d entries back, want %d", len(reloaded), len(entries))
	}
	for i := range entries {
		if !reloaded[i].Field.Equal(entries[i].Field) || reloaded[i].Register != entries[i].Register {
			t.Errorf("entry %d changed:\n%s\nwant\n%s", i, reloaded[i].Field, entries[i].Field)
		}
	}
}
