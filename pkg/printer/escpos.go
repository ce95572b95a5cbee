package printer

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	SizeNormal = 0x00
	SizeDouble = 0x11 // double width + double height
)

// Document builds an ESC/POS byte stream for thermal receipt printers.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm paper, 48 for 80mm)
}

// NewDocument creates an initialized ESC/POS document with the given
// character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{esc, '@'})
	return d
}

// Align sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) Align(align int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(align)})
	return d
}

// Bold enables or disables emphasized text.
func (d *Document) Bold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// Size sets the character size (SizeNormal or SizeDouble).
func (d *Document) Size(size byte) *Document {
	d.buf.Write([]byte{gs, '!', size})
	return d
}

// Line writes a line of text followed by a line feed.
func (d *Document) Line(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// Linef writes a formatted line of text followed by a line feed.
func (d *Document) Linef(format string, args ...interface{}) *Document {
	return d.Line(fmt.Sprintf(format, args...))
}

// Rule prints a full-width separator line.
func (d *Document) Rule() *Document {
	return d.Line(strings.Repeat("-", d.width))
}

// Row prints a left-aligned label and a right-aligned value on one line.
func (d *Document) Row(label, value string) *Document {
	pad := d.width - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(label)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(value)
	d.buf.WriteByte(lf)
	return d
}

// ItemRow prints a receipt line: "2x Wagyu Gold Burger" with the total
// right-aligned.
func (d *Document) ItemRow(qty int, name, total string) *Document {
	return d.Row(fmt.Sprintf("%dx %s", qty, name), total)
}

// Feed sends n line feeds.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// Cut sends the paper cut command.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x00})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
