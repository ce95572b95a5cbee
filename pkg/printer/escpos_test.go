package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentInitializes(t *testing.T) {
	doc := NewDocument(32)
	assert.Equal(t, []byte{0x1B, '@'}, doc.Bytes())

	// Non-positive widths fall back to 58mm paper
	doc = NewDocument(0)
	assert.Equal(t, 32, doc.width)
}

func TestRuleSpansWidth(t *testing.T) {
	doc := NewDocument(16)
	doc.Rule()
	assert.Contains(t, string(doc.Bytes()), strings.Repeat("-", 16)+"\n")
}

func TestRowRightAlignsValue(t *testing.T) {
	doc := NewDocument(16)
	doc.Row("Total:", "230")
	assert.Contains(t, string(doc.Bytes()), "Total:       230\n")

	// Overlong rows still keep one space between label and value
	doc = NewDocument(8)
	doc.Row("Subtotal:", "12345")
	assert.Contains(t, string(doc.Bytes()), "Subtotal: 12345\n")
}

func TestItemRowFormat(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemRow(2, "Wagyu Gold Burger", "380")
	assert.Contains(t, string(doc.Bytes()), "2x Wagyu Gold Burger")
}

func TestCutCommand(t *testing.T) {
	doc := NewDocument(32)
	doc.Cut()
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte{0x1D, 'V', 0x00}))
}
