package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/amr-khaled0p/lazez2/internal/presentation/http/dto/response"
	"github.com/amr-khaled0p/lazez2/pkg/printer"
)

// PrinterHandler exposes receipt printer status and test printing
type PrinterHandler struct {
	printer     printer.Printer
	printerType string
	width       int
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(p printer.Printer, printerType string, width int) *PrinterHandler {
	if width <= 0 {
		width = 32
	}
	return &PrinterHandler{printer: p, printerType: printerType, width: width}
}

// GetStatus returns printer connection status
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", gin.H{
		"configured": h.printerType != "none" && h.printerType != "",
		"connected":  h.printer.IsConnected(),
		"type":       h.printerType,
	})
}

// TestPrint sends a test page to the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	doc := printer.NewDocument(h.width)
	doc.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.SizeDouble).
		Line("PRINTER TEST").
		Size(printer.SizeNormal).
		Bold(false).
		Align(printer.AlignLeft).
		Rule().
		ItemRow(1, "Test Item", "10").
		ItemRow(2, "Another Item", "20").
		Rule().
		Row("TOTAL:", "30").
		Feed(3).
		Cut()

	if err := h.printer.Print(doc.Bytes()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page sent to printer", nil)
}
