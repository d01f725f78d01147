package infra

// pdf.go — order receipt generation using go-pdf/fpdf. Receipts are
// generated on demand for the admin panel and streamed straight to the
// response, never persisted.

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
)

// WriteOrderReceipt renders an A5 receipt for an order and writes the PDF to w.
func WriteOrderReceipt(order *model.Order, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "AwesomeCrafts", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Order info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Order %s", order.OrderNumber), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, order.CreatedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Status: %s  |  Payment: %s", order.Status, order.PaymentStatus), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Billing ───────────────────────────────────────────────────────────────
	addr := order.BillingAddress
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Billed to", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4.5, addr.FullName, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4.5, addr.AddressLine1, "", 1, "L", false, 0, "")
	if addr.AddressLine2 != "" {
		pdf.CellFormat(contentW, 4.5, addr.AddressLine2, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 4.5, fmt.Sprintf("%s, %s %s, %s", addr.City, addr.State, addr.PostalCode, addr.Country), "", 1, "L", false, 0, "")
	if addr.GSTNumber != "" {
		pdf.CellFormat(contentW, 4.5, "GST: "+addr.GSTNumber, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	// ── Items ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW*0.7, 5, "Template", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.3, 5, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, tpl := range order.Templates {
		pdf.CellFormat(contentW*0.7, 5, tpl.Title, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.3, 5, tpl.SalePrice.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW*0.7, 5, "Subtotal", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.3, 5, order.TotalAmount.StringFixed(2), "T", 1, "R", false, 0, "")
	if order.DiscountAmount.IsPositive() {
		pdf.CellFormat(contentW*0.7, 5, "Discount", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.3, 5, "-"+order.DiscountAmount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.7, 6, "Total", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.3, 6, order.FinalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
