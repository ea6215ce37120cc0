package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"kollabee/seller-portal/seller-portal-backend/internal/seller"
)

// ProfilePDF renders a seller's profile as a one-page summary document.
func ProfilePDF(s *seller.Seller) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Seller Profile", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	name := s.BusinessName
	if name == "" {
		name = "Unnamed seller"
	}
	pdf.CellFormat(0, 12, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)

	writeSection(pdf, "About", []pdfField{
		{"Description", s.BusinessDescription},
		{"Website", s.WebsiteLink},
		{"Address", s.BusinessAddress},
		{"Categories", strings.Join(s.BusinessCategories, ", ")},
	})
	writeSection(pdf, "Operations", []pdfField{
		{"Services", strings.Join(s.ServicesProvided, ", ")},
		{"Production model", s.ProductionModel},
		{"Countries", strings.Join(s.ProductionCountries, ", ")},
		{"Minimum order", s.MinimumOrderQuantity},
		{"Timeline", s.ProductionTimeline},
	})
	writeSection(pdf, "Credentials", []pdfField{
		{"Certification types", strings.Join(s.CertificationTypes, ", ")},
		{"Notable clients", strings.Join(s.NotableClients, ", ")},
	})

	status := "Draft"
	if s.Approved {
		status = "Approved"
	} else if s.ApprovalRequested {
		status = "Pending review"
	}
	writeSection(pdf, "Status", []pdfField{{"Approval", status}})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render profile pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfField struct {
	label string
	value string
}

func writeSection(pdf *gofpdf.Fpdf, title string, fields []pdfField) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(242, 242, 242)
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 6, f.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, f.value, "", "L", false)
	}
	pdf.Ln(3)
}
