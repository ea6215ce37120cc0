package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const directorySheet = "Sellers"

// DirectoryXLSX renders the seller directory as a spreadsheet.
func DirectoryXLSX(rows []DirectoryRow) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", directorySheet)

	headers := []string{
		"Business Name", "Contact Email", "Website", "Address",
		"Categories", "Services", "Production Countries", "Approved", "Joined",
	}
	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(directorySheet, cell, header)
		file.SetCellStyle(directorySheet, cell, cell, headerStyle)
	}

	for i, row := range rows {
		values := []any{
			row.BusinessName,
			row.ContactEmail,
			row.WebsiteLink,
			row.BusinessAddress,
			strings.Join(row.BusinessCategories, ", "),
			strings.Join(row.ServicesProvided, ", "),
			strings.Join(row.ProductionCountries, ", "),
			row.Approved,
			row.CreatedAt.Format("2006-01-02"),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			file.SetCellValue(directorySheet, cell, value)
		}
	}

	if len(rows) > 0 {
		lastCell, _ := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
		file.AutoFilter(directorySheet, "A1:"+lastCell, nil)
	}
	file.SetPanes(directorySheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render directory xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
