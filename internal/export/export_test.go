package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"kollabee/seller-portal/seller-portal-backend/internal/seller"
)

func TestProfilePDFRendersHeader(t *testing.T) {
	row := &seller.Seller{
		BusinessName:       "Acme Textiles",
		BusinessCategories: []string{"Apparel"},
		ServicesProvided:   []string{"Cut and sew"},
		Approved:           true,
	}

	data, err := ProfilePDF(row)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestProfilePDFHandlesEmptyProfile(t *testing.T) {
	data, err := ProfilePDF(&seller.Seller{})

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestDirectoryXLSXRoundTrip(t *testing.T) {
	rows := []DirectoryRow{
		{
			BusinessName:       "Acme Textiles",
			ContactEmail:       "hello@acme.example",
			BusinessCategories: []string{"Apparel", "Footwear"},
			Approved:           true,
			CreatedAt:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			BusinessName: "Beta Goods",
			CreatedAt:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	data, err := DirectoryXLSX(rows)
	assert.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer file.Close()

	name, err := file.GetCellValue(directorySheet, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Acme Textiles", name)

	categories, err := file.GetCellValue(directorySheet, "E2")
	assert.NoError(t, err)
	assert.Equal(t, "Apparel, Footwear", categories)
}

func TestDirectoryXLSXEmpty(t *testing.T) {
	data, err := DirectoryXLSX(nil)

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}
