package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/propertypal/pms-backend/models"
)

func sampleSnapshot() Snapshot {
	leads := models.SampleLeads()
	properties := models.SampleProperties()

	snap := Snapshot{
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Leads:       leads,
		Properties:  properties,
	}
	for _, lead := range leads {
		switch lead.Status {
		case models.LeadNotStarted:
			snap.LeadStats.NotStarted++
		case models.LeadInProgress:
			snap.LeadStats.InProgress++
		case models.LeadComplete:
			snap.LeadStats.Complete++
		}
	}
	for _, property := range properties {
		switch property.Status {
		case models.PropertyAvailable:
			snap.PropertyStats.Available++
		case models.PropertyUnderContract:
			snap.PropertyStats.UnderContract++
		case models.PropertySold:
			snap.PropertyStats.Sold++
		case models.PropertyRented:
			snap.PropertyStats.Rented++
		}
	}
	return snap
}

func TestParseKind(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Kind
	}{
		{"leads", KindLeads},
		{"properties", KindProperties},
		{"all", KindAll},
		{"", KindAll},
	} {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, "ParseKind(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("everything")
	require.Error(t, err)
}

func TestBuildPDF(t *testing.T) {
	data, err := BuildPDF(sampleSnapshot(), KindAll)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output is not a PDF")
	assert.Greater(t, len(data), 1000)
}

func TestBuildPDFLeadsOnly(t *testing.T) {
	data, err := BuildPDF(sampleSnapshot(), KindLeads)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildExcel(t *testing.T) {
	data, err := BuildExcel(sampleSnapshot(), KindAll)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{"Leads", "Lead Statistics", "Properties", "Property Statistics"}, sheets)

	// First data row of the leads sheet is the first seed lead.
	first, err := f.GetCellValue("Leads", "A2")
	require.NoError(t, err)
	assert.Equal(t, "John", first)

	total, err := f.GetCellValue("Lead Statistics", "B5")
	require.NoError(t, err)
	assert.Equal(t, "5", total)
}

func TestBuildExcelLeadsOnly(t *testing.T) {
	data, err := BuildExcel(sampleSnapshot(), KindLeads)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Leads", "Lead Statistics"}, f.GetSheetList())
}

func TestFormatPrice(t *testing.T) {
	p := models.Property{Price: 2500, PriceUnit: models.PriceMonthly}
	assert.Equal(t, "$2500/month", formatPrice(p))

	p.PriceUnit = models.PriceTotal
	assert.Equal(t, "$2500", formatPrice(p))

	p.PriceUnit = models.PriceYearly
	assert.Equal(t, "$2500/year", formatPrice(p))
}
