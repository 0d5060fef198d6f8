package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildExcel renders the report as a workbook with one details sheet and one
// statistics sheet per included collection.
func BuildExcel(snap Snapshot, kind Kind) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if kind.includeLeads() {
		rows := make([][]interface{}, 0, len(snap.Leads))
		for _, lead := range snap.Leads {
			rows = append(rows, []interface{}{
				lead.FirstName,
				lead.LastName,
				lead.Email,
				lead.Phone,
				string(lead.PropertyType),
				string(lead.Requirement),
				lead.Budget,
				lead.Status.Label(),
				lead.Source.Label(),
				lead.City,
				lead.State,
				lead.CreatedAt.Format("2006-01-02"),
			})
		}
		if err := writeSheet(f, "Leads",
			[]string{"First Name", "Last Name", "Email", "Phone", "Property Type", "Requirement", "Budget", "Status", "Source", "City", "State", "Created Date"},
			rows); err != nil {
			return nil, err
		}

		if err := writeSheet(f, "Lead Statistics",
			[]string{"Status", "Count"},
			[][]interface{}{
				{"Not Started", snap.LeadStats.NotStarted},
				{"In Progress", snap.LeadStats.InProgress},
				{"Complete", snap.LeadStats.Complete},
				{"Total", snap.LeadStats.Total()},
			}); err != nil {
			return nil, err
		}
	}

	if kind.includeProperties() {
		rows := make([][]interface{}, 0, len(snap.Properties))
		for _, property := range snap.Properties {
			rows = append(rows, []interface{}{
				property.Title,
				string(property.PropertyType),
				string(property.ListingType),
				property.Price,
				string(property.PriceUnit),
				property.Address,
				property.City,
				property.State,
				orNA(property.Bedrooms),
				orNA(property.Bathrooms),
				property.SquareFootage,
				property.Status.Label(),
				property.CreatedAt.Format("2006-01-02"),
			})
		}
		if err := writeSheet(f, "Properties",
			[]string{"Title", "Type", "Listing Type", "Price", "Price Unit", "Address", "City", "State", "Bedrooms", "Bathrooms", "Square Footage", "Status", "Created Date"},
			rows); err != nil {
			return nil, err
		}

		if err := writeSheet(f, "Property Statistics",
			[]string{"Status", "Count"},
			[][]interface{}{
				{"Available", snap.PropertyStats.Available},
				{"Under Contract", snap.PropertyStats.UnderContract},
				{"Sold", snap.PropertyStats.Sold},
				{"Rented", snap.PropertyStats.Rented},
			}); err != nil {
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("dropping default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, headers []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return fmt.Errorf("sheet %s header: %w", name, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i+2, err)
		}
	}
	return nil
}
