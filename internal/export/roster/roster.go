package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lovelyhome/carehome/internal/domain/models"
)

// Sheet names used by the workbook and the spreadsheet mirror.
const (
	HomesSheet     = "Homes"
	ResidentsSheet = "Residents"
)

// HomeHeader is the first row of the homes sheet.
var HomeHeader = []string{
	"ID",
	"Name",
	"Type",
	"Location",
	"Capacity",
	"Current Occupancy",
	"Contact Person",
	"Contact Number",
}

// ResidentHeader is the first row of the residents sheet.
var ResidentHeader = []string{
	"ID",
	"Home ID",
	"Home",
	"Name",
	"Age",
	"Medical Condition",
	"Checkup Frequency",
	"Last Checkup",
	"Next Checkup",
	"Notes",
}

var homeWidths = []float64{38, 28, 15, 15, 10, 18, 20, 16}

var residentWidths = []float64{38, 38, 28, 20, 6, 22, 18, 14, 14, 48}

// HomeRows converts homes to sheet rows, header first.
func HomeRows(homes []models.Home) [][]any {
	rows := make([][]any, 0, len(homes)+1)
	rows = append(rows, header(HomeHeader))
	for _, h := range homes {
		rows = append(rows, []any{
			h.ID,
			h.Name,
			string(h.Type),
			h.Location,
			h.Capacity,
			h.CurrentOccupancy,
			h.ContactPerson,
			h.ContactNumber,
		})
	}
	return rows
}

// ResidentRows converts residents to sheet rows, header first. Home names are
// resolved from homes.
func ResidentRows(residents []models.Resident, homes []models.Home) [][]any {
	names := make(map[string]string, len(homes))
	for _, h := range homes {
		names[h.ID] = h.Name
	}

	rows := make([][]any, 0, len(residents)+1)
	rows = append(rows, header(ResidentHeader))
	for _, r := range residents {
		rows = append(rows, []any{
			r.ID,
			r.HomeID,
			names[r.HomeID],
			r.Name,
			r.Age,
			r.MedicalCondition,
			string(r.CheckupFrequency),
			r.LastCheckup.String(),
			r.NextCheckup.String(),
			r.Notes,
		})
	}
	return rows
}

func header(cols []string) []any {
	row := make([]any, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}

// Workbook renders homes and residents as an xlsx file with one sheet each.
func Workbook(homes []models.Home, residents []models.Resident) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", HomesSheet); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	if _, err := f.NewSheet(ResidentsSheet); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", ResidentsSheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFF4D6"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeSheet(f, HomesSheet, HomeRows(homes), homeWidths, headerStyle); err != nil {
		return nil, err
	}
	if err := writeSheet(f, ResidentsSheet, ResidentRows(residents, homes), residentWidths, headerStyle); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any, widths []float64, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("resolve cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(widths))
	if err != nil {
		return fmt.Errorf("resolve last column: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("resolve column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set %s column width: %w", sheet, err)
		}
	}
	return nil
}
