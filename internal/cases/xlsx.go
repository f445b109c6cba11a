package cases

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gofault/internal/fault"
)

// Header is the expected first row of a case spreadsheet
var Header = []string{"name", "type", "voltage_kv", "z1", "z2", "z0"}

// LoadXLSX reads cases from the first sheet of a workbook. The first row is
// a header; each following row is name, type, voltage_kv, z1, z2, z0.
// Blank rows are skipped.
func LoadXLSX(path string) (*Set, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: sheet %q has no case rows", path, sheet)
	}

	set := &Set{Project: sheet}
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		if len(row) < 4 {
			return nil, fmt.Errorf("%s: row %d: expected at least name, type, voltage_kv, z1", path, i+2)
		}
		set.Cases = append(set.Cases, Case{
			Name:      cell(row, 0),
			Type:      cell(row, 1),
			VoltageKV: fault.RawValue(cell(row, 2)),
			Z1:        fault.RawValue(cell(row, 3)),
			Z2:        fault.RawValue(cell(row, 4)),
			Z0:        fault.RawValue(cell(row, 5)),
		})
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// WriteXLSX saves the outcomes of a case set as a workbook with the input
// columns followed by the results.
func WriteXLSX(path string, s *Set, outcomes []Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Cases"
	if s.Project != "" {
		sheet = sheetName(s.Project)
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	header := append(append([]string{}, Header...), "current_a", "current_ka", "power_mva", "error")
	for col, h := range header {
		if err := setCell(f, sheet, col, 1, h); err != nil {
			return err
		}
	}

	for i, o := range outcomes {
		r := i + 2
		values := []interface{}{
			o.Case.Name, o.Case.Type,
			string(o.Case.VoltageKV), string(o.Case.Z1), string(o.Case.Z2), string(o.Case.Z0),
		}
		if o.Err != nil {
			values = append(values, "", "", "", o.Err.Error())
		} else {
			values = append(values, o.Result.CurrentA, o.Result.CurrentKA, o.Result.PowerMVA, "")
		}
		for col, v := range values {
			if err := setCell(f, sheet, col, r, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func setCell(f *excelize.File, sheet string, col, row int, v interface{}) error {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, name, v)
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// maxSheetName is the longest sheet name Excel accepts, in characters
const maxSheetName = 31

// sheetName turns a project name into a valid sheet name: characters Excel
// rejects become underscores and the result is cut to maxSheetName runes.
func sheetName(project string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, project)
	name = strings.Trim(truncate(name, maxSheetName), "'")
	if name == "" {
		return "Cases"
	}
	return name
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
