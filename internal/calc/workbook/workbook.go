// Package workbook moves calculator inputs and results in and out of xlsx
// files. Sheet "Reliability" holds P0,P1 rows; sheet "Loss" holds λ,T,C rows.
// The first row of each sheet is a header.
package workbook

import (
	"io"
	"strings"

	"Powergrid/internal/calc/loss"
	"Powergrid/internal/calc/reliability"
	"Powergrid/internal/form"
	"Powergrid/internal/utils"

	"github.com/xuri/excelize/v2"
)

const (
	SheetReliability = "Reliability"
	SheetLoss        = "Loss"
)

// rawValues reads stored numbers rather than their formatted text, so a
// probability shown as "5.00%" still imports as 0.05.
var rawValues = excelize.Options{RawCellValue: true}

var (
	reliabilityHeader = []interface{}{"P0", "P1", "Single circuit", "Double circuit"}
	lossHeader        = []interface{}{"Failure rate, 1/yr", "Downtime, h", "Cost per hour", "Loss"}
)

type ReliabilityRow struct {
	Row    int                `json:"row"`
	Input  reliability.Input  `json:"input"`
	Result reliability.Result `json:"result"`
}

type LossRow struct {
	Row    int         `json:"row"`
	Input  loss.Input  `json:"input"`
	Result loss.Result `json:"result"`
}

type Book struct {
	Reliability []ReliabilityRow `json:"reliability"`
	Loss        []LossRow        `json:"loss"`
}

// Inputs is what Write needs: only the inputs, results are recomputed.
type Inputs struct {
	Reliability []reliability.Input `json:"reliability"`
	Loss        []loss.Input        `json:"loss"`
}

// Read parses a workbook. Cells go through form.ParseNumeric, so text that
// is not a number counts as zero just as it does on the form. Missing
// sheets give empty sections; fully blank rows are skipped.
func Read(r io.Reader) (Book, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Book{}, utils.NewAppError("workbook.Read", "open workbook", err)
	}
	defer f.Close()

	var book Book
	if name := findSheet(f, SheetReliability); name != "" {
		rows, err := f.GetRows(name, rawValues)
		if err != nil {
			return Book{}, utils.NewAppError("workbook.Read", "read sheet "+name, err)
		}
		for _, row := range dataRows(rows) {
			in := reliability.Input{P0: cell(row.cells, 0), P1: cell(row.cells, 1)}
			book.Reliability = append(book.Reliability, ReliabilityRow{
				Row:    row.num,
				Input:  in,
				Result: reliability.Calculate(in),
			})
		}
	}
	if name := findSheet(f, SheetLoss); name != "" {
		rows, err := f.GetRows(name, rawValues)
		if err != nil {
			return Book{}, utils.NewAppError("workbook.Read", "read sheet "+name, err)
		}
		for _, row := range dataRows(rows) {
			in := loss.Input{FailureRate: cell(row.cells, 0), DowntimeH: cell(row.cells, 1), CostPerHour: cell(row.cells, 2)}
			book.Loss = append(book.Loss, LossRow{
				Row:    row.num,
				Input:  in,
				Result: loss.Calculate(in),
			})
		}
	}
	return book, nil
}

// Write builds a workbook with both sheets, inputs followed by results.
func Write(in Inputs) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetReliability); err != nil {
		f.Close()
		return nil, utils.NewAppError("workbook.Write", "rename sheet", err)
	}
	if err := f.SetSheetRow(SheetReliability, "A1", &reliabilityHeader); err != nil {
		f.Close()
		return nil, utils.NewAppError("workbook.Write", "write header", err)
	}
	for i, item := range in.Reliability {
		res := reliability.Calculate(item)
		row := []interface{}{item.P0, item.P1, res.SingleCircuit, res.DoubleCircuit}
		if err := f.SetSheetRow(SheetReliability, axis(i+2), &row); err != nil {
			f.Close()
			return nil, utils.NewAppError("workbook.Write", "write reliability row", err)
		}
	}

	if _, err := f.NewSheet(SheetLoss); err != nil {
		f.Close()
		return nil, utils.NewAppError("workbook.Write", "add sheet", err)
	}
	if err := f.SetSheetRow(SheetLoss, "A1", &lossHeader); err != nil {
		f.Close()
		return nil, utils.NewAppError("workbook.Write", "write header", err)
	}
	for i, item := range in.Loss {
		res := loss.Calculate(item)
		row := []interface{}{item.FailureRate, item.DowntimeH, item.CostPerHour, res.Loss}
		if err := f.SetSheetRow(SheetLoss, axis(i+2), &row); err != nil {
			f.Close()
			return nil, utils.NewAppError("workbook.Write", "write loss row", err)
		}
	}
	return f, nil
}

func findSheet(f *excelize.File, want string) string {
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(name), want) {
			return name
		}
	}
	return ""
}

type sheetRow struct {
	num   int // 1-based, as shown by spreadsheet tools
	cells []string
}

// dataRows drops the header and blank rows.
func dataRows(rows [][]string) []sheetRow {
	var out []sheetRow
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		out = append(out, sheetRow{num: i + 1, cells: rows[i]})
	}
	return out
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, i int) float64 {
	if i >= len(row) {
		return 0
	}
	return form.ParseNumeric(row[i])
}

func axis(row int) string {
	name, _ := excelize.CoordinatesToCellName(1, row)
	return name
}
