package workbook

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Powergrid/internal/calc/loss"
	"Powergrid/internal/calc/reliability"
	"Powergrid/internal/display"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"
)

func TestWriteThenRead(t *testing.T) {
	f, err := Write(Inputs{
		Reliability: []reliability.Input{{P0: 0.1, P1: 0.2}, {P0: 0.5, P1: 0.5}},
		Loss:        []loss.Input{{FailureRate: 2, DowntimeH: 3, CostPerHour: 100}},
	})
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	book, err := Read(buf)
	require.NoError(t, err)

	require.Len(t, book.Reliability, 2)
	assert.Equal(t, 2, book.Reliability[0].Row)
	assert.Equal(t, reliability.Input{P0: 0.1, P1: 0.2}, book.Reliability[0].Input)
	assert.InDelta(t, 0.98, book.Reliability[0].Result.DoubleCircuit, 1e-12)
	assert.InDelta(t, 0.75, book.Reliability[1].Result.DoubleCircuit, 1e-12)

	require.Len(t, book.Loss, 1)
	assert.Equal(t, 600.0, book.Loss[0].Result.Loss)
}

func TestReadMalformedCellsBecomeZero(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "reliability"))
	require.NoError(t, f.SetSheetRow("reliability", "A1", &[]interface{}{"P0", "P1"}))
	require.NoError(t, f.SetSheetRow("reliability", "A2", &[]interface{}{"", "x"}))
	require.NoError(t, f.SetSheetRow("reliability", "A4", &[]interface{}{"0.1"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	book, err := Read(buf)
	require.NoError(t, err)
	assert.Empty(t, book.Loss)

	require.Len(t, book.Reliability, 2, "blank row 3 is skipped")
	assert.Equal(t, 2, book.Reliability[0].Row)
	assert.Equal(t, reliability.Result{SingleCircuit: 1, DoubleCircuit: 1}, book.Reliability[0].Result)
	assert.Equal(t, 4, book.Reliability[1].Row)
	assert.Equal(t, 0.1, book.Reliability[1].Input.P0)
	assert.Equal(t, 0.0, book.Reliability[1].Input.P1)
}

func TestReadIgnoresNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", SheetReliability))
	require.NoError(t, f.SetSheetRow(SheetReliability, "A1", &[]interface{}{"P0", "P1"}))
	require.NoError(t, f.SetCellValue(SheetReliability, "A2", 0.05))
	require.NoError(t, f.SetCellValue(SheetReliability, "B2", 1234.5))

	percent, err := f.NewStyle(&excelize.Style{NumFmt: 10}) // 0.00%
	require.NoError(t, err)
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(SheetReliability, "A2", "A2", percent))
	require.NoError(t, f.SetCellStyle(SheetReliability, "B2", "B2", thousands))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	book, err := Read(buf)
	require.NoError(t, err)
	require.Len(t, book.Reliability, 1)
	assert.Equal(t, reliability.Input{P0: 0.05, P1: 1234.5}, book.Reliability[0].Input)
	assert.Equal(t, "95.0%", display.Percent(book.Reliability[0].Result.SingleCircuit))
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(strings.NewReader("not a zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workbook.Read")
}

func TestImportHandler(t *testing.T) {
	f, err := Write(Inputs{Loss: []loss.Input{{FailureRate: 1, DowntimeH: 2, CostPerHour: 3}}})
	require.NoError(t, err)
	xlsx, err := f.WriteToBuffer()
	require.NoError(t, err)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "in.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tools/workbook/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	(&Handler{Log: zaptest.NewLogger(t)}).Import(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res ImportResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 6.0, res.Book.Loss[0].Result.Loss)
}

func TestImportHandlerMissingFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tools/workbook/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	(&Handler{}).Import(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tools/workbook/export",
		strings.NewReader(`{"reliability":[{"p0":0.1,"p1":0.2}],"loss":[{"failure_rate":2,"downtime_h":3,"cost_per_hour":100}]}`))
	w := httptest.NewRecorder()

	(&Handler{Log: zaptest.NewLogger(t)}).Export(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxMIME, w.Header().Get("Content-Type"))

	book, err := Read(w.Body)
	require.NoError(t, err)
	require.Len(t, book.Reliability, 1)
	require.Len(t, book.Loss, 1)
	assert.Equal(t, 600.0, book.Loss[0].Result.Loss)
}
