package workbook

import (
	"encoding/json"
	"net/http"

	"Powergrid/internal/metrics"
	"Powergrid/internal/utils"

	"go.uber.org/zap"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	xlsxMIME      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	Log *zap.Logger
}

type ImportResult struct {
	Count int  `json:"count"`
	Book  Book `json:"book"`
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "File too big", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	book, err := Read(file)
	if err != nil {
		h.logger().Info("rejected workbook upload", zap.Error(err))
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	metrics.ObserveCalculations(metrics.KindReliability, "workbook", len(book.Reliability))
	metrics.ObserveCalculations(metrics.KindLoss, "workbook", len(book.Loss))

	utils.RespondJSON(w, http.StatusOK, ImportResult{
		Count: len(book.Reliability) + len(book.Loss),
		Book:  book,
	})
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input Inputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	f, err := Write(input)
	if err != nil {
		h.logger().Error("build workbook", zap.Error(err))
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.logger().Error("serialize workbook", zap.Error(err))
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		return
	}
	metrics.ObserveCalculations(metrics.KindReliability, "workbook", len(input.Reliability))
	metrics.ObserveCalculations(metrics.KindLoss, "workbook", len(input.Loss))

	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", "attachment; filename=\"powergrid.xlsx\"")
	w.Write(buf.Bytes())
}

func (h *Handler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
