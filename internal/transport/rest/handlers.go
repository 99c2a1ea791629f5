package rest

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/logger"
	"max.ks1230/expense-reports/internal/model/customerr"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	internalErrorMessage = "internal error"
)

type successResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	draft, err := expense.ParseDraft(
		r.FormValue("category"),
		r.FormValue("amount"),
		r.FormValue("date"),
		s.location,
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	exp, err := s.expenses.CreateExpense(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, successResponse{Status: statusSuccess, Data: exp})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, successResponse{Status: statusSuccess, Data: s.expenses.ListExpenses(r.Context())})
}

func (s *Server) handleGetReports(w http.ResponseWriter, r *http.Request) {
	reps, err := s.expenses.GetReports(r.Context(), r.PathValue("type"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Status: statusSuccess, Data: reps})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, successResponse{Status: statusSuccess, Data: s.expenses.GetAnalysis(r.Context())})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *customerr.InvalidInputError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: statusError, Message: invalid.Err})
		return
	}

	logger.Error("request failed",
		zap.String("requestID", requestIDFrom(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Status: statusError, Message: internalErrorMessage})
}

// writeJSON encodes before touching the response, so a body that cannot be
// encoded still gets a proper status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	raw, err := json.Marshal(body)
	if err != nil {
		logger.Error("failed to encode response", zap.Int("status", status), zap.Error(err))
		status = http.StatusInternalServerError
		raw = []byte(`{"status":"error","message":"` + internalErrorMessage + `"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(append(raw, '\n')); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}
