package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
	"github.com/cloud-ru/mcp-mortgage-go/internal/tools"
	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

const welcomeMessage = "Welcome to the Mortgage Calculator!"

// Handler HTTP обработчики калькулятора
type Handler struct {
	calc   *tools.Calculator
	logger *slog.Logger
}

// NewHandler создает Handler
func NewHandler(calc *tools.Calculator, logger *slog.Logger) *Handler {
	return &Handler{calc: calc, logger: logger}
}

// Index приветствие на корневом пути
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, welcomeMessage)
}

// Schedule POST /schedule: график платежей в JSON
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	schedule, err := h.calc.Schedule(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, schedule)
}

// Overpayment POST /overpayment: общая сумма выплат текстом
func (h *Handler) Overpayment(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	total, err := h.calc.TotalAmount(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Total amount: %s", utils.FormatAmount(total))
}

// Compare POST /compare: сравнение схем погашения
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.calc.Compare(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, result)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (calculations.MortgageRequest, bool) {
	var req calculations.MortgageRequest

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if tools.ErrorType(err) == "calculation" {
		status = http.StatusInternalServerError
	}
	http.Error(w, err.Error(), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
