package adaptor

import (
	"encoding/json"
	"net/http"

	"secure-portal/internal/dto/request"
	"secure-portal/internal/dto/response"
	"secure-portal/internal/usecase"
	"secure-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/payments
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment")
		return
	}

	utils.ResponseSuccess(w, response.PaymentCreatedResponse{OK: true, Payment: *payment})
}

// ListOwn handles GET /api/payments
func (h *PaymentHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	payments, err := h.service.ListOwn(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, response.PaymentListResponse{OK: true, Payments: payments})
}

// ListAll handles GET /api/admin/payments (employee only)
func (h *PaymentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all payments")
		return
	}

	utils.ResponseSuccess(w, response.PaymentListResponse{OK: true, Payments: payments})
}

// Verify handles PATCH /api/payments/{id}/verify (employee only)
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	paymentID := chi.URLParam(r, "id")

	payment, message, err := h.service.VerifyPayment(r.Context(), paymentID, req.Status, reviewerID)
	if err != nil {
		handleServiceError(w, h.log, err, "verify payment")
		return
	}

	utils.ResponseSuccess(w, response.VerifyPaymentResponse{
		OK:      true,
		Payment: *payment,
		Message: message,
	})
}
