package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/smdp2000/Banking-Ledger-System/internal/core/domain"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/ledger"
)

type TransactionHandler struct {
	Processor *ledger.Processor
}

// TransactionRequest is the body shared by load and authorization calls.
// TransactionAmount is a pointer so a missing field fails validation instead
// of silently parsing as an empty amount.
type TransactionRequest struct {
	AccountID         string         `json:"accountId"`
	RequestID         string         `json:"requestId"`
	TransactionAmount *domain.Amount `json:"transactionAmount"`
}

type LoadResponse struct {
	RequestID string        `json:"requestId"`
	AccountID string        `json:"accountId"`
	Balance   domain.Amount `json:"balance"`
}

type AuthorizationResponse struct {
	AccountID string          `json:"accountId"`
	RequestID string          `json:"requestId"`
	Decision  domain.Decision `json:"decision"`
	Balance   domain.Amount   `json:"balance"`
}

// validate rejects structurally bad requests before the processor sees them.
func (r *TransactionRequest) validate() string {
	if r.AccountID == "" {
		return "Account ID cannot be empty"
	}
	if r.TransactionAmount == nil {
		return "Transaction amount is required"
	}
	if r.TransactionAmount.Currency == "" {
		return "Currency must be specified"
	}
	return ""
}

// requestID echoes the caller's id, generating one when it was omitted.
func (r *TransactionRequest) requestID() string {
	if r.RequestID != "" {
		return r.RequestID
	}
	return uuid.NewString()
}

// Load credits an account. PUT /load
func (h *TransactionHandler) Load(c *fiber.Ctx) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return badRequest(c, msg)
	}

	receipt, err := h.Processor.Deposit(req.AccountID, *req.TransactionAmount)
	switch {
	case errors.Is(err, domain.ErrInvalidDirection):
		return badRequest(c, "Load transactions must be of type CREDIT")
	case errors.Is(err, domain.ErrNegativeAmount):
		return badRequest(c, "Amount cannot be negative")
	case err != nil:
		slog.Error("Load failed", "error", err, "account_id", req.AccountID)
		return internalError(c)
	}

	slog.Info("💰 Load applied", "account_id", req.AccountID, "balance", receipt.Balance.StringFixedBank(2))

	return c.Status(fiber.StatusCreated).JSON(LoadResponse{
		RequestID: req.requestID(),
		AccountID: req.AccountID,
		Balance: domain.Amount{
			Amount:    receipt.Balance.StringFixedBank(2),
			Currency:  receipt.Currency,
			Direction: domain.Credit,
		},
	})
}

// Authorize decides whether an account can cover a debit. PUT /authorization
func (h *TransactionHandler) Authorize(c *fiber.Ctx) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return badRequest(c, msg)
	}

	receipt, err := h.Processor.Authorize(req.AccountID, *req.TransactionAmount)
	switch {
	case errors.Is(err, domain.ErrInvalidDirection):
		return badRequest(c, "Authorization transactions must be of type DEBIT")
	case errors.Is(err, domain.ErrNegativeAmount):
		return badRequest(c, "Amount cannot be negative")
	case err != nil:
		slog.Error("Authorization failed", "error", err, "account_id", req.AccountID)
		return internalError(c)
	}

	slog.Info("🔎 Authorization decided", "account_id", req.AccountID, "decision", receipt.Decision)

	return c.Status(fiber.StatusCreated).JSON(AuthorizationResponse{
		AccountID: req.AccountID,
		RequestID: req.requestID(),
		Decision:  receipt.Decision,
		Balance: domain.Amount{
			Amount:    receipt.Balance.StringFixedBank(2),
			Currency:  receipt.Currency,
			Direction: domain.Debit,
		},
	})
}

// GetEvents lists an account's full history. GET /events/:accountId
func (h *TransactionHandler) GetEvents(c *fiber.Ctx) error {
	accountID := c.Params("accountId")

	events, err := h.Processor.Events(accountID)
	if errors.Is(err, domain.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		slog.Error("Could not fetch events", "error", err, "account_id", accountID)
		return internalError(c)
	}

	return c.JSON(events)
}
