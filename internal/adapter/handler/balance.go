package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smdp2000/Banking-Ledger-System/internal/core/domain"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/ledger"
)

type BalanceHandler struct {
	Processor    *ledger.Processor
	BaseCurrency string
}

type BalanceResponse struct {
	AccountID string        `json:"accountId"`
	Balance   domain.Amount `json:"balance"`
}

// GetBalance is a read-only projection query. GET /balance/:accountId
// An optional ?currency=XXX converts the result; default is the base currency.
func (h *BalanceHandler) GetBalance(c *fiber.Ctx) error {
	accountID := c.Params("accountId")
	if accountID == "" {
		return badRequest(c, "Account ID cannot be empty")
	}

	currency := c.Query("currency", h.BaseCurrency)
	balance := h.Processor.Balance(accountID, currency)

	return c.JSON(BalanceResponse{
		AccountID: accountID,
		Balance: domain.Amount{
			Amount:    balance.StringFixedBank(2),
			Currency:  currency,
			Direction: domain.Credit,
		},
	})
}
