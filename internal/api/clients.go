package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mostevr/cardstock/internal/app"
	"github.com/mostevr/cardstock/internal/domain"
	"github.com/mostevr/cardstock/internal/webserver"
	"github.com/mostevr/cardstock/pkg/common"
	"gorm.io/gorm"
)

type topupPayload struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type balanceResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

type topupResponse struct {
	ID         int64   `json:"id"`
	OldBalance float64 `json:"oldBalance"`
	NewBalance float64 `json:"newBalance"`
}

type walletTransactionRow struct {
	ID           int64     `json:"id"`
	Amount       float64   `json:"amount"`
	BalanceAfter float64   `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}

// registerClientRoutes registers wallet endpoints
func registerClientRoutes() {
	webserver.ApiGET("/client/:id/balance", getClientBalance)
	webserver.ApiPOST("/client/:id/topup", topupClient)
	webserver.ApiGET("/client/:id/transactions", listClientTransactions)
}

func getClientBalance(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// An unparseable id can never match a client row.
		return fail(c, http.StatusNotFound, msgClientNotFound)
	}

	var client domain.Client
	if err := webserver.GetDB(c).Where("id = ?", id).First(&client).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, msgClientNotFound)
	} else if err != nil {
		return internalError(c, "client balance", err)
	}

	return c.JSON(http.StatusOK, balanceResponse{
		ID:      client.ID,
		Name:    client.Name,
		Balance: client.Balance,
	})
}

func topupClient(c echo.Context) error {
	var payload topupPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, msgInvalidAmount)
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, msgInvalidAmount)
	}
	if math.IsNaN(payload.Amount) || math.IsInf(payload.Amount, 0) {
		return fail(c, http.StatusBadRequest, msgInvalidAmount)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, msgClientNotFound)
	}

	// The increment is a single UPDATE expression inside one transaction, so
	// concurrent top-ups on the same client cannot lose updates.
	var resp topupResponse
	err = webserver.GetDB(c).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Client{}).
			Where("id = ?", id).
			Update("balance", gorm.Expr("balance + ?", payload.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var client domain.Client
		if err := tx.Where("id = ?", id).First(&client).Error; err != nil {
			return err
		}

		journal := domain.WalletTransaction{
			ID:           common.UUIDint64(),
			ClientID:     client.ID,
			Amount:       payload.Amount,
			BalanceAfter: client.Balance,
			CreatedAt:    time.Now(),
		}
		if err := tx.Create(&journal).Error; err != nil {
			return err
		}

		resp = topupResponse{
			ID:         client.ID,
			OldBalance: client.Balance - payload.Amount,
			NewBalance: client.Balance,
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, msgClientNotFound)
	}
	if err != nil {
		return internalError(c, "client topup", err)
	}

	if bus := webserver.GetBus(c); bus != nil {
		bus.Publish(app.TopicWalletTopup, resp.ID, payload.Amount, resp.NewBalance)
	}

	return c.JSON(http.StatusOK, resp)
}

func listClientTransactions(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, msgClientNotFound)
	}

	db := webserver.GetDB(c)

	var exists int64
	if err := db.Model(&domain.Client{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return internalError(c, "client transactions", err)
	}
	if exists == 0 {
		return fail(c, http.StatusNotFound, msgClientNotFound)
	}

	var journal []domain.WalletTransaction
	if err := db.Where("client_id = ?", id).
		Order("created_at DESC, id DESC").
		Limit(listLimit).
		Find(&journal).Error; err != nil {
		return internalError(c, "client transactions", err)
	}

	rows := make([]walletTransactionRow, 0, len(journal))
	for _, j := range journal {
		rows = append(rows, walletTransactionRow{
			ID:           j.ID,
			Amount:       j.Amount,
			BalanceAfter: j.BalanceAfter,
			CreatedAt:    j.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, rows)
}
