package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

type dashboardView struct {
	pageData
	Currency   string
	Currencies []string
	Rows       []claims.MonthlyClaims
	TotalCount int
	TotalValue decimal.Decimal
}

// Dashboard renders the claims-by-month table; ?currency=USD converts values
func (h *Handler) Dashboard(c *gin.Context) {
	currency := valueobject.ParseCurrency(c.Query("currency"))

	rows, err := h.services.Reports.ClaimsByMonth(c.Request.Context(), currency)
	if err != nil {
		h.fail(c, err)
		return
	}

	view := dashboardView{
		pageData:   h.page(c, "Claims by Month"),
		Currency:   currency.String(),
		Currencies: []string{valueobject.LRD.String(), valueobject.USD.String()},
		Rows:       rows,
		TotalCount: claims.TotalCount(rows),
		TotalValue: claims.TotalValue(rows),
	}
	c.HTML(http.StatusOK, "dashboard.html", view)
}
