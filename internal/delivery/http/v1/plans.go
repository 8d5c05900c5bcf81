package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkoroteev/go-coachly/internal/config"
)

type planResponse struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	MonthPrice   float64 `json:"month_price"`
	YearPrice    float64 `json:"year_price"`
	MonthPriceID string  `json:"month_price_id,omitempty"`
	YearPriceID  string  `json:"year_price_id,omitempty"`
	ProductID    string  `json:"product_id,omitempty"`
}

// HandleListPlans serves the static pricing catalog. Checkout and
// subscription state live with the payment processor, not here.
func (h *handlerImpl) HandleListPlans(c *gin.Context) {
	pricing := config.Global().Pricing

	c.JSON(http.StatusOK, []planResponse{
		{
			Name:        "Free",
			Description: "Free plan",
		},
		{
			Name:         "Basic",
			Description:  "Basic plan",
			MonthPrice:   pricing.BasicMonthPrice,
			YearPrice:    pricing.BasicYearPrice,
			MonthPriceID: pricing.BasicMonthPriceID,
			YearPriceID:  pricing.BasicYearPriceID,
			ProductID:    pricing.BasicProductID,
		},
		{
			Name:         "Pro",
			Description:  "Pro plan",
			MonthPrice:   pricing.ProMonthPrice,
			YearPrice:    pricing.ProYearPrice,
			MonthPriceID: pricing.ProMonthPriceID,
			YearPriceID:  pricing.ProYearPriceID,
			ProductID:    pricing.ProProductID,
		},
	})
}
