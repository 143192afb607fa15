package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nttbank/account-service/internal/core/ports/services"
	"github.com/nttbank/account-service/internal/dto"
)

type customerHandler struct {
	customerService portssvc.CustomerSvc
}

func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvc) {
	h := &customerHandler{customerService: customerService}
	rg.GET("/customers/:id", h.getCustomer)
}

// getCustomer godoc
// @Summary Look up a customer
// @Description Proxies the customer service lookup used by the eligibility rules
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 503 {object} dto.ErrorResponse "Customer service unavailable"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}
