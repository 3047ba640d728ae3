package subscriptions

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/pricing"
	"stash-api/internal/domain/subscriptions"
)

type attachOptionRequest struct {
	OptionID uint `json:"optionId" binding:"required,gt=0"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// AttachOption handles POST /api/v1/subscriptions/:id/options. The stored
// price is a snapshot of the option's pricing at attach time.
func (h *Handler) AttachOption(c *gin.Context) {
	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input attachOptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Invalid request data")
		return
	}

	sub, err := h.subscriptions.FindByID(subscriptionID)
	if err != nil {
		log.Println("failed to fetch subscription:", err)
		response.InternalError(c, "Failed to add option to subscription")
		return
	}
	if sub == nil {
		response.NotFound(c, "Subscription not found")
		return
	}

	opt, err := h.options.FindByID(input.OptionID)
	if err != nil {
		log.Println("failed to fetch option:", err)
		response.InternalError(c, "Failed to add option to subscription")
		return
	}
	if opt == nil {
		response.NotFound(c, "Option not found")
		return
	}

	price, err := pricing.OptionPrice(opt.PriceType, opt.UnitPrice, input.Quantity)
	if err != nil {
		log.Println("failed to price option:", err)
		response.InternalError(c, "Failed to add option to subscription")
		return
	}

	subOpt := subscriptions.SubscriptionOption{
		SubscriptionID: subscriptionID,
		OptionID:       input.OptionID,
		Quantity:       input.Quantity,
		Price:          price,
	}

	if err := h.subOptions.Create(&subOpt); err != nil {
		// The unique (subscription_id, option_id) index resolves races.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Option already added to this subscription")
			return
		}
		log.Println("failed to attach option:", err)
		response.InternalError(c, "Failed to add option to subscription")
		return
	}

	response.Success(c, http.StatusCreated, subOpt, "Option added successfully")
}

// ListOptions handles GET /api/v1/subscriptions/:id/options.
func (h *Handler) ListOptions(c *gin.Context) {
	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := h.subscriptions.FindByID(subscriptionID)
	if err != nil {
		log.Println("failed to fetch subscription:", err)
		response.InternalError(c, "Failed to fetch subscription options")
		return
	}
	if sub == nil {
		response.NotFound(c, "Subscription not found")
		return
	}

	subOpts, err := h.subOptions.ListBySubscription(subscriptionID)
	if err != nil {
		log.Println("failed to fetch subscription options:", err)
		response.InternalError(c, "Failed to fetch subscription options")
		return
	}

	response.Success(c, http.StatusOK, subOpts, "Subscription options fetched successfully")
}

// UpdateOptionQuantity handles PUT /api/v1/subscriptions/:id/options/:optionId.
// The price is recomputed from the option's current pricing, unlike reads
// which keep the stored snapshot.
func (h *Handler) UpdateOptionQuantity(c *gin.Context) {
	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	optionID, ok := parseIDParam(c, "optionId")
	if !ok {
		return
	}

	var input updateQuantityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Invalid request data")
		return
	}

	subOpt, err := h.subOptions.FindByPair(subscriptionID, optionID)
	if err != nil {
		log.Println("failed to fetch subscription option:", err)
		response.InternalError(c, "Failed to update option quantity")
		return
	}
	if subOpt == nil {
		response.NotFound(c, "Subscription option not found")
		return
	}
	if subOpt.Option == nil {
		log.Println("subscription option row has no option association:", subOpt.ID)
		response.InternalError(c, "Failed to update option quantity")
		return
	}

	price, err := pricing.OptionPrice(subOpt.Option.PriceType, subOpt.Option.UnitPrice, input.Quantity)
	if err != nil {
		log.Println("failed to price option:", err)
		response.InternalError(c, "Failed to update option quantity")
		return
	}

	if err := h.subOptions.UpdateQuantityAndPrice(subOpt.ID, input.Quantity, price); err != nil {
		log.Println("failed to update subscription option:", err)
		response.InternalError(c, "Failed to update option quantity")
		return
	}

	subOpt.Quantity = input.Quantity
	subOpt.Price = price
	response.Success(c, http.StatusOK, subOpt, "Quantity updated successfully")
}

// RemoveOption handles DELETE /api/v1/subscriptions/:id/options/:optionId.
func (h *Handler) RemoveOption(c *gin.Context) {
	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	optionID, ok := parseIDParam(c, "optionId")
	if !ok {
		return
	}

	subOpt, err := h.subOptions.FindByPair(subscriptionID, optionID)
	if err != nil {
		log.Println("failed to fetch subscription option:", err)
		response.InternalError(c, "Failed to remove option from subscription")
		return
	}
	if subOpt == nil {
		response.NotFound(c, "Subscription option not found")
		return
	}

	if err := h.subOptions.Delete(subOpt.ID); err != nil {
		log.Println("failed to delete subscription option:", err)
		response.InternalError(c, "Failed to remove option from subscription")
		return
	}

	response.Success(c, http.StatusOK, nil, "Option removed successfully")
}
