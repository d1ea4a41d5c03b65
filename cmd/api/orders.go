package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/service"
)

type OrderItemPayload struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderPayload struct {
	TableID string             `json:"tableId" validate:"required"`
	Items   []OrderItemPayload `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusPayload struct {
	Status string `json:"status" validate:"required"`
}

func (p CreateOrderPayload) toInputs() ([]service.OrderItemInput, error) {
	inputs := make([]service.OrderItemInput, 0, len(p.Items))
	for _, item := range p.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q", item.ProductID)
		}
		inputs = append(inputs, service.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}
	return inputs, nil
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	Lists every order of the authenticated cafe
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	domain.Order
//	@Security		ApiKeyAuth
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	orders, err := app.orderService.ListOrders(r.Context(), adminID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "orders fetched", orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listPendingOrdersHandler godoc
//
//	@Summary		List unpaid orders
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	domain.Order
//	@Security		ApiKeyAuth
//	@Router			/orders/pending [get]
func (app *application) listPendingOrdersHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	orders, err := app.orderService.ListUnpaidOrders(r.Context(), adminID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "orders fetched", orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listPaidOrdersHandler godoc
//
//	@Summary		List paid orders
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	domain.Order
//	@Security		ApiKeyAuth
//	@Router			/orders/paid [get]
func (app *application) listPaidOrdersHandler(w http.ResponseWriter, r *http.Request) {
	app.listOrdersByStatus(w, r, domain.OrderStatusPaid)
}

func (app *application) listOrdersByStatus(w http.ResponseWriter, r *http.Request, status domain.OrderStatus) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	orders, err := app.orderService.ListOrdersByStatus(r.Context(), adminID, status)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "orders fetched", orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order by ID
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	domain.Order
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders/{id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	order, err := app.orderService.GetOrder(r.Context(), adminID, id)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "order fetched", order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createOrderHandler godoc
//
//	@Summary		Create an order
//	@Description	Creates an order for a table, snapshotting product names and prices
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateOrderPayload	true	"Order"
//	@Success		201		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	adminID, userID, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	var payload CreateOrderPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	tableID, err := primitive.ObjectIDFromHex(payload.TableID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	items, err := payload.toInputs()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.CreateOrder(r.Context(), adminID, userID, tableID, items)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, "order created", order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderHandler godoc
//
//	@Summary		Update an order
//	@Description	Replaces the order's table and items, re-snapshotting prices
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Order ID"
//	@Param			payload	body		CreateOrderPayload	true	"Order"
//	@Success		200		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders/{id} [put]
func (app *application) updateOrderHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var payload CreateOrderPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	tableID, err := primitive.ObjectIDFromHex(payload.TableID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	items, err := payload.toInputs()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.UpdateOrder(r.Context(), adminID, id, tableID, items)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "order updated", order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Order ID"
//	@Param			payload	body		UpdateOrderStatusPayload	true	"New status"
//	@Success		200		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders/{id}/status [patch]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var payload UpdateOrderStatusPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	status := domain.OrderStatus(payload.Status)
	if !status.Valid() {
		app.badRequestResponse(w, r, fmt.Errorf("invalid order status %q", payload.Status))
		return
	}

	order, err := app.orderService.UpdateOrderStatus(r.Context(), adminID, id, status)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "order status updated", order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteOrderHandler godoc
//
//	@Summary		Delete an order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders/{id} [delete]
func (app *application) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.orderService.DeleteOrder(r.Context(), adminID, id); err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "order deleted", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
