// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/application/usecase/account"
	"github.com/cashflow-tracker/backend/internal/application/usecase/category"
	"github.com/cashflow-tracker/backend/internal/application/usecase/transaction"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/cashflow-tracker/backend/internal/integration/pubsub"
)

// StreamController streams collection snapshots over server-sent events. Each
// connection holds exactly one change subscription: the current snapshot is
// sent on connect, a fresh one after every change signal, and the
// subscription is released when the client disconnects.
type StreamController struct {
	hub              *pubsub.Hub
	listAccounts     *account.ListAccountsUseCase
	listCategories   *category.ListCategoriesUseCase
	listTransactions *transaction.ListTransactionsUseCase
}

// NewStreamController creates a new stream controller instance.
func NewStreamController(
	hub *pubsub.Hub,
	listAccounts *account.ListAccountsUseCase,
	listCategories *category.ListCategoriesUseCase,
	listTransactions *transaction.ListTransactionsUseCase,
) *StreamController {
	return &StreamController{
		hub:              hub,
		listAccounts:     listAccounts,
		listCategories:   listCategories,
		listTransactions: listTransactions,
	}
}

// Stream handles GET /stream/:collection requests.
func (c *StreamController) Stream(ctx *gin.Context) {
	collection := ctx.Param("collection")
	switch collection {
	case adapter.CollectionAccounts, adapter.CollectionCategories, adapter.CollectionTransactions:
	default:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Unknown collection: " + collection,
		})
		return
	}

	sub := c.hub.Subscribe(collection)
	defer sub.Unsubscribe()

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	// Initial snapshot, then one per change signal.
	if !c.sendSnapshot(ctx, collection) {
		return
	}

	done := ctx.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case _, ok := <-sub.C:
			if !ok {
				return
			}
			if !c.sendSnapshot(ctx, collection) {
				return
			}
		}
	}
}

// sendSnapshot re-reads the collection and writes it as one SSE event.
// Returns false when the snapshot cannot be produced or delivered.
func (c *StreamController) sendSnapshot(ctx *gin.Context, collection string) bool {
	var payload any

	switch collection {
	case adapter.CollectionAccounts:
		output, err := c.listAccounts.Execute(ctx.Request.Context())
		if err != nil {
			return false
		}
		payload = dto.ToAccountListResponse(output.Accounts)
	case adapter.CollectionCategories:
		output, err := c.listCategories.Execute(ctx.Request.Context(), category.ListCategoriesInput{})
		if err != nil {
			return false
		}
		payload = dto.ToCategoryListResponse(output.Categories)
	case adapter.CollectionTransactions:
		output, err := c.listTransactions.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{})
		if err != nil {
			return false
		}
		payload = dto.ToTransactionListResponse(output.Transactions)
	}

	ctx.SSEvent("snapshot", payload)
	ctx.Writer.Flush()
	return true
}
