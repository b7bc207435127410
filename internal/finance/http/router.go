package http

import "github.com/gin-gonic/gin"

// Register attaches transaction routes on transactions and invoice routes
// on invoices.
func (h *Handler) Register(transactions, invoices *gin.RouterGroup) {
	transactions.POST("", h.createTransaction)
	transactions.GET("", h.listTransactions)
	transactions.GET("/:id", h.getTransaction)
	transactions.PATCH("/:id", h.updateTransaction)
	transactions.DELETE("/:id", h.deleteTransaction)

	invoices.POST("", h.createInvoice)
	invoices.GET("", h.listInvoices)
	invoices.GET("/:id", h.getInvoice)
	invoices.PATCH("/:id", h.updateInvoice)
	invoices.DELETE("/:id", h.deleteInvoice)
}
