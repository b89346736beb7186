package main

import "net/http"

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", app.healthCheck)

	mux.HandleFunc("POST /accounts", app.createAccount)
	mux.HandleFunc("GET /accounts", app.listAccounts)
	mux.HandleFunc("GET /accounts/{id}", app.getAccount)
	mux.HandleFunc("PUT /accounts/{id}", app.updateAccount)
	mux.HandleFunc("DELETE /accounts/{id}", app.deleteAccount)

	mux.HandleFunc("POST /transactions", app.createTransaction)
	mux.HandleFunc("GET /transactions", app.listTransactions)
	mux.HandleFunc("GET /transactions/{id}", app.getTransaction)
	mux.HandleFunc("PUT /transactions/{id}", app.updateTransaction)
	mux.HandleFunc("DELETE /transactions/{id}", app.deleteTransaction)

	return app.enableCORS(app.logRequest(mux))
}
