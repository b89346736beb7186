package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/helpers"
	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/model"
	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/repository"
)

// createTransaction handles POST /transactions
func (app *application) createTransaction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	transaction := model.NewTransaction()
	if err := json.Unmarshal(body, &transaction); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if transaction.UserID.IsZero() {
		helpers.WriteError(w, http.StatusBadRequest, "userId is required")
		return
	}

	created, err := app.transactions.Create(r.Context(), transaction)
	if err != nil {
		app.logger.Error("createTransaction failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, created)
}

// listTransactions handles GET /transactions
func (app *application) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := app.transactions.List(r.Context())
	if err != nil {
		app.logger.Error("listTransactions failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, transactions)
}

// getTransaction handles GET /transactions/{id}
func (app *application) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseObjectID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	transaction, err := app.transactions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "transaction not found")
			return
		}
		app.logger.Error("getTransaction failed", "id", id.Hex(), "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, transaction)
}

// updateTransaction handles PUT /transactions/{id}
func (app *application) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseObjectID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var upd model.TransactionUpdate
	if err := json.Unmarshal(body, &upd); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	transaction, err := app.transactions.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "transaction not found")
			return
		}
		app.logger.Error("updateTransaction failed", "id", id.Hex(), "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, transaction)
}

// deleteTransaction handles DELETE /transactions/{id}
func (app *application) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseObjectID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := app.transactions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "transaction not found")
			return
		}
		app.logger.Error("deleteTransaction failed", "id", id.Hex(), "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
}
