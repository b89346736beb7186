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

// createAccount handles POST /accounts
func (app *application) createAccount(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	account := model.NewAccount()
	if err := json.Unmarshal(body, &account); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	created, err := app.accounts.Create(r.Context(), account)
	if err != nil {
		app.logger.Error("createAccount failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, created)
}

// listAccounts handles GET /accounts
func (app *application) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := app.accounts.List(r.Context())
	if err != nil {
		app.logger.Error("listAccounts failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, accounts)
}

// getAccount handles GET /accounts/{id}
func (app *application) getAccount(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseObjectID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	account, err := app.accounts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "account not found")
			return
		}
		app.logger.Error("getAccount failed", "id", id.Hex(), "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, account)
}

// updateAccount handles PUT /accounts/{id}
func (app *application) updateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseObjectID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var upd model.AccountUpdate
	if err := json.Unmarshal(body, &upd); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	account, err := app.accounts.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "account not found")
			return
		}
		app.logger.Error("updateAccount failed", "id", id.Hex(), "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, account)
}

// deleteAccount handles DELETE /accounts/{id}
func (app *application) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseObjectID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := app.accounts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "account not found")
			return
		}
		app.logger.Error("deleteAccount failed", "id", id.Hex(), "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"env":    app.config.env,
	})
}
