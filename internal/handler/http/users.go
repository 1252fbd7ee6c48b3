package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/adushkin/userdir/internal/app"
	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/internal/store"
	"github.com/adushkin/userdir/internal/utils"
	"github.com/adushkin/userdir/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users := h.services.UserService.List(r.Context())
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")
	user, err := h.services.UserService.Get(r.Context(), name)
	if err != nil {
		log.Err(err).Str("user", name).Msg("user lookup failed")
		// 404 with an empty body: absence is not an error condition worth
		// a payload on the read path.
		w.WriteHeader(http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgUserAlreadyExists}, http.StatusBadRequest)
			return
		}
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	w.Header().Set("Location", "/users/"+url.PathEscape(created.UserName))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.Update(r.Context(), name, user); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")
	if err := h.services.UserService.Delete(r.Context(), name); err != nil {
		log.Err(err).Str("user", name).Msg("user deletion failed")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
