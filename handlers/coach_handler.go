package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gbfmachado/gkpro-system/services"
)

type CoachHandler struct {
	coachService services.CoachService
}

func NewCoachHandler(cs services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: cs}
}

func (h *CoachHandler) List(w http.ResponseWriter, r *http.Request) {
	coaches := h.coachService.List(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"coaches": coaches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoachHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	coach, err := h.coachService.GetByID(r.Context(), idFromURL(r, "coachID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"coach": coach}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoachHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CoachInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coach, err := h.coachService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"coach": coach}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoachHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.CoachInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coach, err := h.coachService.Update(r.Context(), idFromURL(r, "coachID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"coach": coach}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoachHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.coachService.Delete(r.Context(), idFromURL(r, "coachID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CoachHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get photo file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for photo"))
		return
	}

	coach, err := h.coachService.UploadPhoto(r.Context(), idFromURL(r, "coachID"), contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"coach": coach}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
