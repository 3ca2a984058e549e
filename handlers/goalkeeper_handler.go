package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gbfmachado/gkpro-system/services"
)

type GoalkeeperHandler struct {
	goalkeeperService services.GoalkeeperService
}

func NewGoalkeeperHandler(gs services.GoalkeeperService) *GoalkeeperHandler {
	return &GoalkeeperHandler{goalkeeperService: gs}
}

func (h *GoalkeeperHandler) List(w http.ResponseWriter, r *http.Request) {
	keepers := h.goalkeeperService.List(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"goalkeepers": keepers}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GoalkeeperHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	keeper, err := h.goalkeeperService.GetByID(r.Context(), idFromURL(r, "goalkeeperID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"goalkeeper": keeper}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GoalkeeperHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.GoalkeeperInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	keeper, err := h.goalkeeperService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"goalkeeper": keeper}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GoalkeeperHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.GoalkeeperInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	keeper, err := h.goalkeeperService.Update(r.Context(), idFromURL(r, "goalkeeperID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"goalkeeper": keeper}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GoalkeeperHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.goalkeeperService.Delete(r.Context(), idFromURL(r, "goalkeeperID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GoalkeeperHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
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

	keeper, err := h.goalkeeperService.UploadPhoto(r.Context(), idFromURL(r, "goalkeeperID"), contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"goalkeeper": keeper}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
