package handlers

import (
	"net/http"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/services"
)

type SupportHandler struct {
	supportService services.SupportService
}

func NewSupportHandler(ss services.SupportService) *SupportHandler {
	return &SupportHandler{supportService: ss}
}

func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var records interface{}
	if area := q.Get("area"); area != "" {
		filtered, err := h.supportService.ListByArea(r.Context(), models.SupportArea(area), q.Get("goalkeeperId"))
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		records = filtered
	} else {
		records = h.supportService.List(r.Context())
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"records": records}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.SupportInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.supportService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"record": record}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SupportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.SupportInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.supportService.Update(r.Context(), idFromURL(r, "recordID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"record": record}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SupportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.supportService.Delete(r.Context(), idFromURL(r, "recordID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
