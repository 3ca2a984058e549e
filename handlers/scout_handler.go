package handlers

import (
	"net/http"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/services"
)

type ScoutHandler struct {
	scoutService services.ScoutService
}

func NewScoutHandler(ss services.ScoutService) *ScoutHandler {
	return &ScoutHandler{scoutService: ss}
}

func (h *ScoutHandler) List(w http.ResponseWriter, r *http.Request) {
	scouts := h.scoutService.List(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"scouts": scouts}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoutHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	scout, err := h.scoutService.GetByID(r.Context(), idFromURL(r, "scoutID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"scout": scout}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ScoutInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	scout, err := h.scoutService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"scout": scout}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.ScoutInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	scout, err := h.scoutService.Update(r.Context(), idFromURL(r, "scoutID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"scout": scout}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scoutService.Delete(r.Context(), idFromURL(r, "scoutID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScoutHandler) Heatmaps(w http.ResponseWriter, r *http.Request) {
	goalkeeperID := r.URL.Query().Get("goalkeeperId")
	category := models.Category(r.URL.Query().Get("category"))

	heatmaps, err := h.scoutService.Heatmaps(r.Context(), goalkeeperID, category)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"heatmaps": heatmaps}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Document renders one match scout as a standalone printable HTML page.
func (h *ScoutHandler) Document(w http.ResponseWriter, r *http.Request) {
	doc, err := h.scoutService.Document(r.Context(), idFromURL(r, "scoutID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := scoutDocumentTemplate.Execute(w, doc); err != nil {
		serverErrorResponse(w, r, err)
	}
}
