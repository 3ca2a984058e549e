package handlers

import (
	"net/http"

	"github.com/gbfmachado/gkpro-system/services"
)

type EvaluationHandler struct {
	evaluationService services.EvaluationService
}

func NewEvaluationHandler(es services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: es}
}

func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	var evaluations interface{}
	if goalkeeperID := r.URL.Query().Get("goalkeeperId"); goalkeeperID != "" {
		evaluations = h.evaluationService.ListByGoalkeeper(r.Context(), goalkeeperID)
	} else {
		evaluations = h.evaluationService.List(r.Context())
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"evaluations": evaluations}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EvaluationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.EvaluationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	eval, err := h.evaluationService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"evaluation": eval}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EvaluationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.EvaluationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	eval, err := h.evaluationService.Update(r.Context(), idFromURL(r, "evaluationID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"evaluation": eval}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EvaluationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.evaluationService.Delete(r.Context(), idFromURL(r, "evaluationID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
