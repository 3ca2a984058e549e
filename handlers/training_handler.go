package handlers

import (
	"net/http"
	"strconv"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/services"
)

type TrainingHandler struct {
	trainingService services.TrainingService
}

func NewTrainingHandler(ts services.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: ts}
}

func (h *TrainingHandler) List(w http.ResponseWriter, r *http.Request) {
	trainings := h.trainingService.List(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"trainings": trainings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TrainingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.TrainingInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	training, err := h.trainingService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"training": training}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TrainingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.TrainingInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	training, err := h.trainingService.Update(r.Context(), idFromURL(r, "trainingID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"training": training}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TrainingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.trainingService.Delete(r.Context(), idFromURL(r, "trainingID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type frequencyItem struct {
	Tag   string  `json:"tag"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

type frequencyGroup struct {
	Name  string          `json:"name"`
	Items []frequencyItem `json:"items"`
}

// Frequency serves the mesocycle tally. The share of each tag is its count
// over the month's session total, so bars from the same group do not need to
// sum to one.
func (h *TrainingHandler) Frequency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, errYear := strconv.Atoi(q.Get("year"))
	month, errMonth := strconv.Atoi(q.Get("month"))
	if errYear != nil || errMonth != nil {
		mapServiceErrorToHTTP(w, r, services.ErrInvalidMonthFilter)
		return
	}

	freq, err := h.trainingService.ContentFrequency(r.Context(), services.FrequencyInput{
		Year:         year,
		Month:        month,
		Category:     models.Category(q.Get("category")),
		GoalkeeperID: q.Get("goalkeeperId"),
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	groups := make([]frequencyGroup, 0, len(freq.Groups))
	for _, g := range freq.Groups {
		items := make([]frequencyItem, 0, len(g.Items))
		for _, it := range g.Items {
			share := 0.0
			if freq.TotalSessions > 0 {
				share = float64(it.Count) / float64(freq.TotalSessions)
			}
			items = append(items, frequencyItem{Tag: it.Tag, Count: it.Count, Share: share})
		}
		groups = append(groups, frequencyGroup{Name: g.Name, Items: items})
	}

	payload := jsonResponse{
		"total_sessions": freq.TotalSessions,
		"groups":         groups,
	}
	if err := writeJSON(w, http.StatusOK, payload, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
