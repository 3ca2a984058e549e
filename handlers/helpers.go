package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gbfmachado/gkpro-system/services"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 4_194_304 // 4MB: photos may arrive inline as data blobs
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Error("failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error", slog.String("path", r.URL.Path), slog.Any("error", err))
	errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func idFromURL(r *http.Request, param string) string {
	return chi.URLParam(r, param)
}

// mapServiceErrorToHTTP translates service-layer errors into HTTP responses.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrGoalkeeperNotFound),
		errors.Is(err, services.ErrCoachNotFound),
		errors.Is(err, services.ErrEvaluationNotFound),
		errors.Is(err, services.ErrScoutNotFound),
		errors.Is(err, services.ErrTrainingNotFound),
		errors.Is(err, services.ErrSupportRecordNotFound):
		notFoundResponse(w, r)

	case errors.Is(err, services.ErrGoalkeeperNameRequired),
		errors.Is(err, services.ErrCoachNameRequired),
		errors.Is(err, services.ErrGoalkeeperIDRequired),
		errors.Is(err, services.ErrOpponentRequired),
		errors.Is(err, services.ErrSupportTitleRequired),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidPosition),
		errors.Is(err, services.ErrInvalidDominantFoot),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidMeasurement),
		errors.Is(err, services.ErrInvalidCoachRole),
		errors.Is(err, services.ErrInvalidCoachState),
		errors.Is(err, services.ErrScoreOutOfRange),
		errors.Is(err, services.ErrUnknownCriterion),
		errors.Is(err, services.ErrInvalidFrequency),
		errors.Is(err, services.ErrNegativeCounter),
		errors.Is(err, services.ErrUnknownScoutMetric),
		errors.Is(err, services.ErrInvalidZone),
		errors.Is(err, services.ErrInvalidMatchPosition),
		errors.Is(err, services.ErrInvalidIntensity),
		errors.Is(err, services.ErrInvalidMonthFilter),
		errors.Is(err, services.ErrInvalidSupportArea),
		errors.Is(err, services.ErrInvalidSupportStatus):
		badRequestResponse(w, r, err)

	default:
		serverErrorResponse(w, r, err)
	}
}
