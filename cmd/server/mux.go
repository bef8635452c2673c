package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/processor"
)

type Handler struct {
	importer Importer
	reporter Reporter
	apiKey   string
}

func NewHandler(
	importer Importer,
	reporter Reporter,
	apiKey string,
) *Handler {
	return &Handler{
		importer: importer,
		reporter: reporter,
		apiKey:   apiKey,
	}
}

func (h *Handler) Router(logger zerolog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if subtle.ConstantTimeCompare([]byte(h.apiKey), []byte(req.URL.Query().Get("api_key"))) != 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, req.WithContext(logger.WithContext(req.Context())))
		})
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/import", h.Import).Methods(http.MethodPost)
	api.HandleFunc("/import/last", h.ImportSinceLastSync).Methods(http.MethodPost)
	api.HandleFunc("/import/{id}", h.GetImportBatch).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{accountId}/import/latest", h.LatestImportBatch).Methods(http.MethodGet)
	api.HandleFunc("/bookmark", h.SetBookmark).Methods(http.MethodPost)
	api.HandleFunc("/credentials", h.StoreToken).Methods(http.MethodPut)

	return r
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	var request ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(r.Context(), w, errors.Mark(errors.Wrap(err, "invalid request body"), common.ErrValidation))
		return
	}

	startDate, err := parseDate("startDate", request.StartDate)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	endDate, err := parseDate("endDate", request.EndDate)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	h.respondImport(w, r, request.AccountID, func(ctx context.Context) (*processor.ImportResult, error) {
		return h.importer.ImportTransactions(ctx, request.AccountID, startDate, endDate)
	})
}

func (h *Handler) ImportSinceLastSync(w http.ResponseWriter, r *http.Request) {
	var request ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(r.Context(), w, errors.Mark(errors.Wrap(err, "invalid request body"), common.ErrValidation))
		return
	}

	h.respondImport(w, r, request.AccountID, func(ctx context.Context) (*processor.ImportResult, error) {
		return h.importer.ImportSinceLastSync(ctx, request.AccountID)
	})
}

func (h *Handler) respondImport(
	w http.ResponseWriter,
	r *http.Request,
	accountID string,
	run func(ctx context.Context) (*processor.ImportResult, error),
) {
	ctx := r.Context()

	result, err := run(ctx)
	h.reporter.ReportImport(ctx, accountID, result, err)

	if result == nil {
		writeError(ctx, w, err)
		return
	}

	response := ImportResponse{
		Batch:        result.Batch,
		ImportedIDs:  result.ImportedIDs,
		DuplicateIDs: result.DuplicateIDs,
	}

	status := http.StatusOK
	if err != nil {
		response.Error = err.Error()
		status = statusCode(err)
	}

	writeJSON(ctx, w, status, response)
}

func (h *Handler) SetBookmark(w http.ResponseWriter, r *http.Request) {
	var request BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(r.Context(), w, errors.Mark(errors.Wrap(err, "invalid request body"), common.ErrValidation))
		return
	}

	date, err := parseDate("date", request.Date)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if err = h.importer.SetBookmark(r.Context(), request.AccountID, date); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) StoreToken(w http.ResponseWriter, r *http.Request) {
	var request CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(r.Context(), w, errors.Mark(errors.Wrap(err, "invalid request body"), common.ErrValidation))
		return
	}

	if err := h.importer.StoreToken(r.Context(), request.AccountID, request.Token); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetImportBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := h.importer.GetImportBatch(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, batch)
}

func (h *Handler) LatestImportBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := h.importer.LatestImportBatch(r.Context(), mux.Vars(r)["accountId"])
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, batch)
}

func parseDate(field string, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, common.InvalidDateRange("%s %q is not a YYYY-MM-DD date", field, value)
	}

	return date, nil
}

func statusCode(err error) int {
	switch {
	case common.IsOutcome(err):
		return http.StatusOK
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrRecordNotFound), errors.Is(err, common.ErrCredentialNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrRateLimit):
		return http.StatusTooManyRequests
	case errors.Is(err, common.ErrAuthentication), common.IsRetryable(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusCode(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(ctx).Error().Err(err).Msg("request failed")
	}

	writeJSON(ctx, w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write response")
	}
}
