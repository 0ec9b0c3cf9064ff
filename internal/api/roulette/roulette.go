package roulette

import (
	"errors"
	"net/http"
	"strconv"

	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.RouletteService
	Log  *zap.Logger
}

type Handler struct {
	serv service.RouletteService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// statusFor Код ответа по ошибке сервиса
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidNumber),
		errors.Is(err, model.ErrInvalidSettings),
		errors.Is(err, model.ErrInvalidLossCount):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrEmptyHistory):
		return http.StatusConflict
	case errors.Is(err, model.ErrArchiveDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	http.Error(w, err.Error(), code)
}

func (h *Handler) Bets(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProposalResponse(h.serv.ProposeBets()))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	number, err := converter.ToNumber(payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	result, err := h.serv.RecordSpin(number)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(result))
}

func (h *Handler) Undo(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.UndoLastSpin()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(result))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(h.serv.ResetSession()))
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(h.serv.Session()))
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingsResponse(h.serv.Settings()))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SettingsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch, err := converter.ToSettingsPatch(payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	settings, err := h.serv.UpdateSettings(patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingsResponse(settings))
}

func (h *Handler) Progression(w http.ResponseWriter, r *http.Request) {
	response := converter.ToProgressionResponse(h.serv.ProgressionStates(), h.serv.Settings())
	resp.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.CurrentStats()))
}

func (h *Handler) Heatmap(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHeatmapResponse(h.serv.Heatmap()))
}

// WorstCase GET /roulette/worst-case?losses=N
func (h *Handler) WorstCase(w http.ResponseWriter, r *http.Request) {
	losses, err := strconv.Atoi(r.URL.Query().Get("losses"))
	if err != nil {
		http.Error(w, "losses must be an integer", http.StatusBadRequest)
		return
	}

	result, err := h.serv.WorstCase(losses)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWorstCaseResponse(result))
}

func (h *Handler) Coverage(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCoverageResponse(h.serv.Coverage()))
}

func (h *Handler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	body, err := h.serv.ExportJSON()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp.WriteFile(w, "application/json", "roulette-session.json", body)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	body, err := h.serv.ExportCSV()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp.WriteFile(w, "text/csv", "roulette-session.csv", body)
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Archive(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
