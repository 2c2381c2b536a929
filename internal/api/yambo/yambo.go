package yambo

import (
	"errors"
	"net/http"

	dto "yambo_backend/internal/api/dto/yambo"
	"yambo_backend/internal/converter"
	"yambo_backend/internal/game/dice"
	"yambo_backend/internal/game/sheet"
	"yambo_backend/internal/game/turn"
	"yambo_backend/internal/model"
	"yambo_backend/internal/service"
	"yambo_backend/pkg/req"
	"yambo_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.YamboService
}

type Handler struct {
	serv service.YamboService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Roll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusForErr(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRollResponse(result))
}

func (h *Handler) ToggleHold(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.HoldRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.serv.ToggleHold(r.Context(), payload.Index)
	if err != nil {
		http.Error(w, err.Error(), statusForErr(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTableResponse(data))
}

func (h *Handler) ToggleHoldMatching(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.HoldRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.serv.ToggleHoldMatching(r.Context(), payload.Index)
	if err != nil {
		http.Error(w, err.Error(), statusForErr(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTableResponse(data))
}

func (h *Handler) ToggleColumnScratch(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ScratchRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.serv.ToggleColumnScratch(r.Context(), model.ColumnID(payload.Column))
	if err != nil {
		http.Error(w, err.Error(), statusForErr(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTableResponse(data))
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SaveRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Save(r.Context(), model.ColumnID(payload.Column), model.RowID(payload.Row))
	if err != nil {
		http.Error(w, err.Error(), statusForErr(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSaveResponse(result))
}

func (h *Handler) CheckTable(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckTable(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTableResponse(data))
}

func (h *Handler) NewGame(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.NewGame(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTableResponse(data))
}

// statusForErr maps rule violations to 409 so clients can tell them
// apart from server faults.
func statusForErr(err error) int {
	switch {
	case errors.Is(err, dice.ErrAllHeld),
		errors.Is(err, turn.ErrNoRollsLeft),
		errors.Is(err, sheet.ErrCellNotEligible),
		errors.Is(err, sheet.ErrInvalidChanceOrder):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
