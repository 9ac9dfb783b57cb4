package admin

import (
	"net/http"

	"fortuna_backend/internal/api"
	dto "fortuna_backend/internal/api/dto/admin"
	"fortuna_backend/internal/converter"
	"fortuna_backend/internal/model"
	"fortuna_backend/internal/service"
	"fortuna_backend/pkg/req"
	"fortuna_backend/pkg/resp"
)

type HandlerDeps struct {
	ModerationServ service.ModerationService
	VipServ        service.VipService
}

type Handler struct {
	moderationServ service.ModerationService
	vipServ        service.VipService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		moderationServ: deps.ModerationServ,
		vipServ:        deps.VipServ,
	}
}

// Ban блокирует аккаунт. 0 дней = навсегда
func (h *Handler) Ban(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BanRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.moderationServ.Ban(r.Context(), payload.AccountID, payload.Reason, payload.Days); err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Unban(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UnbanRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.moderationServ.Unban(r.Context(), payload.AccountID); err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Mute блокирует чат аккаунта. 0 минут = навсегда
func (h *Handler) Mute(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.MuteRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.moderationServ.Mute(r.Context(), payload.AccountID, payload.Reason, payload.Minutes); err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Unmute(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UnmuteRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.moderationServ.Unmute(r.Context(), payload.AccountID); err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Grant напрямую выдает VIP статус, минуя запас
func (h *Handler) Grant(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GrantRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vipType := model.VIPStatus(payload.Type)
	if vipType != model.VIPNone && !vipType.Active() {
		http.Error(w, "unknown vip type", http.StatusBadRequest)
		return
	}
	if payload.DurationDays < 0 {
		http.Error(w, "duration must not be negative", http.StatusBadRequest)
		return
	}

	account, err := h.vipServ.Grant(r.Context(), payload.AccountID, vipType, payload.DurationDays, model.ActivationSourceAdmin)
	if err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(account))
}
