package cases

import (
	"net/http"

	"fortuna_backend/internal/api"
	dto "fortuna_backend/internal/api/dto/cases"
	"fortuna_backend/internal/converter"
	"fortuna_backend/internal/middleware"
	"fortuna_backend/internal/service"
	"fortuna_backend/pkg/req"
	"fortuna_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.CaseService
}

type Handler struct {
	serv service.CaseService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// List возвращает каталог кейсов
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCaseResponses(h.serv.Cases()))
}

// Open открывает кейс за счет текущего аккаунта
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.OpenRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Open(r.Context(), accountID, payload.CaseID)
	if err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOpenResponse(*result))
}
