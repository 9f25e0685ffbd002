package content

import (
	"net/http"

	"lv-marketsite/internal/httputil"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Courses(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string][]Course{"courses": Courses})
}

func (h *Handler) Promotions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string][]Promotion{"promotions": Promotions})
}
