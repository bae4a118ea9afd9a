package report

import (
	"net/http"

	"sportlebanon/internal/api"
	"sportlebanon/internal/booking"
	"sportlebanon/internal/owner"
)

type Handlers struct {
	Bookings *booking.Repository
	Owners   *owner.Repository
}

func (h Handlers) BookingsXLSX(w http.ResponseWriter, r *http.Request) {
	items, err := h.Bookings.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	f, err := BuildBookingsWorkbook(items)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to build report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	_ = f.Write(w)
}

func (h Handlers) OwnersXLSX(w http.ResponseWriter, r *http.Request) {
	items, err := h.Owners.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	f, err := BuildOwnersWorkbook(items)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to build report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="owners.xlsx"`)
	_ = f.Write(w)
}
