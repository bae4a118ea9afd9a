package moderation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"sportlebanon/internal/activity"
	"sportlebanon/internal/api"
	"sportlebanon/internal/settings"
	"sportlebanon/pkg/db"
)

func (h Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Settings.Get(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	writeJSON(w, s)
}

type CommissionRateRequest struct {
	CommissionRate string `json:"commissionRate"`
}

// UpdateCommissionRate is the one operation reserved for super admins. The
// change is audited like any other transition.
func (h Handlers) UpdateCommissionRate(w http.ResponseWriter, r *http.Request) {
	adm := api.AdminFromContext(r.Context())
	if adm == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing admin identity")
		return
	}
	if !Allowed(ActionSetCommissionRate, adm.Role) {
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "commission rate changes require super_admin")
		return
	}

	var req CommissionRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	rate, err := settings.ParseCommissionRate(req.CommissionRate)
	if err != nil {
		var verr settings.ValidationError
		if errors.As(err, &verr) {
			api.WriteError(w, http.StatusBadRequest, verr.Code, verr.Message)
			return
		}
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid commission rate")
		return
	}

	before, err := h.Settings.Get(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		if err := settings.Update(r.Context(), tx, rate); err != nil {
			return err
		}
		return activity.Insert(r.Context(), tx, adm.ID, "settings", "platform",
			"settings_set_commission_rate",
			map[string]string{"commissionRate": before.CommissionRate.StringFixed(2)},
			map[string]string{"commissionRate": rate.StringFixed(2)},
		)
	})
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	h.Settings.Cache.Invalidate(r.Context())

	updated, err := h.Settings.Get(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	writeJSON(w, updated)
}
