package moderation

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sportlebanon/internal/activity"
	"sportlebanon/internal/api"
	"sportlebanon/internal/booking"
	"sportlebanon/internal/field"
	"sportlebanon/internal/notify"
	"sportlebanon/internal/owner"
	"sportlebanon/internal/settings"
	"sportlebanon/pkg/db"
)

type Handlers struct {
	DB        *pgxpool.Pool
	Owners    *owner.Repository
	Fields    *field.Repository
	Bookings  *booking.Repository
	Activity  *activity.Repository
	Settings  settings.Store
	Publisher *notify.Publisher
	Metrics   *api.Metrics
}

type TransitionRequest struct {
	Reason     string `json:"reason,omitempty"`
	Resolution string `json:"resolution,omitempty"`
	NewStatus  string `json:"newStatus,omitempty"`
}

// Transition applies one lifecycle action to an owner, field or booking.
// The status write and its ledger entry commit in a single transaction; a
// failed request leaves the entity untouched.
func (h Handlers) Transition(w http.ResponseWriter, r *http.Request) {
	adm := api.AdminFromContext(r.Context())
	if adm == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing admin identity")
		return
	}

	kind := Kind(chi.URLParam(r, "kind"))
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}
	act, err := ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unknown action")
		return
	}

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	if !Allowed(act, adm.Role) {
		h.count(kind, act, "forbidden")
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "role does not permit this action")
		return
	}
	if ReasonRequired(act) && req.Reason == "" {
		h.count(kind, act, "validation_failed")
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "reason is required")
		return
	}

	switch kind {
	case KindOwners:
		h.transitionOwner(w, r, adm.ID, id, act, req)
	case KindFields:
		h.transitionField(w, r, adm.ID, id, act, req)
	case KindBookings:
		h.transitionBooking(w, r, adm.ID, id, act, req)
	default:
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "unknown entity kind")
	}
}

func (h Handlers) transitionOwner(w http.ResponseWriter, r *http.Request, actorID, id string, act Action, req TransitionRequest) {
	target, ok := ownerTargets[act]
	if !ok {
		h.count(KindOwners, act, "validation_failed")
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "action not supported for owners")
		return
	}

	var updated *owner.Owner
	var from owner.Status
	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		o, err := owner.GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}
		from = o.Status

		if !owner.CanTransition(o.Status, target) {
			h.count(KindOwners, act, "invalid_transition")
			api.WriteError(w, http.StatusBadRequest, "INVALID_TRANSITION", "invalid state transition")
			return pgx.ErrTxCommitRollback
		}

		before := o.Snapshot()
		if err := owner.UpdateStatus(r.Context(), tx, o.ID, target, req.Reason); err != nil {
			return err
		}
		o.Status = target
		o.StatusReason = req.Reason

		if err := activity.Insert(r.Context(), tx, actorID, "owner", o.ID, AuditName(KindOwners, act), before, o.Snapshot()); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		h.finishError(w, err, KindOwners, act)
		return
	}

	h.finish(r, KindOwners, act, actorID, updated.ID, string(from), string(updated.Status))
	writeJSON(w, updated)
}

func (h Handlers) transitionField(w http.ResponseWriter, r *http.Request, actorID, id string, act Action, req TransitionRequest) {
	target, ok := fieldTargets[act]
	if !ok {
		h.count(KindFields, act, "validation_failed")
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "action not supported for fields")
		return
	}

	var updated *field.Field
	var from field.Status
	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		f, err := field.GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}
		from = f.ApprovalStatus

		if !field.CanTransition(f.ApprovalStatus, target) {
			h.count(KindFields, act, "invalid_transition")
			api.WriteError(w, http.StatusBadRequest, "INVALID_TRANSITION", "invalid state transition")
			return pgx.ErrTxCommitRollback
		}

		before := f.Snapshot()
		if err := field.UpdateStatus(r.Context(), tx, f.ID, target, req.Reason); err != nil {
			return err
		}
		f.ApprovalStatus = target
		f.IsActive = field.IsActive(target)
		f.StatusReason = req.Reason

		if err := activity.Insert(r.Context(), tx, actorID, "field", f.ID, AuditName(KindFields, act), before, f.Snapshot()); err != nil {
			return err
		}
		updated = f
		return nil
	})
	if err != nil {
		h.finishError(w, err, KindFields, act)
		return
	}

	h.finish(r, KindFields, act, actorID, updated.ID, string(from), string(updated.ApprovalStatus))
	writeJSON(w, updated)
}

func (h Handlers) transitionBooking(w http.ResponseWriter, r *http.Request, actorID, id string, act Action, req TransitionRequest) {
	var target booking.Status
	if act == ActionResolveDispute {
		if req.Resolution == "" {
			h.count(KindBookings, act, "validation_failed")
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "resolution is required")
			return
		}
		outcome, err := booking.ParseResolution(req.NewStatus)
		if err != nil {
			h.count(KindBookings, act, "validation_failed")
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "newStatus must be confirmed or cancelled")
			return
		}
		target = outcome
	} else {
		var ok bool
		target, ok = bookingTargets[act]
		if !ok {
			h.count(KindBookings, act, "validation_failed")
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "action not supported for bookings")
			return
		}
	}

	// The commission rate is captured at confirmation time so later settings
	// changes never rewrite money already agreed.
	var commissionRate *settings.Settings
	if target == booking.StatusConfirmed {
		s, err := h.Settings.Get(r.Context())
		if err != nil {
			api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load platform settings")
			return
		}
		commissionRate = s
	}

	var updated *booking.Booking
	var from booking.Status
	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := booking.GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}
		from = b.Status

		if !booking.CanTransition(b.Status, target) {
			h.count(KindBookings, act, "invalid_transition")
			api.WriteError(w, http.StatusBadRequest, "INVALID_TRANSITION", "invalid state transition")
			return pgx.ErrTxCommitRollback
		}

		before := b.Snapshot()

		if act == ActionResolveDispute {
			if err := booking.Resolve(r.Context(), tx, b.ID, target, req.Resolution); err != nil {
				return err
			}
			b.Resolution = req.Resolution
		} else {
			if err := booking.UpdateStatus(r.Context(), tx, b.ID, target, req.Reason); err != nil {
				return err
			}
			b.StatusReason = req.Reason
		}
		b.Status = target

		if commissionRate != nil {
			commission, payout, err := booking.SplitRevenue(b.TotalPrice, commissionRate.CommissionRate)
			if err != nil {
				h.count(KindBookings, act, "validation_failed")
				api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
				return pgx.ErrTxCommitRollback
			}
			if err := booking.SetCommission(r.Context(), tx, b.ID, commissionRate.CommissionRate, commission, payout); err != nil {
				return err
			}
			b.CommissionRate = commissionRate.CommissionRate
			b.CommissionAmount = commission
			b.OwnerPayout = payout
		}

		if err := activity.Insert(r.Context(), tx, actorID, "booking", b.ID, AuditName(KindBookings, act), before, b.Snapshot()); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		h.finishError(w, err, KindBookings, act)
		return
	}

	h.finish(r, KindBookings, act, actorID, updated.ID, string(from), string(updated.Status))
	writeJSON(w, updated)
}

// finishError maps transaction errors after the closure already wrote any
// in-band response.
func (h Handlers) finishError(w http.ResponseWriter, err error, kind Kind, act Action) {
	if errors.Is(err, pgx.ErrTxCommitRollback) {
		// Response already written inside the tx closure.
		return
	}
	if errors.Is(err, pgx.ErrNoRows) {
		h.count(kind, act, "not_found")
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "entity not found")
		return
	}
	h.count(kind, act, "error")
	api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}

func (h Handlers) finish(r *http.Request, kind Kind, act Action, actorID, entityID, from, to string) {
	h.count(kind, act, "applied")

	ev := notify.StatusChanged{
		EntityType: strings.TrimSuffix(string(kind), "s"),
		EntityID:   entityID,
		Action:     string(act),
		From:       from,
		To:         to,
		ActorID:    actorID,
		OccurredAt: time.Now(),
	}
	if err := h.Publisher.PublishStatusChanged(r.Context(), ev); err != nil {
		log.Printf("publish %s event for %s: %v", ev.EntityType, entityID, err)
	}
}

func (h Handlers) count(kind Kind, act Action, outcome string) {
	if h.Metrics == nil {
		return
	}
	h.Metrics.TransitionsTotal.WithLabelValues(string(kind), string(act), outcome).Inc()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// List serves the moderation screens: all entities of a kind, optionally
// filtered by status.
func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var items any
	var err error
	switch Kind(chi.URLParam(r, "kind")) {
	case KindOwners:
		items, err = h.Owners.List(r.Context(), status)
	case KindFields:
		items, err = h.Fields.List(r.Context(), status)
	case KindBookings:
		items, err = h.Bookings.List(r.Context(), status)
	default:
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "unknown entity kind")
		return
	}
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	writeJSON(w, map[string]any{"items": items})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	var item any
	var err error
	switch Kind(chi.URLParam(r, "kind")) {
	case KindOwners:
		item, err = h.Owners.GetByID(r.Context(), id)
	case KindFields:
		item, err = h.Fields.GetByID(r.Context(), id)
	case KindBookings:
		item, err = h.Bookings.GetByID(r.Context(), id)
	default:
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "unknown entity kind")
		return
	}
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "entity not found")
		return
	}
	writeJSON(w, item)
}

// Activity serves the audit ledger, newest-first.
func (h Handlers) ActivityFeed(w http.ResponseWriter, r *http.Request) {
	entityType := r.URL.Query().Get("entityType")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = activity.DefaultPageSize
	}

	items, err := h.Activity.List(r.Context(), entityType, page, limit)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []activity.Record{}
	}
	writeJSON(w, map[string]any{"items": items, "page": page, "limit": limit})
}
