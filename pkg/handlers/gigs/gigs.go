package gigs

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dlevine/gig-marketplace/pkg/api"
	"github.com/dlevine/gig-marketplace/pkg/lifecycle"
	"github.com/dlevine/gig-marketplace/pkg/mapping"
	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// GigsHandler holds the dependencies for gig-related handlers.
type GigsHandler struct {
	Store      storage.GigReader
	Controller *lifecycle.Controller
}

// NewGigsHandler creates a new GigsHandler.
func NewGigsHandler(store storage.GigReader, controller *lifecycle.Controller) *GigsHandler {
	return &GigsHandler{Store: store, Controller: controller}
}

// CreateGig handles booking a new gig offer with its payment hold.
func (h *GigsHandler) CreateGig(w http.ResponseWriter, r *http.Request) {
	var newGig api.NewGig
	if err := json.NewDecoder(r.Body).Decode(&newGig); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	req, err := mapping.ToDomainNewGig(&newGig)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid location payload: %v", err), http.StatusBadRequest)
		return
	}

	gig, res := h.Controller.CreateGigOffer(r.Context(), req)
	if !res.Success {
		writeResult(w, res)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiGig(gig)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetGigById handles retrieving a gig by its ID.
func (h *GigsHandler) GetGigById(w http.ResponseWriter, r *http.Request) {
	gigID := chi.URLParam(r, "gigID")

	gig, err := h.Store.GetGig(r.Context(), gigID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve gig: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiGig(gig)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// AcceptOffer handles the assigned worker accepting a pending offer.
func (h *GigsHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	gigID := chi.URLParam(r, "gigID")

	var body api.WorkerAction
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	writeResult(w, h.Controller.AcceptOffer(r.Context(), gigID, body.WorkerExternalId))
}

// DeclineOffer handles a worker declining an open-pool offer.
func (h *GigsHandler) DeclineOffer(w http.ResponseWriter, r *http.Request) {
	gigID := chi.URLParam(r, "gigID")

	var body api.WorkerAction
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	writeResult(w, h.Controller.DeclineOffer(r.Context(), gigID, body.WorkerExternalId))
}

// UpdateOfferStatus handles the generalized buyer/worker transition.
func (h *GigsHandler) UpdateOfferStatus(w http.ResponseWriter, r *http.Request) {
	gigID := chi.URLParam(r, "gigID")

	var body api.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	role := models.Role(body.Role)
	if role != models.RoleBuyer && role != models.RoleWorker {
		http.Error(w, fmt.Sprintf("Unknown role %q", body.Role), http.StatusBadRequest)
		return
	}
	action := models.OfferAction(body.Action)
	switch action {
	case models.ActionAccept, models.ActionCancel, models.ActionStart, models.ActionComplete:
	default:
		http.Error(w, fmt.Sprintf("Unknown action %q", body.Action), http.StatusBadRequest)
		return
	}

	writeResult(w, h.Controller.UpdateOfferStatus(r.Context(), gigID, body.ActorExternalId, role, action))
}

// StartGig handles the assigned worker starting an accepted gig.
func (h *GigsHandler) StartGig(w http.ResponseWriter, r *http.Request) {
	gigID := chi.URLParam(r, "gigID")

	var body api.WorkerAction
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	writeResult(w, h.Controller.StartGig(r.Context(), gigID, body.WorkerExternalId))
}

// RequestCompletion handles one party marking the work as done.
func (h *GigsHandler) RequestCompletion(w http.ResponseWriter, r *http.Request) {
	gigID := chi.URLParam(r, "gigID")

	body, ok := decodeCompletion(w, r)
	if !ok {
		return
	}

	writeResult(w, h.Controller.RequestCompletion(r.Context(), gigID, body.ActorExternalId, models.Role(body.Role)))
}

// ConfirmCompletion handles the second party's sign-off and settlement.
func (h *GigsHandler) ConfirmCompletion(w http.ResponseWriter, r *http.Request) {
	gigID := chi.URLParam(r, "gigID")

	body, ok := decodeCompletion(w, r)
	if !ok {
		return
	}

	writeResult(w, h.Controller.ConfirmCompletion(r.Context(), gigID, body.ActorExternalId, models.Role(body.Role)))
}

func decodeCompletion(w http.ResponseWriter, r *http.Request) (*api.Completion, bool) {
	var body api.Completion
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return nil, false
	}
	role := models.Role(body.Role)
	if role != models.RoleBuyer && role != models.RoleWorker {
		http.Error(w, fmt.Sprintf("Unknown role %q", body.Role), http.StatusBadRequest)
		return nil, false
	}
	return &body, true
}

func writeResult(w http.ResponseWriter, res lifecycle.ActionResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_ = json.NewEncoder(w).Encode(mapping.ToApiActionResponse(res))
}
