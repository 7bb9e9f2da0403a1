package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/odalivan/experience_storefront/internal/core/domain"
	"github.com/odalivan/experience_storefront/internal/core/services"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	experiences, err := h.svc.ListExperiences(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": "Could not fetch data from the server."})
		return
	}

	json.NewEncoder(w).Encode(experiences)
}

func (h *CatalogHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/experiences/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Experience not found"})
		return
	}

	experience, err := h.svc.GetExperience(r.Context(), id)

	if err != nil {
		if errors.Is(err, domain.ErrExperienceNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Experience not found"})
		} else {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"error": "Could not fetch data from the server."})
		}

		return
	}

	json.NewEncoder(w).Encode(experience)
}
