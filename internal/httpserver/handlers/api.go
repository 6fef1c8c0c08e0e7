package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

const maxPatchBody = 64 << 10

// fieldPatch is a single-field edit. Value is a pointer so an explicit
// empty string is distinguishable from a missing value.
type fieldPatch struct {
	Field string  `json:"field"`
	Value *string `json:"value"`
}

type apiError struct {
	Error string `json:"error"`
}

// Config returns the current document as JSON.
func Config(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Content.Current())
	}
}

func PatchHero(d deps.Deps) http.HandlerFunc {
	return patchField(d, func(ctx context.Context, r *http.Request, p fieldPatch) error {
		f, err := domain.ParseHeroField(p.Field)
		if err != nil {
			return err
		}
		return d.Content.UpdateHero(ctx, f, *p.Value)
	})
}

func PatchAbout(d deps.Deps) http.HandlerFunc {
	return patchField(d, func(ctx context.Context, r *http.Request, p fieldPatch) error {
		f, err := domain.ParseAboutField(p.Field)
		if err != nil {
			return err
		}
		return d.Content.UpdateAbout(ctx, f, *p.Value)
	})
}

// PatchProject answers 204 for an unknown id too: the update is a no-op.
func PatchProject(d deps.Deps) http.HandlerFunc {
	return patchField(d, func(ctx context.Context, r *http.Request, p fieldPatch) error {
		f, err := domain.ParseProjectField(p.Field)
		if err != nil {
			return err
		}
		return d.Content.UpdateProject(ctx, chi.URLParam(r, "id"), f, *p.Value)
	})
}

func patchField(d deps.Deps, apply func(context.Context, *http.Request, fieldPatch) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p fieldPatch
		dec := json.NewDecoder(io.LimitReader(r.Body, maxPatchBody))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
			return
		}
		if p.Field == "" || p.Value == nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: "field and value are required"})
			return
		}

		if err := apply(r.Context(), r, p); err != nil {
			if errors.Is(err, domain.ErrUnknownField) {
				writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
				return
			}
			d.Logger.Error("failed to save content", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to save changes"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
