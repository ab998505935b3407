package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"rollmenu/internal/engine"
	"rollmenu/internal/preset"
)

// DefaultPollInterval is how often a stream connection checks the state
// version. Half a second keeps update latency well under the 1s target
// without busy-waiting.
const DefaultPollInterval = 500 * time.Millisecond

type Handler struct {
	ds      *engine.Dataset
	store   *engine.Store
	presets *preset.Store

	// pollInterval is overridable in tests.
	pollInterval time.Duration
}

func NewHandler(ds *engine.Dataset, store *engine.Store, presets *preset.Store) *Handler {
	return &Handler{
		ds:           ds,
		store:        store,
		presets:      presets,
		pollInterval: DefaultPollInterval,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/state", h.GetState)
	api.POST("/state", h.UpdateState)
	api.GET("/columns", h.GetColumns)
	api.GET("/overlay-data", h.GetOverlayData)
	api.GET("/stream", h.StreamVersion)
	api.GET("/presets", h.ListPresets)
	api.POST("/presets", h.SavePreset)
	api.GET("/presets/:name", h.GetPreset)
	api.DELETE("/presets/:name", h.DeletePreset)
}

// --- STATE ---

func (h *Handler) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *Handler) UpdateState(c echo.Context) error {
	var body map[string]any
	// A missing or malformed body is treated as an empty update.
	_ = c.Bind(&body)

	state, _ := h.store.Update(body)
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "state": state})
}

func (h *Handler) GetColumns(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"columns": h.ds.Columns})
}

// --- OVERLAY ---

func (h *Handler) GetOverlayData(c echo.Context) error {
	return c.JSON(http.StatusOK, engine.BuildOverlay(h.ds, h.store.Snapshot()))
}

// StreamVersion is the SSE endpoint the overlay subscribes to. It pushes
// the state version whenever it changes so the page knows to re-fetch
// /api/overlay-data. Intermediate versions between two polls are
// coalesced into the latest one.
func (h *Handler) StreamVersion(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	last := h.store.Version()
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			v := h.store.Version()
			if v == last {
				continue
			}
			last = v
			if _, err := fmt.Fprintf(res, "data: %d\n\n", v); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// --- PRESETS ---

func errorJSON(c echo.Context, status int, code string) error {
	return c.JSON(status, map[string]any{"ok": false, "error": code})
}

func (h *Handler) ListPresets(c echo.Context) error {
	names, err := h.presets.List()
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(http.StatusOK, map[string][]string{"presets": names})
}

type savePresetRequest struct {
	Name  string         `json:"name"`
	State map[string]any `json:"state"`
	// Older control pages posted the settings under "style".
	Style map[string]any `json:"style"`
}

func (h *Handler) SavePreset(c echo.Context) error {
	var req savePresetRequest
	_ = c.Bind(&req)

	state := req.State
	if state == nil {
		state = req.Style
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return errorJSON(c, http.StatusBadRequest, "empty_name")
	}
	if len(state) == 0 {
		return errorJSON(c, http.StatusBadRequest, "empty_state")
	}

	switch err := h.presets.Save(name, state); {
	case errors.Is(err, preset.ErrExists):
		return errorJSON(c, http.StatusBadRequest, "exists")
	case errors.Is(err, preset.ErrInvalidName):
		return errorJSON(c, http.StatusBadRequest, "invalid_name")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) GetPreset(c echo.Context) error {
	state, err := h.presets.Load(c.Param("name"))
	switch {
	case errors.Is(err, preset.ErrNotFound):
		return errorJSON(c, http.StatusNotFound, "not_found")
	case errors.Is(err, preset.ErrInvalidName):
		return errorJSON(c, http.StatusBadRequest, "invalid_name")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "state": state})
}

func (h *Handler) DeletePreset(c echo.Context) error {
	switch err := h.presets.Delete(c.Param("name")); {
	case errors.Is(err, preset.ErrInvalidName):
		return errorJSON(c, http.StatusBadRequest, "invalid_name")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
