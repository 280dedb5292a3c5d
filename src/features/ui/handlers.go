package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/contre95/zenify/src/features/catalog"
	"github.com/contre95/zenify/src/features/playlist"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie names the cookie identifying a browser's local storage namespace.
const SessionCookie = "zenify_session"

const (
	siteTitle = "Zenify"
	tagline   = "Discover music that matches your soul"
)

// Handler is the handler for the UI feature.
type Handler struct {
	sessions       *playlist.Sessions
	previewEnabled bool
}

// NewHandler creates a new handler for the UI feature.
func NewHandler(sessions *playlist.Sessions, previewEnabled bool) *Handler {
	return &Handler{
		sessions:       sessions,
		previewEnabled: previewEnabled,
	}
}

// session returns the session of the requesting browser, issuing a cookie on first visit.
// A first GET renders a detached session so drive-by page loads are not kept in memory.
func (h *Handler) session(c *fiber.Ctx) *playlist.Session {
	id := c.Cookies(SessionCookie)
	known := true
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
		known = false
		slog.Debug("Issuing new session", "session", id)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if !known && c.Method() == fiber.MethodGet {
		return h.sessions.Detached(id)
	}
	return h.sessions.Get(id)
}

// render answers with the playlist fragment for HTMX, the full page for browsers
// and the view state as JSON otherwise.
func (h *Handler) render(c *fiber.Ctx, view playlist.View) error {
	data := fiber.Map{
		"Title":          siteTitle,
		"Tagline":        tagline,
		"View":           view,
		"PreviewEnabled": h.previewEnabled,
	}
	if c.Get("HX-Request") == "true" {
		return c.Render("playlist/app", data)
	}
	if strings.Contains(c.Get("Accept"), "text/html") {
		if c.Method() != fiber.MethodGet {
			return c.Redirect("/ui", fiber.StatusSeeOther)
		}
		return c.Render("main", data)
	}
	return c.JSON(view)
}

// RenderApp renders the playlist page.
func (h *Handler) RenderApp(c *fiber.Ctx) error {
	slog.Debug("RenderApp handler called")
	return h.render(c, h.session(c).View())
}

// SelectMood loads the playlist of the mood in the path.
func (h *Handler) SelectMood(c *fiber.Ctx) error {
	mood := catalog.PathParam(c, "mood")
	slog.Debug("SelectMood handler called", "mood", mood)
	return h.render(c, h.session(c).SelectMood(c.Context(), mood))
}

// ToggleLike likes or unlikes the song whose key is posted.
func (h *Handler) ToggleLike(c *fiber.Ctx) error {
	key := c.FormValue("key")
	if key == "" {
		key = c.Query("key")
	}
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "song key is required"})
	}
	session := h.session(c)
	liked := session.ToggleLike(key)
	slog.Debug("ToggleLike handler called", "key", key, "liked", liked)
	return h.render(c, session.View())
}

// ToggleTheme switches between light and dark.
func (h *Handler) ToggleTheme(c *fiber.Ctx) error {
	session := h.session(c)
	current := session.ToggleTheme()
	slog.Debug("ToggleTheme handler called", "theme", current)
	return h.render(c, session.View())
}

// ToggleLikedOnly switches between all songs and liked songs.
func (h *Handler) ToggleLikedOnly(c *fiber.Ctx) error {
	session := h.session(c)
	likedOnly := session.ToggleShowLikedOnly()
	slog.Debug("ToggleLikedOnly handler called", "liked_only", likedOnly)
	return h.render(c, session.View())
}
