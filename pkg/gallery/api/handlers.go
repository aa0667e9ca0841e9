package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/go-chi/render"

	"github.com/gallerykit/gateway/pkg/gallery"
)

// Handler exposes the gallery service over HTTP
type Handler struct {
	service gallery.Service
}

// NewHandler creates a new gallery HTTP handler
func NewHandler(service gallery.Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the gateway routes. Image and sign history routes require a
// JWT verified against the given auth; registration and sign recording do not.
func (h *Handler) Routes(auth *jwtauth.JWTAuth) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)

	r.Post("/user", h.RegisterUser)
	r.Post("/userSignAction", h.RecordSignAction)

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(auth))
		r.Use(jwtauth.Authenticator)
		r.Use(CallerIdentity)

		r.Get("/usersSign", h.ListSignHistory)
		r.Post("/image", h.UploadImage)
		r.Get("/images", h.ListImages)
	})

	return r
}

// statusResponse is the envelope returned for non-payload outcomes.
type statusResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func writeStatus(w http.ResponseWriter, r *http.Request, code int, message string) {
	render.Status(r, code)
	render.JSON(w, r, statusResponse{StatusCode: code, Message: message})
}

// RegisterUserRequest is the request body for registering a user
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// RegisterUser delegates user registration to the identity provider.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, r, http.StatusBadRequest, "Bad Request")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeStatus(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	if err := h.service.RegisterUser(r.Context(), gallery.SignUpRequest{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
	}); err != nil {
		writeStatus(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeStatus(w, r, http.StatusOK, "OK")
}

// SignActionRequest is the request body for recording a sign action
type SignActionRequest struct {
	Username string `json:"username"`
	Action   string `json:"action"`
}

// RecordSignAction appends a sign-in/out event to the audit trail.
func (h *Handler) RecordSignAction(w http.ResponseWriter, r *http.Request) {
	var req SignActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, r, http.StatusBadRequest, "Bad Request")
		return
	}

	action, err := gallery.ParseSignAction(req.Action)
	if err != nil {
		writeStatus(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.RecordSignAction(r.Context(), req.Username, action); err != nil {
		writeStatus(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeStatus(w, r, http.StatusOK, "OK")
}

// ListSignHistory returns every sign event for every user.
func (h *Handler) ListSignHistory(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListSignHistory(r.Context())
	if err != nil {
		writeStatus(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	render.JSON(w, r, events)
}

// UploadImageRequest is the request body for uploading an image. Force
// accepts either a JSON boolean or a token from the supported vocabulary.
type UploadImageRequest struct {
	ImageName    string `json:"imageName"`
	ImageContent string `json:"imageContent"`
	Force        any    `json:"force"`
}

// UploadImage stores an image under the caller's namespace.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	owner, ok := OwnerFromContext(r.Context())
	if !ok {
		writeStatus(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, r, http.StatusBadRequest, "Bad Request")
		return
	}

	force, err := gallery.NormalizeForce(req.Force)
	if err != nil {
		writeStatus(w, r, http.StatusBadRequest, err.Error())
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.ImageContent)
	if err != nil {
		writeStatus(w, r, http.StatusBadRequest, "imageContent is not valid base64")
		return
	}

	_, err = h.service.UploadImage(r.Context(), gallery.UploadImageRequest{
		Owner:     owner,
		ImageName: req.ImageName,
		Content:   content,
		Force:     force,
	})
	switch {
	case err == nil:
		writeStatus(w, r, http.StatusOK, "OK")
	case errors.Is(err, gallery.ErrObjectExists):
		writeStatus(w, r, http.StatusConflict, "Already exists")
	case errors.Is(err, gallery.ErrInvalidImageName), errors.Is(err, gallery.ErrInvalidOwner):
		writeStatus(w, r, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Upload failed", "owner", owner, "image", req.ImageName, "error", err)
		writeStatus(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
}

// ListImages returns every stored image across all owners.
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListImages(r.Context())
	if err != nil {
		writeStatus(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	render.JSON(w, r, entries)
}
