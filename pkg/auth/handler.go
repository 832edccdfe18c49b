package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// HttpResp represents the standard HTTP response structure.
type HttpResp struct {
	Status  string      `json:"status" example:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message" example:"Operation completed successfully"`
}

// Handler serves the app-facing provider list. It never exposes descriptor
// internals, only the secret-free projection.
type Handler struct {
	Config *Config
	Logger *logrus.Logger
}

// NewHandler initializes a new provider-listing handler.
func NewHandler(config *Config, logger *logrus.Logger) *Handler {
	return &Handler{Config: config, Logger: logger}
}

// Router returns the routes served by this handler.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/auth/providers", h.HandleProviders).Methods("GET")
	return r
}

// HandleProviders returns the app-facing view of every configured provider.
func (h *Handler) HandleProviders(w http.ResponseWriter, r *http.Request) {
	apps := h.Config.Providers.AppProviders(h.Config.BaseURL)
	h.Logger.Debugf("Listing %d providers", len(apps))
	WriteSuccessResponse(w, "Providers retrieved successfully", apps)
}

// WriteJSONResponse writes a JSON response with the specified HTTP status and data.
func WriteJSONResponse(w http.ResponseWriter, httpStatus int, data *HttpResp) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteSuccessResponse sends a successful JSON response.
func WriteSuccessResponse(w http.ResponseWriter, message string, data interface{}) {
	WriteJSONResponse(w,
		http.StatusOK,
		&HttpResp{Status: "success", Data: data, Message: message})
}

// WriteErrorResponse sends an error JSON response.
func WriteErrorResponse(w http.ResponseWriter, message string, httpStatus int) {
	WriteJSONResponse(w,
		httpStatus,
		&HttpResp{Status: "error", Data: nil, Message: message})
}
