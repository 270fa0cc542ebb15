package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blocksd/pkg/types"
)

// Service defines the synchronizer methods required by the HTTP API layer.
type Service interface {
	Register(formName string)
	Unregister(formName string) error
	AddComponent(formName, typeDescription, name, uid string) error
	RemoveComponent(formName, typeName, name, uid string) error
	RenameComponent(formName, typeName, oldName, newName, uid string) error
	LoadContent(formName, content string) error
	Content(formName string) (string, error)
	SaveForReinit(formName string) error
	ShowComponentDrawer(formName, name string) error
	HideComponentDrawer(formName string) error
	ShowBuiltinDrawer(formName, name string) error
	HideBuiltinDrawer(formName string) error
	DrawerShowing(formName string) (bool, error)
	Yail(formName string) (string, error)
	Status() types.StatusResponse
	FormStatus(formName string) (types.FormStatus, error)
}

// TypeCatalog resolves component type names for adds that reference the
// catalog instead of carrying the descriptor JSON inline.
type TypeCatalog interface {
	Get(name string) (types.ComponentType, bool)
	List() []types.ComponentType
}

// NewMux builds the HTTP API router. editorWS, when non-nil, is mounted at
// /editor/ws and handles the embedded editor websocket connections.
func NewMux(svc Service, cat TypeCatalog, editorWS http.Handler) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// The websocket endpoint stays outside the API middleware group:
	// compression and the instrumenting response wrappers do not implement
	// http.Hijacker, which the upgrade needs.
	if editorWS != nil {
		r.Handle("/editor/ws", editorWS)
	}

	r.Group(func(r chi.Router) {
		// Compression for JSON endpoints
		r.Use(middleware.Compress(5))
		// Security headers
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Content-Type-Options", "nosniff")
				next.ServeHTTP(w, r)
			})
		})
		if corsEnabled {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: corsAllowedOrigins,
				AllowedMethods: corsAllowedMethods,
				AllowedHeaders: corsAllowedHeaders,
				MaxAge:         300,
			}))
		}
		r.Use(MetricsMiddleware)
		r.Use(LoggingMiddleware)

		r.Put("/forms/{form}", func(w http.ResponseWriter, r *http.Request) {
			form := chi.URLParam(r, "form")
			svc.Register(form)
			st, err := svc.FormStatus(form)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, st)
		})

		r.Delete("/forms/{form}", func(w http.ResponseWriter, r *http.Request) {
			if err := svc.Unregister(chi.URLParam(r, "form")); err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Get("/forms", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, types.FormsResponse{Forms: svc.Status().Forms})
		})

		r.Get("/forms/{form}", func(w http.ResponseWriter, r *http.Request) {
			st, err := svc.FormStatus(chi.URLParam(r, "form"))
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, st)
		})

		r.Post("/forms/{form}/components", func(w http.ResponseWriter, r *http.Request) {
			form := chi.URLParam(r, "form")
			var req types.ComponentAddRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			if strings.TrimSpace(req.UID) == "" {
				writeJSONError(w, http.StatusBadRequest, "uid is required")
				return
			}
			if strings.TrimSpace(req.Name) == "" {
				writeJSONError(w, http.StatusBadRequest, "name is required")
				return
			}
			td := req.TypeDescription
			switch {
			case td != "" && req.Type != "":
				writeJSONError(w, http.StatusBadRequest, "type and type_description are mutually exclusive")
				return
			case td == "" && req.Type == "":
				writeJSONError(w, http.StatusBadRequest, "either type or type_description is required")
				return
			case td == "":
				ct, ok := cat.Get(req.Type)
				if !ok {
					writeJSONError(w, http.StatusBadRequest, "unknown component type: "+req.Type)
					return
				}
				td = ct.Description
			}
			if err := svc.AddComponent(form, td, req.Name, req.UID); err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Delete("/forms/{form}/components/{uid}", func(w http.ResponseWriter, r *http.Request) {
			form := chi.URLParam(r, "form")
			uid := chi.URLParam(r, "uid")
			name := r.URL.Query().Get("name")
			if name == "" {
				writeJSONError(w, http.StatusBadRequest, "name query parameter is required")
				return
			}
			if err := svc.RemoveComponent(form, r.URL.Query().Get("type"), name, uid); err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/forms/{form}/components/{uid}/rename", func(w http.ResponseWriter, r *http.Request) {
			form := chi.URLParam(r, "form")
			uid := chi.URLParam(r, "uid")
			var req types.ComponentRenameRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			if strings.TrimSpace(req.OldName) == "" || strings.TrimSpace(req.NewName) == "" {
				writeJSONError(w, http.StatusBadRequest, "old_name and new_name are required")
				return
			}
			if err := svc.RenameComponent(form, req.Type, req.OldName, req.NewName, uid); err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Get("/forms/{form}/blocks", func(w http.ResponseWriter, r *http.Request) {
			content, err := svc.Content(chi.URLParam(r, "form"))
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(content))
		})

		r.Put("/forms/{form}/blocks", func(w http.ResponseWriter, r *http.Request) {
			// Blocks content is an opaque string, not JSON.
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "failed to read request body")
				return
			}
			if err := svc.LoadContent(chi.URLParam(r, "form"), string(body)); err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/forms/{form}/reinit", func(w http.ResponseWriter, r *http.Request) {
			if err := svc.SaveForReinit(chi.URLParam(r, "form")); err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Get("/forms/{form}/yail", func(w http.ResponseWriter, r *http.Request) {
			out, err := svc.Yail(chi.URLParam(r, "form"))
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(out))
		})

		r.Post("/forms/{form}/drawer", func(w http.ResponseWriter, r *http.Request) {
			form := chi.URLParam(r, "form")
			var req types.DrawerRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			var err error
			switch req.Action {
			case types.DrawerShowComponent:
				if strings.TrimSpace(req.Name) == "" {
					writeJSONError(w, http.StatusBadRequest, "name is required for "+req.Action)
					return
				}
				err = svc.ShowComponentDrawer(form, req.Name)
			case types.DrawerHideComponent:
				err = svc.HideComponentDrawer(form)
			case types.DrawerShowBuiltin:
				if strings.TrimSpace(req.Name) == "" {
					writeJSONError(w, http.StatusBadRequest, "name is required for "+req.Action)
					return
				}
				err = svc.ShowBuiltinDrawer(form, req.Name)
			case types.DrawerHideBuiltin:
				err = svc.HideBuiltinDrawer(form)
			default:
				writeJSONError(w, http.StatusBadRequest, "unknown drawer action: "+req.Action)
				return
			}
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Get("/forms/{form}/drawer", func(w http.ResponseWriter, r *http.Request) {
			showing, err := svc.DrawerShowing(chi.URLParam(r, "form"))
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, types.DrawerStatus{Showing: showing})
		})

		r.Get("/components", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, types.ComponentsResponse{Components: cat.List()})
		})

		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Status())
		})

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})

		r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
			st := svc.Status()
			if st.ReadyForms == st.RegisteredForms {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ready"))
				return
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("loading"))
		})

		// Prometheus metrics endpoint
		r.Get("/metrics", promhttp.Handler().ServeHTTP)

		MountSwagger(r)
	})

	return r
}

// writeJSON writes v as a JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// decodeJSON enforces the JSON content type and the body size limit, then
// decodes the body into dst. On failure it writes the error response and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	// If exceeded size, MaxBytesReader may cause an error; still return 400 to
	// avoid size leak details
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
