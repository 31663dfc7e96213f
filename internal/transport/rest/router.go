package rest

import (
	"net/http"

	"github.com/heartmarshall/tagger-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Dataset  *DatasetHandler
	Tag      *TagHandler
	Sentence *SentenceHandler
	Labeling *LabelingHandler
	Admin    *AdminHandler
	Metrics  http.Handler
}

// NewRouter registers every route. loginLimit throttles POST /auth/login.
func NewRouter(h Handlers, loginLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	admin := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAdmin(fn) }
	authed := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAuth(fn) }

	// Public
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", h.Metrics)
	mux.Handle("POST /auth/login", loginLimit(http.HandlerFunc(h.Auth.Login)))

	// Any authenticated user
	mux.Handle("GET /api/me", authed(h.Auth.Me))
	mux.Handle("GET /api/datasets/{datasetID}/tags", authed(h.Tag.ListActive))
	mux.Handle("POST /api/labels", authed(h.Labeling.Label))
	mux.Handle("GET /api/sentences/unlabeled", authed(h.Labeling.Unlabeled))
	mux.Handle("GET /api/datasets/{datasetID}/tags/{tagID}/labels", authed(h.Labeling.ByTag))
	mux.Handle("GET /api/datasets/{datasetID}/search", authed(h.Labeling.Search))

	// Datasets
	mux.Handle("GET /api/datasets", admin(h.Dataset.List))
	mux.Handle("POST /api/datasets", admin(h.Dataset.Create))
	mux.Handle("GET /api/datasets/{datasetID}", admin(h.Dataset.Get))
	mux.Handle("PUT /api/datasets/{datasetID}", admin(h.Dataset.Update))
	mux.Handle("DELETE /api/datasets/{datasetID}", admin(h.Dataset.Delete))

	// Tags
	mux.Handle("GET /api/datasets/{datasetID}/tags/all", admin(h.Tag.ListAll))
	mux.Handle("POST /api/datasets/{datasetID}/tags", admin(h.Tag.Create))
	mux.Handle("PATCH /api/tags/{tagID}", admin(h.Tag.Patch))
	mux.Handle("DELETE /api/tags/{tagID}", admin(h.Tag.Delete))

	// Sentences
	mux.Handle("GET /api/datasets/{datasetID}/sentences", admin(h.Sentence.List))
	mux.Handle("POST /api/datasets/{datasetID}/sentences", admin(h.Sentence.Create))
	mux.Handle("POST /api/datasets/{datasetID}/sentences/import", admin(h.Sentence.Import))
	mux.Handle("DELETE /api/sentences/{sentenceID}", admin(h.Sentence.Delete))

	// Accounts and permissions
	mux.Handle("GET /api/permissions", admin(h.Admin.ListPermissions))
	mux.Handle("POST /api/permissions", admin(h.Admin.GrantPermission))
	mux.Handle("PUT /api/permissions/{permissionID}", admin(h.Admin.UpdatePermission))
	mux.Handle("DELETE /api/permissions/{permissionID}", admin(h.Admin.RevokePermission))
	mux.Handle("GET /api/operators", admin(h.Admin.ListOperators))
	mux.Handle("POST /api/operators", admin(h.Admin.CreateOperator))
	mux.Handle("POST /api/users", admin(h.Admin.CreateUser))

	return mux
}
