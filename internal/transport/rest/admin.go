package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/internal/service/permission"
	"github.com/heartmarshall/tagger-backend/internal/service/user"
)

type permissionService interface {
	ListPermissions(ctx context.Context, filter domain.PermissionFilter) ([]domain.Permission, error)
	GrantPermission(ctx context.Context, input permission.GrantInput) (*domain.Permission, error)
	UpdatePermission(ctx context.Context, permissionID uuid.UUID, input permission.GrantInput) (*domain.Permission, error)
	RevokePermission(ctx context.Context, permissionID uuid.UUID) error
}

type userService interface {
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	ProvisionOperator(ctx context.Context, userID uuid.UUID) (*domain.Operator, error)
	ListOperators(ctx context.Context) ([]domain.Operator, error)
}

// AdminHandler serves account, operator and permission administration.
type AdminHandler struct {
	permissions permissionService
	users       userService
	log         *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(permissions permissionService, users userService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		permissions: permissions,
		users:       users,
		log:         logger.With("handler", "admin"),
	}
}

type permissionRequest struct {
	DatasetID  string `json:"datasetId"`
	OperatorID string `json:"operatorId"`
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

type createOperatorRequest struct {
	UserID string `json:"userId"`
}

func (req permissionRequest) toInput() (permission.GrantInput, error) {
	datasetID, err := parseUUIDField("datasetId", req.DatasetID)
	if err != nil {
		return permission.GrantInput{}, err
	}
	operatorID, err := parseUUIDField("operatorId", req.OperatorID)
	if err != nil {
		return permission.GrantInput{}, err
	}
	return permission.GrantInput{DatasetID: datasetID, OperatorID: operatorID}, nil
}

// ListPermissions handles GET /api/permissions?datasetId=&operatorId=.
func (h *AdminHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	var filter domain.PermissionFilter
	q := r.URL.Query()

	if v := q.Get("datasetId"); v != "" {
		id, err := parseUUIDField("datasetId", v)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		filter.DatasetID = &id
	}
	if v := q.Get("operatorId"); v != "" {
		id, err := parseUUIDField("operatorId", v)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		filter.OperatorID = &id
	}

	items, err := h.permissions.ListPermissions(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toPermissionResponse))
}

// GrantPermission handles POST /api/permissions.
func (h *AdminHandler) GrantPermission(w http.ResponseWriter, r *http.Request) {
	var req permissionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.permissions.GrantPermission(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPermissionResponse(p))
}

// UpdatePermission handles PUT /api/permissions/{permissionID}.
func (h *AdminHandler) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "permissionID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req permissionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.permissions.UpdatePermission(r.Context(), id, input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPermissionResponse(p))
}

// RevokePermission handles DELETE /api/permissions/{permissionID}.
func (h *AdminHandler) RevokePermission(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "permissionID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.permissions.RevokePermission(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateUser handles POST /api/users.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.users.CreateUser(r.Context(), user.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// ListOperators handles GET /api/operators.
func (h *AdminHandler) ListOperators(w http.ResponseWriter, r *http.Request) {
	ops, err := h.users.ListOperators(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(ops, toOperatorResponse))
}

// CreateOperator handles POST /api/operators.
func (h *AdminHandler) CreateOperator(w http.ResponseWriter, r *http.Request) {
	var req createOperatorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	userID, err := parseUUIDField("userId", req.UserID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	op, err := h.users.ProvisionOperator(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOperatorResponse(op))
}
