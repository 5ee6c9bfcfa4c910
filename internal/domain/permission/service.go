package permission

import (
	"context"
)

// PermissionService defines business logic for approved leave.
type PermissionService interface {
	CreatePermission(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error)

	// BulkCreate grants the same leave over an inclusive date range,
	// optionally skipping weekends and holidays. The whole grant is one
	// transaction.
	BulkCreate(ctx context.Context, req BulkCreatePermissionRequest) ([]PermissionResponse, error)

	GetPermission(ctx context.Context, id int64) (PermissionResponse, error)

	ListPermissions(ctx context.Context, filter Filter) (ListPermissionsResponse, error)

	UpdatePermission(ctx context.Context, id int64, req UpdatePermissionRequest) (PermissionResponse, error)

	DeletePermission(ctx context.Context, id int64) error
}

type ListPermissionsResponse struct {
	Permissions []PermissionResponse `json:"permissions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PerPage     int                  `json:"per_page"`
}
