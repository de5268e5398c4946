package dto

import authdomain "marketplace-backend/internal/auth/domain"

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type DashboardStats struct {
	TotalUsers       int64                  `json:"totalUsers"`
	TotalProducts    int64                  `json:"totalProducts"`
	LowStockProducts int64                  `json:"lowStockProducts"`
	UsersByRole      []authdomain.RoleCount `json:"usersByRole"`
}
