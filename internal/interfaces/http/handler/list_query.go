package handler

import (
	financeapp "github.com/finsight/backend/internal/application/finance"
)

// ListQuery binds the pagination, ordering, and search query parameters
// shared by list endpoints.
type ListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=created_at updated_at name source amount current_value principal balance"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search" binding:"omitempty,max=200"`
}

func (q ListQuery) toFilter() financeapp.ListFilter {
	return financeapp.ListFilter{
		Page:     q.Page,
		PageSize: q.PageSize,
		OrderBy:  q.OrderBy,
		OrderDir: q.OrderDir,
		Search:   q.Search,
	}
}
