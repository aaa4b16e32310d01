package handlers

import (
	"strings"

	"apptrack/internal/listview"
	"apptrack/internal/services/dto"
	"apptrack/internal/validator"
	"apptrack/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler provides request binding and validation shared by every
// handler.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON binds the JSON body and runs validation. On failure it
// writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidateQuery binds query parameters and runs validation.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid query parameters"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// applyListQuery configures a fresh view from the bound query parameters:
// free-text query, explicit sort, and the requested visible column set.
func applyListQuery[T any](view *listview.View[T], q *dto.ListQuery) {
	view.SetQuery(q.Q)

	if q.Sort != "" {
		dir := listview.Ascending
		if q.Order == "desc" {
			dir = listview.Descending
		}
		view.SetSort(q.Sort, dir)
	}

	if q.Columns != "" {
		want := make(map[string]bool)
		for _, id := range strings.Split(q.Columns, ",") {
			want[strings.TrimSpace(id)] = true
		}
		cols := view.Columns()
		for _, col := range cols.Declared() {
			if cols.Visible(col.ID) != want[col.ID] {
				cols.Toggle(col.ID)
			}
		}
	}
}

// renderList runs the view pipeline over the records and writes the rows,
// headers and total as the response payload.
func renderList[T any](c *gin.Context, view *listview.View[T], records []T) {
	rows, headers := view.Rows(records)
	c.JSON(200, gin.H{
		"headers": headers,
		"rows":    rows,
		"total":   len(rows),
	})
}
