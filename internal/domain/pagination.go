package domain

import (
	"fmt"
	"strconv"
)

// Pagination parameter names as they appear in query strings.
const (
	ParamPage    = "page"
	ParamPerPage = "per_page"
)

// PageRequest identifies a window of the ordered task list.
type PageRequest struct {
	Page    int
	PerPage int
}

// NewPageRequest validates page and perPage. Both must be at least 1 and
// perPage must not exceed maxPerPage.
func NewPageRequest(page, perPage, maxPerPage int) (PageRequest, error) {
	if page < 1 {
		return PageRequest{}, NewPaginationError(ParamPage, strconv.Itoa(page), "must be a positive integer")
	}
	if perPage < 1 {
		return PageRequest{}, NewPaginationError(ParamPerPage, strconv.Itoa(perPage), "must be a positive integer")
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		return PageRequest{}, NewPaginationError(
			ParamPerPage,
			strconv.Itoa(perPage),
			fmt.Sprintf("must not exceed %d", maxPerPage),
		)
	}
	return PageRequest{Page: page, PerPage: perPage}, nil
}

// Offset returns the number of records preceding the page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TaskPage is one pagination window over the task list plus metadata
// computed from the total record count.
type TaskPage struct {
	Tasks      []*Task
	Page       int
	PerPage    int
	TotalPages int
	TotalItems int
}

// NewTaskPage assembles a TaskPage. Pages past the end carry an empty task list.
func NewTaskPage(req PageRequest, tasks []*Task, totalItems int) *TaskPage {
	if tasks == nil {
		tasks = []*Task{}
	}
	return &TaskPage{
		Tasks:      tasks,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: TotalPages(totalItems, req.PerPage),
		TotalItems: totalItems,
	}
}

// TotalPages returns ceil(totalItems / perPage), or 0 when perPage is not positive.
func TotalPages(totalItems, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}
