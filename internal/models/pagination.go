package models

import (
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest is a 1-based page number and page size
type PageRequest struct {
	Page  int
	Limit int
}

// ParsePageRequest parses the raw page and limit query values, applying defaults for empty ones
func ParsePageRequest(page, limit string) (PageRequest, error) {
	req := PageRequest{Page: DefaultPage, Limit: DefaultLimit}

	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil || p < 1 {
			return req, &ValidationError{Field: "page", Message: fmt.Sprintf("page must be a positive integer, got %q", page)}
		}
		req.Page = p
	}

	if limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil || l < 1 {
			return req, &ValidationError{Field: "limit", Message: fmt.Sprintf("limit must be a positive integer, got %q", limit)}
		}
		req.Limit = l
	}

	// The offset must stay representable for the database
	if req.Page-1 > math.MaxInt/req.Limit {
		return req, &ValidationError{Field: "page", Message: fmt.Sprintf("page %d is out of range for limit %d", req.Page, req.Limit)}
	}

	return req, nil
}

// Offset is the number of records to skip before this page
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is the number of pages needed to hold total records
func (p PageRequest) TotalPages(total int) int {
	if p.Limit <= 0 {
		return 0
	}
	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}
	return pages
}

// PaginatedPeople is one page of search results with its metadata
type PaginatedPeople struct {
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
	Data       []*Person `json:"data"`
}
