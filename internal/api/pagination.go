package api

import (
	"net/http"
	"strconv"
)

// pageWindow is the bounded page/limit pair parsed from a list request.
type pageWindow struct {
	Page  int
	Limit int
}

func (p pageWindow) offset() int {
	return (p.Page - 1) * p.Limit
}

// parsePageWindow reads page and limit query parameters, clamping the
// limit so a single request cannot sweep the whole table.
func parsePageWindow(r *http.Request, defaultLimit, maxLimit int) pageWindow {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return pageWindow{Page: page, Limit: limit}
}

// listMeta describes the window a list response covers within the full
// filtered result set.
type listMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

func newListMeta(w pageWindow, total int) listMeta {
	pages := (total + w.Limit - 1) / w.Limit
	if pages < 1 {
		pages = 1
	}
	return listMeta{
		Page:       w.Page,
		Limit:      w.Limit,
		Total:      total,
		TotalPages: pages,
		HasMore:    w.Page < pages,
	}
}
