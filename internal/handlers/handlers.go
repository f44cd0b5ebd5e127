// Package handlers contains the HTTP layer: one handler struct per entity,
// explicit input structs validated at the boundary, persistence via gorm.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID parses the {id} route parameter. Zero or non-numeric ids are invalid.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
