package api

import (
	"net/http"

	"github.com/examprep/backend/internal/domain/syllabus"
)

// getSyllabus returns the stored syllabus tree.
// @Summary      Get the syllabus
// @Tags         Syllabus
// @Produce      json
// @Success      200  {object}  syllabus.Tree
// @Failure      500  {object}  map[string]string
// @Router       /syllabus [get]
func (h *Handler) getSyllabus(w http.ResponseWriter, r *http.Request) {
	tree, err := h.store.GetSyllabus(r.Context())
	if h.handleError(w, err, "syllabus") {
		return
	}
	respondJSON(w, http.StatusOK, tree)
}

// replaceSyllabus swaps the whole syllabus tree.
// @Summary      Replace the syllabus
// @Description  Replace the papers → topics → subtopics tree. Node ids must be unique. Target values are not checked here; malformed nodes are reported by the progress endpoints.
// @Tags         Syllabus
// @Accept       json
// @Produce      json
// @Param        body  body      syllabus.Tree  true  "Syllabus tree"
// @Success      200   {object}  syllabus.Tree
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /syllabus [put]
func (h *Handler) replaceSyllabus(w http.ResponseWriter, r *http.Request) {
	var tree syllabus.Tree
	if !decodeAndValidate(w, r, &tree) {
		return
	}
	if id, dup := firstDuplicateID(tree); dup {
		respondError(w, http.StatusBadRequest, "duplicate node id "+id)
		return
	}
	if h.handleError(w, h.store.ReplaceSyllabus(r.Context(), tree), "syllabus") {
		return
	}
	h.logger.Info("syllabus replaced", "nodes", tree.Size())
	respondJSON(w, http.StatusOK, tree)
}

func firstDuplicateID(tree syllabus.Tree) (string, bool) {
	seen := make(map[string]bool, tree.Size())
	var dup string
	tree.Walk(func(n syllabus.Node, _ *syllabus.Node) bool {
		if dup != "" {
			return false
		}
		if seen[n.ID] {
			dup = n.ID
			return false
		}
		seen[n.ID] = true
		return true
	})
	return dup, dup != ""
}
