package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/examprep/backend/internal/domain/syllabus"
)

// ============================================================================
// Syllabus
// ============================================================================

type nodeRow struct {
	node     syllabus.Node
	parentID sql.NullString
}

// GetSyllabus rebuilds the tree from the adjacency rows, keeping the stored
// sibling order. An empty table yields an empty tree.
func (s *SQLiteStore) GetSyllabus(ctx context.Context) (syllabus.Tree, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, parent_id, kind, name, code, target_questions FROM syllabus_nodes ORDER BY position",
	)
	if err != nil {
		return syllabus.Tree{}, err
	}
	defer rows.Close()

	var all []nodeRow
	for rows.Next() {
		var r nodeRow
		var kind string
		if err := rows.Scan(&r.node.ID, &r.parentID, &kind, &r.node.Name, &r.node.Code, &r.node.TargetQuestions); err != nil {
			return syllabus.Tree{}, err
		}
		r.node.Kind = syllabus.Kind(kind)
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return syllabus.Tree{}, err
	}

	children := make(map[string][]syllabus.Node)
	var roots []syllabus.Node
	for _, r := range all {
		if r.parentID.Valid {
			children[r.parentID.String] = append(children[r.parentID.String], r.node)
		} else {
			roots = append(roots, r.node)
		}
	}

	var attach func(n syllabus.Node) syllabus.Node
	attach = func(n syllabus.Node) syllabus.Node {
		for _, c := range children[n.ID] {
			n.Children = append(n.Children, attach(c))
		}
		return n
	}

	tree := syllabus.Tree{Papers: make([]syllabus.Node, 0, len(roots))}
	for _, r := range roots {
		tree.Papers = append(tree.Papers, attach(r))
	}
	return tree, nil
}

// ReplaceSyllabus swaps the stored tree for tree in one transaction.
func (s *SQLiteStore) ReplaceSyllabus(ctx context.Context, tree syllabus.Tree) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM syllabus_nodes"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO syllabus_nodes (id, parent_id, kind, name, code, target_questions, position) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	position := 0
	var insertErr error
	tree.Walk(func(n syllabus.Node, parent *syllabus.Node) bool {
		if insertErr != nil {
			return false
		}
		var parentID *string
		if parent != nil {
			parentID = &parent.ID
		}
		if _, err := stmt.ExecContext(ctx, n.ID, parentID, string(n.Kind), n.Name, n.Code, n.TargetQuestions, position); err != nil {
			insertErr = fmt.Errorf("insert node %q: %w", n.ID, err)
			return false
		}
		position++
		return true
	})
	if insertErr != nil {
		return insertErr
	}

	return tx.Commit()
}
