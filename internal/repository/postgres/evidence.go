package postgres

import (
	"context"
	"database/sql"

	"betak-backend/internal/repository"

	"github.com/lib/pq"
)

type evidenceFileIndex struct {
	db *sql.DB
}

func NewEvidenceFileIndex(db *sql.DB) repository.EvidenceFileIndex {
	return &evidenceFileIndex{db: db}
}

// ReferencedFiles collects every stored file key any record still points at:
// rental evidence, property images, and passport pages. The cleanup job
// treats everything else in the upload directory as orphaned.
func (r *evidenceFileIndex) ReferencedFiles(ctx context.Context) (map[string]struct{}, error) {
	refs := make(map[string]struct{})

	arrayQueries := []string{
		`SELECT before_pictures FROM rentals`,
		`SELECT after_pictures FROM rentals`,
		`SELECT images FROM properties`,
	}
	for _, q := range arrayQueries {
		rows, err := r.db.QueryContext(ctx, q)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var files []string
			if err := rows.Scan(pq.Array(&files)); err != nil {
				rows.Close()
				return nil, err
			}
			for _, f := range files {
				refs[f] = struct{}{}
			}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}

	rows, err := r.db.QueryContext(ctx, `SELECT passport_first_page, passport_second_page FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var first, second string
		if err := rows.Scan(&first, &second); err != nil {
			return nil, err
		}
		refs[first] = struct{}{}
		refs[second] = struct{}{}
	}
	return refs, rows.Err()
}
