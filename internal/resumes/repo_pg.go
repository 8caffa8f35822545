package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert stores the record. Keyword and suggestion lists are serialized as
// JSONB so history listings can return them without a join.
func (r *PGRepo) Insert(ctx context.Context, record Record) error {
	const query = `
INSERT INTO resumes (id, owner_id, raw_text, ats_score, matched_keywords, suggestions, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	keywords, err := marshalJSONB(record.MatchedKeywords)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	suggestions, err := marshalJSONB(record.Suggestions)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.OwnerID,
		record.RawText,
		record.ATSScore,
		keywords,
		suggestions,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's records, newest first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Record, error) {
	const query = `
SELECT id, owner_id, raw_text, ats_score, matched_keywords, suggestions, created_at
FROM resumes
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			record      Record
			keywords    []byte
			suggestions []byte
		)
		if err := rows.Scan(
			&record.ID,
			&record.OwnerID,
			&record.RawText,
			&record.ATSScore,
			&keywords,
			&suggestions,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list resumes: scan: %w", err)
		}
		record.MatchedKeywords = unmarshalStrings(keywords)
		record.Suggestions = unmarshalStrings(suggestions)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return records, nil
}

func marshalJSONB(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func unmarshalStrings(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	return values
}
