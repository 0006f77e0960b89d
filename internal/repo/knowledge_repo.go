package repo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/didi/gendry/builder"
	"github.com/lib/pq"

	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/pkg/dbutil"
)

type KnowledgeRepo struct {
	db *sql.DB
}

func NewKnowledgeRepo(db *sql.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

// Create inserts a knowledge document and returns its assigned id.
func (r *KnowledgeRepo) Create(ctx context.Context, doc *model.KnowledgeDoc) (int64, error) {
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	blob, err := json.Marshal(tags)
	if err != nil {
		return 0, err
	}
	const query = `
		INSERT INTO knowledge_docs (spot_id, place_id, language, source_type, source_ref, text, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err = r.db.QueryRowContext(ctx, query,
		doc.SpotID, doc.PlaceID, doc.Language, doc.SourceType, doc.SourceRef, doc.Text, blob).Scan(&id)
	if err != nil {
		return 0, err
	}
	doc.ID = id
	return id, nil
}

// ListByLanguage returns every document in a language, ordered by id. The
// index builder relies on this ordering being stable across rebuilds.
func (r *KnowledgeRepo) ListByLanguage(ctx context.Context, language string) ([]*model.KnowledgeDoc, error) {
	where := map[string]interface{}{
		"language": language,
		"_orderby": "id asc",
	}
	sqlStr, args, err := builder.BuildSelect("knowledge_docs", where, knowledgeFields())
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	return r.queryDocs(ctx, sqlStr, args)
}

// GetByIDs resolves documents for the given ids. Row order is unspecified;
// callers that care about ranking must reorder by their own id list.
func (r *KnowledgeRepo) GetByIDs(ctx context.Context, ids []int64) ([]*model.KnowledgeDoc, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `
		SELECT id, spot_id, place_id, language, source_type, source_ref, text, tags
		FROM knowledge_docs
		WHERE id = ANY($1)
	`
	return r.queryDocs(ctx, query, []interface{}{pq.Array(ids)})
}

// Stats reports document count and max id for one language, used by the
// index freshness job to detect store/index drift.
func (r *KnowledgeRepo) Stats(ctx context.Context, language string) (count int64, maxID int64, err error) {
	const query = `
		SELECT COUNT(*), COALESCE(MAX(id), 0)
		FROM knowledge_docs
		WHERE language = $1
	`
	err = r.db.QueryRowContext(ctx, query, language).Scan(&count, &maxID)
	return count, maxID, err
}

func knowledgeFields() []string {
	return []string{"id", "spot_id", "place_id", "language", "source_type", "source_ref", "text", "tags"}
}

func (r *KnowledgeRepo) queryDocs(ctx context.Context, sqlStr string, args []interface{}) ([]*model.KnowledgeDoc, error) {
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var docs []*model.KnowledgeDoc
	for rows.Next() {
		var doc model.KnowledgeDoc
		var sourceRef sql.NullString
		var tags []byte
		if err := rows.Scan(&doc.ID, &doc.SpotID, &doc.PlaceID, &doc.Language,
			&doc.SourceType, &sourceRef, &doc.Text, &tags); err != nil {
			return nil, err
		}
		doc.SourceRef = sourceRef.String
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &doc.Tags); err != nil {
				return nil, err
			}
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}
