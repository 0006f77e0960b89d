package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/pkg/dbutil"
)

type ScriptRepo struct {
	db *sql.DB
}

func NewScriptRepo(db *sql.DB) *ScriptRepo {
	return &ScriptRepo{db: db}
}

func (r *ScriptRepo) Create(ctx context.Context, paragraph *model.ScriptParagraph) error {
	data := map[string]interface{}{
		"spot_id":       paragraph.SpotID,
		"order_in_spot": paragraph.OrderInSpot,
		"language":      paragraph.Language,
		"text":          paragraph.Text,
	}
	sqlStr, args, err := builder.BuildInsert("scripts", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	sqlStr += " ON CONFLICT (spot_id, language, order_in_spot) DO NOTHING"
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// ListBySpot returns a spot's narration paragraphs for one language in order.
func (r *ScriptRepo) ListBySpot(ctx context.Context, spotID int64, language string) ([]*model.ScriptParagraph, error) {
	where := map[string]interface{}{
		"spot_id":  spotID,
		"language": language,
		"_orderby": "order_in_spot asc",
	}
	sqlStr, args, err := builder.BuildSelect("scripts", where,
		[]string{"id", "spot_id", "order_in_spot", "language", "text"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var paragraphs []*model.ScriptParagraph
	for rows.Next() {
		var p model.ScriptParagraph
		if err := rows.Scan(&p.ID, &p.SpotID, &p.OrderInSpot, &p.Language, &p.Text); err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, &p)
	}
	return paragraphs, rows.Err()
}
