package repo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/didi/gendry/builder"

	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/pkg/dbutil"
	appErr "github.com/dorilab/dori/internal/pkg/errors"
)

type SpotRepo struct {
	db *sql.DB
}

func NewSpotRepo(db *sql.DB) *SpotRepo {
	return &SpotRepo{db: db}
}

func (r *SpotRepo) Upsert(ctx context.Context, spot *model.Spot) error {
	names, err := json.Marshal(spot.Names)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO spots (place_id, code, name_en, names, order_no, lat, lng, is_photo_spot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (code) DO UPDATE SET
			place_id      = EXCLUDED.place_id,
			name_en       = EXCLUDED.name_en,
			names         = EXCLUDED.names,
			order_no      = EXCLUDED.order_no,
			lat           = EXCLUDED.lat,
			lng           = EXCLUDED.lng,
			is_photo_spot = EXCLUDED.is_photo_spot
	`
	_, err = r.db.ExecContext(ctx, query,
		spot.PlaceID, spot.Code, spot.NameEN, names, spot.OrderNo, spot.Lat, spot.Lng, spot.IsPhotoSpot)
	return err
}

func (r *SpotRepo) GetByCode(ctx context.Context, code string) (*model.Spot, error) {
	where := map[string]interface{}{
		"code": code,
	}
	sqlStr, args, err := builder.BuildSelect("spots", where, spotFields())
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	row := r.db.QueryRowContext(ctx, sqlStr, args...)
	spot, err := scanSpot(row)
	if err == sql.ErrNoRows {
		return nil, appErr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return spot, nil
}

// ListRoute returns the spots of a place in route order.
func (r *SpotRepo) ListRoute(ctx context.Context, placeID string) ([]*model.Spot, error) {
	where := map[string]interface{}{
		"place_id": placeID,
		"_orderby": "order_no asc",
	}
	sqlStr, args, err := builder.BuildSelect("spots", where, spotFields())
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var spots []*model.Spot
	for rows.Next() {
		spot, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		spots = append(spots, spot)
	}
	return spots, rows.Err()
}

func spotFields() []string {
	return []string{"id", "place_id", "code", "name_en", "names", "order_no", "lat", "lng", "is_photo_spot"}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpot(row rowScanner) (*model.Spot, error) {
	var spot model.Spot
	var names []byte
	if err := row.Scan(&spot.ID, &spot.PlaceID, &spot.Code, &spot.NameEN, &names,
		&spot.OrderNo, &spot.Lat, &spot.Lng, &spot.IsPhotoSpot); err != nil {
		return nil, err
	}
	if len(names) > 0 {
		if err := json.Unmarshal(names, &spot.Names); err != nil {
			return nil, err
		}
	}
	return &spot, nil
}
