package postgres

import (
	"context"

	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// originExpr is the query origin as a geography value; bind lon then lat.
const originExpr = "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography"

// scopeColumns maps the generic proximity scope onto the columns of one
// listing table. An empty column means the table ignores that predicate.
type scopeColumns struct {
	owner    string
	parent   string
	category string
}

// listingQuery describes how one listing kind is selected: the aliased
// table, the joins needed to reach denormalised fields and the column that
// holds the location distances are measured from.
type listingQuery struct {
	from     string
	joins    string
	columns  string
	location string
	scope    scopeColumns
}

// distanceRow is a listing row plus its computed distance in meters.
type distanceRow[M any] struct {
	Row      M `gorm:"embedded"`
	Distance float64
}

func (q listingQuery) table(ctx context.Context, db *gorm.DB) *gorm.DB {
	tx := db.WithContext(ctx).Table(q.from)
	if q.joins != "" {
		tx = tx.Joins(q.joins)
	}

	return tx
}

func (q listingQuery) base(ctx context.Context, db *gorm.DB, scope proximity.Scope) *gorm.DB {
	tx := q.table(ctx, db).Clauses(dbresolver.Read)
	if scope.OwnerID != nil && q.scope.owner != "" {
		tx = tx.Where(q.scope.owner+" = ?", *scope.OwnerID)
	}
	if scope.ParentID != nil && q.scope.parent != "" {
		tx = tx.Where(q.scope.parent+" = ?", *scope.ParentID)
	}
	if scope.CategoryID != nil && q.scope.category != "" {
		tx = tx.Where(q.scope.category+" = ?", *scope.CategoryID)
	}

	return tx
}

func (q listingQuery) withinRadius(ctx context.Context, db *gorm.DB, origin entity.GeoPoint, radiusMeters float64, scope proximity.Scope) *gorm.DB {
	return q.base(ctx, db, scope).
		Where("ST_DWithin("+q.location+", "+originExpr+", ?)", origin.Lon, origin.Lat, radiusMeters)
}

// findWithinRadius filters by radius and scope in one WHERE clause, then
// orders by distance with the primary key as the tie-break.
func findWithinRadius[M any](ctx context.Context, db *gorm.DB, q listingQuery, origin entity.GeoPoint, radiusMeters float64, scope proximity.Scope, page proximity.PageRequest) ([]distanceRow[M], int64, error) {
	var total int64
	if err := q.withinRadius(ctx, db, origin, radiusMeters, scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]distanceRow[M], 0, page.PageSize)
	if total == 0 || int64(page.Offset()) >= total {
		return rows, total, nil
	}

	err := q.withinRadius(ctx, db, origin, radiusMeters, scope).
		Select(q.columns+", ST_Distance("+q.location+", "+originExpr+") AS distance", origin.Lon, origin.Lat).
		Order("distance ASC").
		Order("l.id ASC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// findAll returns the scoped rows in primary key order.
func findAll[M any](ctx context.Context, db *gorm.DB, q listingQuery, scope proximity.Scope, page proximity.PageRequest) ([]M, int64, error) {
	var total int64
	if err := q.base(ctx, db, scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]M, 0, page.PageSize)
	if total == 0 || int64(page.Offset()) >= total {
		return rows, total, nil
	}

	err := q.base(ctx, db, scope).
		Select(q.columns).
		Order("l.id ASC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// findOne loads a single row through the same joins the listing queries use.
func findOne[M any](ctx context.Context, db *gorm.DB, q listingQuery, id any) (*M, error) {
	var row M
	result := q.table(ctx, db).
		Select(q.columns).
		Where("l.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &row, nil
}

func rankedDistance(d float64) *float64 {
	return &d
}
