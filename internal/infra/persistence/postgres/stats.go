package postgres

import (
	"context"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// queryStats aggregates the owner's rows of table. Dashboard reads tolerate replica lag,
// so both queries are routed to a read replica when one is configured. reader is a new
// session so each query starts from a clean statement.
func queryStats(ctx context.Context, db *gorm.DB, table any, ownerID uuid.UUID, activeStatus string) (*entity.AgreementStats, error) {
	reader := db.WithContext(ctx).Clauses(dbresolver.Read).Session(&gorm.Session{})

	var summary model.SummaryRow
	err := reader.Model(table).
		Select(
			"COUNT(*) AS total_agreements, "+
				"COALESCE(SUM(total_cost), 0) AS total_revenue, "+
				"COUNT(*) FILTER (WHERE status = ?) AS active_agreements",
			activeStatus,
		).
		Where("created_by = ?", ownerID).
		Scan(&summary).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate summary")
	}

	var months []model.MonthlyRevenueRow
	err = reader.Model(table).
		Select(
			"EXTRACT(YEAR FROM created_at)::int AS year, "+
				"EXTRACT(MONTH FROM created_at)::int AS month, "+
				"COALESCE(SUM(total_cost), 0) AS revenue, "+
				"COUNT(*) AS count",
		).
		Where("created_by = ?", ownerID).
		Group("year, month").
		Order("year DESC, month DESC").
		Limit(entity.StatsMonthLimit).
		Scan(&months).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate monthly revenue")
	}

	stats := &entity.AgreementStats{
		Summary: entity.AgreementSummary{
			TotalAgreements:  summary.TotalAgreements,
			TotalRevenue:     summary.TotalRevenue,
			ActiveAgreements: summary.ActiveAgreements,
		},
		MonthlyRevenue: make([]entity.MonthlyRevenue, 0, len(months)),
	}
	for _, m := range months {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, entity.MonthlyRevenue{
			Year:    m.Year,
			Month:   m.Month,
			Revenue: m.Revenue,
			Count:   m.Count,
		})
	}

	return stats, nil
}
