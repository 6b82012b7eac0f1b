package models

import "log/slog"

type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalPolicies     int64 `json:"totalPolicies"`
	TotalApplications int64 `json:"totalApplications"`
	PendingClaims     int64 `json:"pendingApplications"`
	TotalPayments     int64 `json:"totalPayments"`
	RevenueCents      int64 `json:"revenue"`
}

// GetDashboardStats runs the short fixed aggregation backing the admin
// dashboard.
func (db *Database) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&User{}, &stats.TotalUsers},
		{&Policy{}, &stats.TotalPolicies},
		{&Application{}, &stats.TotalApplications},
		{&Payment{}, &stats.TotalPayments},
	}
	for _, c := range counts {
		if err := db.GormDB.Model(c.model).Count(c.dest).Error; err != nil {
			slog.Error("error counting rows for dashboard", "error", err)
			return nil, err
		}
	}

	err := db.GormDB.Model(&Application{}).
		Where("status = ?", ApplicationStatusPending).
		Count(&stats.PendingClaims).Error
	if err != nil {
		slog.Error("error counting pending applications", "error", err)
		return nil, err
	}

	err = db.GormDB.Model(&Payment{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&stats.RevenueCents).Error
	if err != nil {
		slog.Error("error summing payment revenue", "error", err)
		return nil, err
	}

	return stats, nil
}
