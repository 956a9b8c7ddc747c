package model

// CategoryCount is one slice of the category dashboard chart.
type CategoryCount struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
}

// BarangayDistribution is the per-barangay category breakdown.
type BarangayDistribution struct {
	Barangay string         `json:"barangay"`
	Counts   map[string]int `json:"counts"` // keyed by Category
	Total    int            `json:"total"`
}

// AgeBin is one bar of the age-by-gender histogram. Bins are fixed:
// 60-64, 65-69, 70-74, 75-79, 80-84, 85+.
type AgeBin struct {
	Label  string `json:"label"`
	Male   int    `json:"male"`
	Female int    `json:"female"`
	Other  int    `json:"other"`
}

// TrendPoint is one period of the registration trend, monthly
// ("2026-01") or yearly ("2026").
type TrendPoint struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

type DashboardStats struct {
	TotalSeniors         int64   `json:"total_seniors"`
	PendingApplications  int64   `json:"pending_applications"`
	ApprovedApplications int64   `json:"approved_applications"`
	RejectedApplications int64   `json:"rejected_applications"`
	ReleasedSeniors      int64   `json:"released_seniors"`
	FundBalance          float64 `json:"fund_balance"`
	ReleasedFundTotal    float64 `json:"released_fund_total"`
}
