package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/pkg/logger"
)

// ReportSeniorReader is the registry slice used by aggregation.
type ReportSeniorReader interface {
	List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error)
	CountActive(ctx context.Context) (int64, error)
	CountReleased(ctx context.Context) (int64, error)
}

type ApplicationCounter interface {
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
}

type FundReader interface {
	GetFund(ctx context.Context) (*model.GovernmentFund, error)
}

type TransactionSummer interface {
	SumByStatus(ctx context.Context, status model.TransactionStatus) (float64, error)
}

// ReportService derives all dashboard views from live rows on every
// call; there is no caching or incremental maintenance. Category
// bucketing goes through model.ResolveCategory, the same function that
// assigns application categories, so counts can never drift from
// assignments.
type ReportService struct {
	seniors      ReportSeniorReader
	applications ApplicationCounter
	fund         FundReader
	txns         TransactionSummer
}

func NewReportService(seniors ReportSeniorReader, applications ApplicationCounter, fund FundReader, txns TransactionSummer) *ReportService {
	return &ReportService{
		seniors:      seniors,
		applications: applications,
		fund:         fund,
		txns:         txns,
	}
}

func (s *ReportService) CategoryCounts(ctx context.Context) ([]*model.CategoryCount, error) {
	seniors, err := s.seniors.List(ctx, model.SeniorFilter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[model.Category]int)
	for _, sen := range seniors {
		age, err := sen.AgeYears()
		if err != nil {
			logger.Warn("skipping senior with bad age", "senior_id", sen.ID, "age", sen.Age)
			continue
		}
		counts[model.ResolveCategory(age)]++
	}

	out := make([]*model.CategoryCount, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		out = append(out, &model.CategoryCount{
			Category: c,
			Label:    c.Label(),
			Count:    counts[c],
		})
	}
	return out, nil
}

func (s *ReportService) BarangayDistribution(ctx context.Context) ([]*model.BarangayDistribution, error) {
	seniors, err := s.seniors.List(ctx, model.SeniorFilter{})
	if err != nil {
		return nil, err
	}

	byBarangay := make(map[string]*model.BarangayDistribution)
	for _, sen := range seniors {
		d, ok := byBarangay[sen.Barangay]
		if !ok {
			d = &model.BarangayDistribution{
				Barangay: sen.Barangay,
				Counts:   make(map[string]int),
			}
			byBarangay[sen.Barangay] = d
		}
		age, err := sen.AgeYears()
		if err != nil {
			logger.Warn("skipping senior with bad age", "senior_id", sen.ID, "age", sen.Age)
			continue
		}
		d.Counts[string(model.ResolveCategory(age))]++
		d.Total++
	}

	out := make([]*model.BarangayDistribution, 0, len(byBarangay))
	for _, d := range byBarangay {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Barangay < out[j].Barangay })
	return out, nil
}

// ageBins are the fixed histogram bins of the age distribution chart.
var ageBins = []struct {
	label string
	lo    int
	hi    int // inclusive; -1 for open-ended
}{
	{"60-64", 60, 64},
	{"65-69", 65, 69},
	{"70-74", 70, 74},
	{"75-79", 75, 79},
	{"80-84", 80, 84},
	{"85+", 85, -1},
}

func (s *ReportService) AgeDistribution(ctx context.Context) ([]*model.AgeBin, error) {
	seniors, err := s.seniors.List(ctx, model.SeniorFilter{})
	if err != nil {
		return nil, err
	}

	bins := make([]*model.AgeBin, len(ageBins))
	for i, b := range ageBins {
		bins[i] = &model.AgeBin{Label: b.label}
	}

	for _, sen := range seniors {
		age, err := sen.AgeYears()
		if err != nil {
			logger.Warn("skipping senior with bad age", "senior_id", sen.ID, "age", sen.Age)
			continue
		}
		for i, b := range ageBins {
			if age < b.lo {
				continue
			}
			if b.hi >= 0 && age > b.hi {
				continue
			}
			switch sen.Gender {
			case "male", "Male", "M", "m":
				bins[i].Male++
			case "female", "Female", "F", "f":
				bins[i].Female++
			default:
				bins[i].Other++
			}
			break
		}
	}
	return bins, nil
}

// RegistrationTrend groups registrations by month ("2006-01") or by
// year ("2006").
func (s *ReportService) RegistrationTrend(ctx context.Context, yearly bool) ([]*model.TrendPoint, error) {
	seniors, err := s.seniors.List(ctx, model.SeniorFilter{})
	if err != nil {
		return nil, err
	}

	layout := "2006-01"
	if yearly {
		layout = "2006"
	}

	counts := make(map[string]int)
	for _, sen := range seniors {
		counts[sen.CreatedAt.Format(layout)]++
	}

	out := make([]*model.TrendPoint, 0, len(counts))
	for period, n := range counts {
		out = append(out, &model.TrendPoint{Period: period, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, nil
}

func (s *ReportService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	var err error
	if stats.TotalSeniors, err = s.seniors.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count seniors: %w", err)
	}
	if stats.ReleasedSeniors, err = s.seniors.CountReleased(ctx); err != nil {
		return nil, fmt.Errorf("count released: %w", err)
	}
	if stats.PendingApplications, err = s.applications.CountByStatus(ctx, model.StatusPending); err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}
	if stats.ApprovedApplications, err = s.applications.CountByStatus(ctx, model.StatusApproved); err != nil {
		return nil, fmt.Errorf("count approved: %w", err)
	}
	if stats.RejectedApplications, err = s.applications.CountByStatus(ctx, model.StatusReject); err != nil {
		return nil, fmt.Errorf("count rejected: %w", err)
	}

	fund, err := s.fund.GetFund(ctx)
	if err != nil {
		return nil, fmt.Errorf("read fund: %w", err)
	}
	stats.FundBalance = fund.CurrentBalance

	if stats.ReleasedFundTotal, err = s.txns.SumByStatus(ctx, model.TransactionReleased); err != nil {
		return nil, fmt.Errorf("sum released transactions: %w", err)
	}

	return stats, nil
}
