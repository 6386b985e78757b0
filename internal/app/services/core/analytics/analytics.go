package analytics

import (
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/utils"
	"sort"
	"time"
)

// WeeklyPrescriptionSeries counts prescriptions created on each of the last
// seven calendar days, oldest first, in now's location.
func WeeklyPrescriptionSeries(prescriptions []models.Prescription, now time.Time) []models.DailyCount {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	series := make([]models.DailyCount, 0, constvars.WeeklySeriesDays)
	index := make(map[string]int, constvars.WeeklySeriesDays)
	for i := constvars.WeeklySeriesDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format(constvars.DateLayout)
		index[key] = len(series)
		series = append(series, models.DailyCount{
			Day:  day.Format(constvars.WeekdayShortLayout),
			Date: key,
		})
	}

	for _, prescription := range prescriptions {
		if prescription.CreatedAt == "" {
			continue
		}
		createdAt, err := utils.ParseAPITime(prescription.CreatedAt, loc)
		if err != nil {
			continue
		}
		if position, ok := index[createdAt.In(loc).Format(constvars.DateLayout)]; ok {
			series[position].Count++
		}
	}
	return series
}

// TopMedications ranks medication names by how many prescriptions list
// them, most used first with ties broken by name.
func TopMedications(prescriptions []models.Prescription, limit int) []models.MedicationUsage {
	counts := make(map[string]int)
	for _, prescription := range prescriptions {
		for _, medication := range prescription.Medications {
			if medication.Name == "" {
				continue
			}
			counts[medication.Name]++
		}
	}

	usage := make([]models.MedicationUsage, 0, len(counts))
	for name, uses := range counts {
		usage = append(usage, models.MedicationUsage{Name: name, Uses: uses})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Uses != usage[j].Uses {
			return usage[i].Uses > usage[j].Uses
		}
		return usage[i].Name < usage[j].Name
	})

	if limit > 0 && len(usage) > limit {
		usage = usage[:limit]
	}
	return usage
}

// CountByStatus tallies statuses in first seen order. Empty statuses count
// as defaultStatus.
func CountByStatus(statuses []string, defaultStatus string) []models.StatusCount {
	counts := []models.StatusCount{}
	index := make(map[string]int)
	for _, status := range statuses {
		if status == "" {
			status = defaultStatus
		}
		if position, ok := index[status]; ok {
			counts[position].Total++
			continue
		}
		index[status] = len(counts)
		counts = append(counts, models.StatusCount{Status: status, Total: 1})
	}
	return counts
}

func StockDistribution(items []models.InventoryItem) []models.StatusCount {
	statuses := make([]string, 0, len(items))
	for _, item := range items {
		statuses = append(statuses, item.Status)
	}
	return CountByStatus(statuses, models.InventoryStatusInStock)
}

func RefillStatusDistribution(orders []models.RefillRequest) []models.StatusCount {
	statuses := make([]string, 0, len(orders))
	for _, order := range orders {
		statuses = append(statuses, string(order.Status))
	}
	return CountByStatus(statuses, string(models.RefillStatusRequested))
}
