package reports

import (
	"sort"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
)

// BuildStatusAnalysis — отчёт о возрасте и статусах парка. data — оборудование,
// размеченное возрастными корзинами; summary собирает распределение по статусам
// (та же логика, что BuildStatusDistribution, на том же отфильтрованном наборе),
// распределение по возрасту, разрез статус×подразделение и статистику
// обслуживания по статусам.
func BuildStatusAnalysis(snap *Snapshot, filter entities.DepartmentFilter, now time.Time) ([]dto.AgeAnalysisItemDTO, *dto.StatusAnalysisSummaryDTO) {
	depts := snap.departmentsByID()
	maintByEq := snap.maintenanceByEquipment()

	eqFilter := entities.EquipmentFilter{DepartmentID: filter.DepartmentID}
	scoped := filterEquipment(snap.Equipment, eqFilter)

	data := make([]dto.AgeAnalysisItemDTO, 0, len(scoped))
	ageDistribution := make(map[string]int)
	for _, e := range scoped {
		years, category := AgeBucket(e.PurchaseDate, now)
		ageDistribution[category]++
		data = append(data, dto.AgeAnalysisItemDTO{
			ID:             e.ID,
			Name:           e.Name,
			Status:         string(NormalizeStatus(e.Status)),
			PurchaseDate:   e.PurchaseDate,
			DepartmentName: departmentName(depts, e.DepartmentID),
			AgeInYears:     years,
			AgeCategory:    category,
		})
	}

	distribution := BuildStatusDistribution(snap, eqFilter)
	statusDistribution := make([]dto.StatusCountDTO, 0, len(distribution.ByStatus))
	for status, bucket := range distribution.ByStatus {
		statusDistribution = append(statusDistribution, dto.StatusCountDTO{
			Status:     status,
			Count:      bucket.Count,
			TotalValue: bucket.TotalValue,
		})
	}
	sort.Slice(statusDistribution, func(i, j int) bool {
		return statusDistribution[i].Status < statusDistribution[j].Status
	})

	type deptStatus struct {
		department string
		status     string
	}
	byDeptStatus := make(map[deptStatus]int)
	for _, e := range scoped {
		key := deptStatus{
			department: departmentKey(depts, e.DepartmentID),
			status:     string(NormalizeStatus(e.Status)),
		}
		byDeptStatus[key]++
	}
	statusByDepartment := make([]dto.DepartmentStatusCountDTO, 0, len(byDeptStatus))
	for key, count := range byDeptStatus {
		statusByDepartment = append(statusByDepartment, dto.DepartmentStatusCountDTO{
			Department: key.department,
			Status:     key.status,
			Count:      count,
		})
	}
	sort.Slice(statusByDepartment, func(i, j int) bool {
		if statusByDepartment[i].Department != statusByDepartment[j].Department {
			return statusByDepartment[i].Department < statusByDepartment[j].Department
		}
		return statusByDepartment[i].Status < statusByDepartment[j].Status
	})

	// Статистика обслуживания по статусам оборудования: группы без единой записи
	// обслуживания дают {0, 0}, а не NaN.
	type maintAgg struct {
		count    int
		costSum  float64
		costSeen int
	}
	maintPerStatus := make(map[string]*maintAgg)
	for _, e := range scoped {
		status := string(NormalizeStatus(e.Status))
		agg := maintPerStatus[status]
		if agg == nil {
			agg = &maintAgg{}
			maintPerStatus[status] = agg
		}
		for _, rec := range maintByEq[e.ID] {
			agg.count++
			if rec.Cost.Valid {
				agg.costSum += rec.Cost.Float64
				agg.costSeen++
			}
		}
	}
	maintenanceByStatus := make([]dto.MaintenanceByStatusDTO, 0, len(maintPerStatus))
	for status, agg := range maintPerStatus {
		avg := 0.0
		if agg.costSeen > 0 {
			avg = agg.costSum / float64(agg.costSeen)
		}
		maintenanceByStatus = append(maintenanceByStatus, dto.MaintenanceByStatusDTO{
			Status:           status,
			MaintenanceCount: agg.count,
			AvgCost:          avg,
		})
	}
	sort.Slice(maintenanceByStatus, func(i, j int) bool {
		return maintenanceByStatus[i].Status < maintenanceByStatus[j].Status
	})

	summary := &dto.StatusAnalysisSummaryDTO{
		TotalEquipment:      distribution.TotalEquipment,
		StatusDistribution:  statusDistribution,
		AgeDistribution:     ageDistribution,
		StatusByDepartment:  statusByDepartment,
		MaintenanceByStatus: maintenanceByStatus,
	}
	return data, summary
}
