package responses

import "plantao-service/internal/app/models"

type Contract struct {
	models.Contract
	NextAction   string        `json:"nextAction"`
	CanCancel    bool          `json:"canCancel"`
	Verification *Verification `json:"verification,omitempty"`
}

type DashboardSummary struct {
	AvailableDays     int               `json:"availableDays"`
	NewProposals      int               `json:"newProposals"`
	ActiveContracts   int               `json:"activeContracts"`
	HoursWorked       int               `json:"hoursWorked"`
	// CurrentMonthHours is the entry of MonthlyHours for the current month.
	CurrentMonthHours int               `json:"currentMonthHours"`
	MonthlyHours      []MonthHours      `json:"monthlyHours"`
	UpcomingShifts    []models.Contract `json:"upcomingShifts"`
	RecentProposals   []models.Proposal `json:"recentProposals"`
}

// MonthHours is one point of the worked hours chart. Month is "YYYY-MM".
type MonthHours struct {
	Month string `json:"month"`
	Hours int    `json:"hours"`
}
