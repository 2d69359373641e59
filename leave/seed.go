/*
seed.go - Fixed sample data for demos and tests

PURPOSE:
  The store has no persistence: every process starts from this seed. The
  data mirrors the demo team the dashboard ships with: one employee with
  partially used balances and one supervisor, plus a small request history
  covering every status and a span that crosses a year boundary.
*/
package leave

// SeedEmployees returns the demo registry.
func SeedEmployees() []Employee {
	return []Employee{
		{
			ID:       1,
			Name:     "Elena Rodríguez",
			Position: "Frontend Developer",
			Email:    "elena.rodriguez@example.com",
			Avatar:   "https://i.pravatar.cc/100?u=elena",
			Role:     RoleEmployee,
			Balances: []LeaveBalance{
				NewLeaveBalance(TypeVacation, 20, 5),
				NewLeaveBalance(TypeSick, 10, 2),
				NewLeaveBalance(TypePersonal, 5, 1),
			},
		},
		{
			ID:       2,
			Name:     "Carlos Méndez",
			Position: "Team Lead",
			Email:    "carlos.mendez@example.com",
			Avatar:   "https://i.pravatar.cc/100?u=carlos",
			Role:     RoleSupervisor,
			Balances: []LeaveBalance{
				NewLeaveBalance(TypeVacation, 25, 10),
				NewLeaveBalance(TypeSick, 10, 0),
				NewLeaveBalance(TypePersonal, 5, 3),
			},
		},
	}
}

// SeedRequests returns the demo ledger, newest first.
func SeedRequests() []LeaveRequest {
	elena := SeedEmployees()[0]
	return []LeaveRequest{
		{
			ID:         4,
			UserID:     elena.ID,
			UserName:   elena.Name,
			UserAvatar: elena.Avatar,
			Type:       TypeVacation,
			StartDate:  MustDate("2024-12-24"),
			EndDate:    MustDate("2025-01-02"),
			Reason:     "Year-end holidays",
			Status:     StatusPending,
		},
		{
			ID:         3,
			UserID:     elena.ID,
			UserName:   elena.Name,
			UserAvatar: elena.Avatar,
			Type:       TypePersonal,
			StartDate:  MustDate("2024-08-05"),
			EndDate:    MustDate("2024-08-05"),
			Reason:     "Medical appointment",
			Status:     StatusPending,
		},
		{
			ID:               2,
			UserID:           elena.ID,
			UserName:         elena.Name,
			UserAvatar:       elena.Avatar,
			Type:             TypeSick,
			StartDate:        MustDate("2024-06-10"),
			EndDate:          MustDate("2024-06-10"),
			Status:           StatusApproved,
			SyncedToCalendar: true,
		},
		{
			ID:         1,
			UserID:     elena.ID,
			UserName:   elena.Name,
			UserAvatar: elena.Avatar,
			Type:       TypeVacation,
			StartDate:  MustDate("2024-07-20"),
			EndDate:    MustDate("2024-07-25"),
			Reason:     "Summer vacation",
			Status:     StatusApproved,
		},
	}
}

// NewSeededStore is the default constructor for demos: seed data plus the
// caller's collaborators.
func NewSeededStore(cfg Config) *Store {
	cfg.Employees = SeedEmployees()
	cfg.Requests = SeedRequests()
	return New(cfg)
}
