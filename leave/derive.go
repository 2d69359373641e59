/*
derive.go - Pure derivations over the store's current state

PURPOSE:
  The three read models the dashboard renders from. Each one recomputes
  from the registry and ledger on every call; the data is small, so
  correctness wins over incremental caching. Nothing here mutates state.

DERIVATIONS:
  VisibleRequests: Role-scoped slice of the ledger, ledger order preserved
  CurrentBalances: Live view of one employee's balance entries
  TeamLeaveIndex:  Approved spans flattened to one entry per calendar day
*/
package leave

// VisibleRequests returns the requests the viewer may see. Supervisors see
// the entire ledger; employees only their own entries. Order is always the
// ledger's insertion order (most recent first), never re-sorted.
func (s *Store) VisibleRequests(viewer Employee) []LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeaveRequest, 0, len(s.ledger))
	for _, r := range s.ledger {
		if viewer.Role == RoleSupervisor || r.UserID == viewer.ID {
			out = append(out, *r)
		}
	}
	return out
}

// CurrentBalances re-reads the registry for the viewer's balance entries, so
// callers always observe debits from decisions made since their last read.
// Unknown ids yield an empty slice.
func (s *Store) CurrentBalances(viewer EmployeeID) []LeaveBalance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e := s.findEmployee(viewer)
	if e == nil {
		return nil
	}
	out := make([]LeaveBalance, len(e.Balances))
	copy(out, e.Balances)
	return out
}

// TeamLeaveIndex expands every approved request into one entry per calendar
// day, inclusive on both ends, flattened across the ledger in ledger order
// with days ascending within each request. Calendar-day lookups are a linear
// filter over this sequence; with a team-sized ledger that is plenty, and a
// by-date map stays an option if it ever is not.
func (s *Store) TeamLeaveIndex() []TeamMemberLeave {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var index []TeamMemberLeave
	for _, r := range s.ledger {
		if r.Status != StatusApproved {
			continue
		}
		for d := r.StartDate; !d.After(r.EndDate); d = d.AddDays(1) {
			index = append(index, TeamMemberLeave{Name: r.UserName, LeaveDate: d})
		}
	}
	return index
}

// leavesOn filters the team-leave index down to the names absent on one date.
func leavesOn(index []TeamMemberLeave, day Date) []string {
	var names []string
	for _, entry := range index {
		if entry.LeaveDate.Equal(day) {
			names = append(names, entry.Name)
		}
	}
	return names
}
