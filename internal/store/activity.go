package store

import "github.com/example/morascent/internal/models"

// LogActivity appends a back-office action to the audit trail.
func (s *Store) LogActivity(adminID, adminName, action, ip string) {
	entry := models.ActivityLog{
		BaseModel: models.NewBase(),
		AdminID:   adminID,
		AdminName: adminName,
		Action:    action,
		IP:        ip,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append([]models.ActivityLog{entry}, s.activity...)
}

// ListActivity returns the audit trail, newest-first, capped at limit when
// limit is positive.
func (s *Store) ListActivity(limit int) []models.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]models.ActivityLog(nil), s.activity...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
