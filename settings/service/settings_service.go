package service

import (
	"context"
	"sync"
	"time"

	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/logger"
	"github.com/masjidsuite/donations-service/settings/dal"
)

// SettingsService resolves the mosque timezone for subscription date math.
// The location is cached after the first successful read; Invalidate drops it.
type SettingsService struct {
	loggerProvider logger.Provider
	settingsDAL    dal.Settings

	mu       sync.Mutex
	location *time.Location
}

func NewSettingsService(loggerProvider logger.Provider, conn *connection.Connection) *SettingsService {
	return &SettingsService{
		loggerProvider: loggerProvider,
		settingsDAL:    dal.NewSettingsFirestore(conn.Firestore),
	}
}

// Location returns the mosque timezone, falling back to UTC when settings are
// missing or carry an unknown IANA name.
func (s *SettingsService) Location(ctx context.Context) *time.Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.location != nil {
		return s.location
	}

	l := s.loggerProvider(ctx)

	settings, err := s.settingsDAL.GetSettings(ctx)
	if err != nil {
		l.Warningf("settings: failed to load mosque settings, falling back to UTC: %s", err)
		return time.UTC
	}

	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		l.Warningf("settings: unknown timezone %q, falling back to UTC", settings.Timezone)
		return time.UTC
	}

	s.location = loc

	return loc
}

// Invalidate drops the cached location so the next Location call re-reads settings.
func (s *SettingsService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.location = nil
}
