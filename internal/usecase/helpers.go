package usecase

import (
	"fmt"
	"strings"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/internal/domain/service"
	"mados/pkg/errors"
	"mados/pkg/logger"
)

const (
	msgLoginRequired   = "Silakan masuk terlebih dahulu."
	msgLocationMissing = "Tidak bisa mendapatkan lokasi Anda. Pastikan izin lokasi diberikan dan aktif."
	msgEmailRegistered = "Email sudah terdaftar. Silakan masuk."
)

// currentSession binds userID and fails when it does not name a user.
func currentSession(state *appstate.State, userID string) (*appstate.Session, entity.User, error) {
	ss := state.Session(userID)
	me, ok := ss.CurrentUser()
	if !ok {
		return nil, entity.User{}, errors.Unauthorized(msgLoginRequired, nil)
	}
	return ss, me, nil
}

func allow(limiter RateLimiter, userID, action string) error {
	if limiter == nil {
		return nil
	}
	if ok, wait := limiter.Allow(userID, action); !ok {
		logger.Warn("rate limited: user %s action %s wait %v", userID, action, wait)
		return errors.TooManyRequests(fmt.Sprintf("Terlalu banyak permintaan. Coba lagi dalam %d detik.", int(wait.Seconds())+1))
	}
	return nil
}

// locate prefers coordinates sent with the request over the tracked position.
func locate(positions PositionSource, userID string, explicit *entity.Coordinates) (entity.Coordinates, bool) {
	if explicit != nil {
		return *explicit, true
	}
	if positions == nil || userID == "" {
		return entity.Coordinates{}, false
	}
	return positions.Position(userID)
}

// notificationEmitter records a notification and pushes it live.
type notificationEmitter struct {
	state    *appstate.State
	notifier service.Notifier
}

func (e notificationEmitter) emit(n entity.Notification) {
	if n.RecipientID == "" || n.RecipientID == n.FromUserID {
		return
	}
	stored := e.state.AddNotification(n)
	if e.notifier != nil {
		e.notifier.Notify(n.RecipientID, service.EventNotification, stored)
	}
}

func summarize(text string, max int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
