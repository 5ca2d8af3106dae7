package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/flight-globe/camera"
)

// SessionVersion is bumped whenever Session changes incompatibly
const SessionVersion = 1

// sessionName is the object name the session is stored under
const sessionName = "session"

// ErrVersionMismatch is returned when a saved session predates SessionVersion
var ErrVersionMismatch = errors.New("session version mismatch")

// Session is the view and toggle state restored on the next launch
type Session struct {
	Version     int         `msgpack:"version"`
	View        camera.View `msgpack:"view"`
	Mode        string      `msgpack:"mode"`
	Origin      string      `msgpack:"origin"`
	Dest        string      `msgpack:"dest"`
	DustVisible bool        `msgpack:"dust_visible"`
	Muted       bool        `msgpack:"muted"`
	SavedAt     time.Time   `msgpack:"saved_at"`
}

// SaveSession stamps and stores sess
func (s *Store) SaveSession(sess Session, now time.Time) error {
	sess.Version = SessionVersion
	sess.SavedAt = now
	return s.Save(sessionName, &sess)
}

// LoadSession restores the stored session
func (s *Store) LoadSession() (Session, error) {
	var sess Session
	if _, err := s.Load(sessionName, &sess); err != nil {
		return Session{}, err
	}
	if sess.Version != SessionVersion {
		return Session{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, sess.Version, SessionVersion)
	}
	return sess, nil
}
