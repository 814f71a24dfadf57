// Package store owns the in-memory application state. All collections and
// settings live in one container; every mutation replaces the affected
// collection with a new value and schedules a coalesced write to the
// persistence layer.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcikids/portal/common"
	"github.com/mcikids/portal/models"
)

// Persister is the persistence adapter the store writes through.
type Persister interface {
	LoadSnapshot() (*models.Snapshot, error)
	SaveSnapshot(*models.Snapshot) error
}

// Store is the single owned state container. Handlers receive it by
// reference; there are no package-level globals.
type Store struct {
	mu       sync.Mutex
	data     *models.Snapshot
	persist  Persister
	debounce time.Duration
	timer    *time.Timer
	dirty    bool
	loaded   bool
	log      zerolog.Logger
}

// Open loads the persisted snapshot into a new store. An absent record
// starts empty; a malformed record is logged and also starts empty instead
// of failing startup. Saves are not scheduled until the load finished, so a
// default snapshot can never clobber previously persisted data.
func Open(p Persister, debounce time.Duration, log zerolog.Logger) (*Store, error) {
	s := &Store{
		persist:  p,
		debounce: debounce,
		log:      log.With().Str("component", "store").Logger(),
	}
	snap, err := p.LoadSnapshot()
	switch {
	case err == nil:
		s.data = snap
	case errors.Is(err, common.ErrNotFound):
		s.data = models.NewSnapshot()
	case errors.Is(err, common.ErrMalformed):
		s.log.Warn().Err(err).Msg("stored snapshot is malformed, starting empty")
		s.data = models.NewSnapshot()
	default:
		return nil, err
	}
	s.loaded = true
	return s, nil
}

// scheduleSave arms the debounced write. Must be called with mu held. A
// pending write is cancelled and replaced, so only the latest state version
// is ever persisted.
func (s *Store) scheduleSave() {
	if !s.loaded {
		return
	}
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.saveNow)
}

// saveNow executes the pending write, if it was not superseded.
func (s *Store) saveNow() {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	snap := s.data.Clone()
	s.dirty = false
	s.mu.Unlock()

	if err := s.persist.SaveSnapshot(snap); err != nil {
		s.log.Error().Err(err).Msg("snapshot save failed")
	}
}

// Flush executes any pending save immediately. Called on shutdown.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.saveNow()
}

// Snapshot returns a deep copy of the full current state.
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// ReplaceAll swaps in an imported snapshot, all-or-nothing. The caller has
// already confirmed the destructive replacement with the user.
func (s *Store) ReplaceAll(snap *models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snap.Clone()
	s.scheduleSave()
}

// ---- students ----

// Students returns the roster.
func (s *Store) Students() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Student{}, s.data.Students...)
}

// AddStudent appends a child to the roster. Students are never deleted.
func (s *Store) AddStudent(name string, kind models.StudentKind) (models.Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Student{}, common.ErrValidation
	}
	if kind == "" {
		kind = models.StudentEnrolled
	}
	if kind != models.StudentEnrolled && kind != models.StudentGuest {
		return models.Student{}, common.ErrValidation
	}
	st := models.Student{ID: models.NewID("stu"), Name: name, Kind: kind}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Students = append(append([]models.Student{}, s.data.Students...), st)
	s.scheduleSave()
	return st, nil
}

// ---- attendance ----

// Presences returns attendance records, optionally filtered to one day.
func (s *Store) Presences(dateISO string) []models.Presence {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dateISO == "" {
		return append([]models.Presence{}, s.data.Presences...)
	}
	out := []models.Presence{}
	for _, p := range s.data.Presences {
		if p.DateISO == dateISO {
			out = append(out, p)
		}
	}
	return out
}

// MarkPresence records attendance for a student on a day. The pair
// (studentID, dateISO) is upserted: an existing record gets its present flag
// overwritten, otherwise a new record is appended. There is no deletion.
func (s *Store) MarkPresence(user *models.User, studentID, dateISO string, present bool) (models.Presence, error) {
	if user == nil {
		return models.Presence{}, common.ErrNotAuthenticated
	}
	studentID = strings.TrimSpace(studentID)
	dateISO = strings.TrimSpace(dateISO)
	if studentID == "" || dateISO == "" {
		return models.Presence{}, common.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	known := false
	for _, st := range s.data.Students {
		if st.ID == studentID {
			known = true
			break
		}
	}
	if !known {
		return models.Presence{}, common.ErrNotFound
	}

	next := append([]models.Presence{}, s.data.Presences...)
	for i, p := range next {
		if p.StudentID == studentID && p.DateISO == dateISO {
			next[i].Present = present
			s.data.Presences = next
			s.scheduleSave()
			return next[i], nil
		}
	}
	rec := models.Presence{
		ID:             models.NewID("pre"),
		StudentID:      studentID,
		DateISO:        dateISO,
		Present:        present,
		RecordedByName: user.Name,
		RecordedByRole: user.Role,
		CreatedAt:      models.NowISO(),
	}
	s.data.Presences = append(next, rec)
	s.scheduleSave()
	return rec, nil
}

// ---- ledger ----

// Offerings returns the full ledger.
func (s *Store) Offerings() []models.Offering {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Offering{}, s.data.Offerings...)
}

// AddOffering appends a ledger entry. The amount must be positive; the
// ledger is append-only.
func (s *Store) AddOffering(user *models.User, category models.OfferingCategory, direction models.OfferingDirection, amount float64, note string) (models.Offering, error) {
	if user == nil {
		return models.Offering{}, common.ErrNotAuthenticated
	}
	if amount <= 0 {
		return models.Offering{}, common.ErrValidation
	}
	if category != models.CategoryOffering && category != models.CategoryExpense {
		return models.Offering{}, common.ErrValidation
	}
	if direction != models.DirectionIn && direction != models.DirectionOut {
		return models.Offering{}, common.ErrValidation
	}
	entry := models.Offering{
		ID:             models.NewID("off"),
		Category:       category,
		Direction:      direction,
		Amount:         amount,
		Note:           strings.TrimSpace(note),
		CreatedAt:      models.NowISO(),
		RecordedByName: user.Name,
		RecordedByRole: user.Role,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Offerings = append(append([]models.Offering{}, s.data.Offerings...), entry)
	s.scheduleSave()
	return entry, nil
}

// FinanceTotals recomputes the headline finance aggregate.
func (s *Store) FinanceTotals() Totals {
	s.mu.Lock()
	offerings := append([]models.Offering{}, s.data.Offerings...)
	s.mu.Unlock()
	return FinanceTotals(offerings)
}

// ---- registrations ----

// Registrations returns the submitted family registrations.
func (s *Store) Registrations() []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Registration{}, s.data.Registrations...)
}

// AddRegistration appends a family registration form submission.
func (s *Store) AddRegistration(reg models.Registration) (models.Registration, error) {
	reg.ChildName = strings.TrimSpace(reg.ChildName)
	reg.GuardianName = strings.TrimSpace(reg.GuardianName)
	reg.Phone = strings.TrimSpace(reg.Phone)
	if reg.ChildName == "" || reg.GuardianName == "" || reg.Phone == "" {
		return models.Registration{}, common.ErrValidation
	}
	reg.ID = models.NewID("reg")
	reg.CreatedAt = models.NowISO()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Registrations = append(append([]models.Registration{}, s.data.Registrations...), reg)
	s.scheduleSave()
	return reg, nil
}

// ---- files ----

// Files returns the library entries.
func (s *Store) Files() []models.FileEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FileEntry{}, s.data.Files...)
}

// AddFile appends a document to the library.
func (s *Store) AddFile(title string, kind models.FileKind, url string) (models.FileEntry, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" || url == "" {
		return models.FileEntry{}, common.ErrValidation
	}
	if kind != models.FilePDF && kind != models.FileTXT {
		return models.FileEntry{}, common.ErrValidation
	}
	entry := models.FileEntry{
		ID:        models.NewID("fil"),
		Title:     title,
		Kind:      kind,
		URL:       url,
		CreatedAt: models.NowISO(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Files = append(append([]models.FileEntry{}, s.data.Files...), entry)
	s.scheduleSave()
	return entry, nil
}

// ---- settings ----

// Settings returns the scalar settings slots.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone().Settings
}

// UpdateSettings overwrites the settings slots. The closure fields are
// stored but not enforced anywhere.
func (s *Store) UpdateSettings(st models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Settings = st
	s.scheduleSave()
}
