package quoteit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// Store persists the three aggregates (session, profile, vendor library) as
// JSON documents under fixed keys. The in-memory state stays the source of
// truth; the store is best-effort durability.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenStore opens (creating if needed) the key-value database at path.
func OpenStore(path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One connection: sqlite serializes writers anyway, and a pooled second
	// connection to :memory: would be a separate database.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=10000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// OpenMemoryStore opens a throwaway in-memory store.
func OpenMemoryStore(log zerolog.Logger) (*Store, error) {
	return OpenStore(":memory:", log)
}

func (st *Store) Close() error {
	return st.db.Close()
}

func (st *Store) get(key string) ([]byte, bool) {
	var value string
	err := st.db.QueryRow(`SELECT value FROM kv WHERE key=?`, key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			st.log.Warn().Err(err).Str("key", key).Msg("store read failed")
		}
		return nil, false
	}
	return []byte(value), true
}

func (st *Store) put(key string, value []byte) error {
	_, err := st.db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP`, key, string(value))
	if err != nil {
		return fmt.Errorf("store write %s: %w", key, err)
	}
	return nil
}

// LoadSession returns the stored session, or a fresh one when nothing usable
// is stored. Malformed JSON falls back with a diagnostic, never an error.
func (st *Store) LoadSession() Session {
	raw, ok := st.get(KeySession)
	if !ok {
		return NewSession()
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		st.log.Warn().Err(err).Str("key", KeySession).Msg("stored session malformed, using defaults")
		return NewSession()
	}
	return repairSession(s)
}

// LoadProfile returns the stored profile or the defaults.
func (st *Store) LoadProfile() Profile {
	raw, ok := st.get(KeyProfile)
	if !ok {
		return DefaultProfile()
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		st.log.Warn().Err(err).Str("key", KeyProfile).Msg("stored profile malformed, using defaults")
		return DefaultProfile()
	}
	if p.Language == "" {
		p.Language = "EN"
	}
	return p
}

// LoadLibrary returns the stored vendor library or an empty one.
func (st *Store) LoadLibrary() []VendorLibraryEntry {
	raw, ok := st.get(KeyLibrary)
	if !ok {
		return []VendorLibraryEntry{}
	}
	var lib []VendorLibraryEntry
	if err := json.Unmarshal(raw, &lib); err != nil {
		st.log.Warn().Err(err).Str("key", KeyLibrary).Msg("stored library malformed, using defaults")
		return []VendorLibraryEntry{}
	}
	if lib == nil {
		lib = []VendorLibraryEntry{}
	}
	return lib
}

// SaveSession replaces the stored session document.
func (st *Store) SaveSession(s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return st.put(KeySession, raw)
}

// SaveProfile replaces the stored profile document.
func (st *Store) SaveProfile(p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return st.put(KeyProfile, raw)
}

// SaveLibrary replaces the stored vendor library document.
func (st *Store) SaveLibrary(lib []VendorLibraryEntry) error {
	raw, err := json.Marshal(lib)
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	return st.put(KeyLibrary, raw)
}

// Saver coalesces rapid consecutive edits into one write: each queued
// snapshot restarts a quiet-period timer, and only the latest snapshot per
// aggregate is written when the timer fires. Close abandons whatever is
// pending; callers that need durability call Flush first.
type Saver struct {
	store *Store
	quiet time.Duration
	log   zerolog.Logger

	mu             sync.Mutex
	timer          *time.Timer
	session        *Session
	profile        *Profile
	library        []VendorLibraryEntry
	libraryPending bool
	closed         bool
}

// NewSaver wraps a store with a debounced write path. quiet <= 0 uses the
// default quiet period.
func NewSaver(store *Store, quiet time.Duration) *Saver {
	if quiet <= 0 {
		quiet = DefaultDebounceMillis * time.Millisecond
	}
	return &Saver{store: store, quiet: quiet, log: store.log}
}

// QueueSession schedules a session write after the quiet period.
func (sv *Saver) QueueSession(s Session) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.closed {
		return
	}
	snap := s
	sv.session = &snap
	sv.restartLocked()
}

// QueueProfile schedules a profile write after the quiet period.
func (sv *Saver) QueueProfile(p Profile) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.closed {
		return
	}
	snap := p
	sv.profile = &snap
	sv.restartLocked()
}

// QueueLibrary schedules a library write after the quiet period.
func (sv *Saver) QueueLibrary(lib []VendorLibraryEntry) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.closed {
		return
	}
	// An empty library is a real snapshot (the last entry was deleted), so
	// pending-ness is tracked separately from the slice.
	sv.library = append([]VendorLibraryEntry(nil), lib...)
	sv.libraryPending = true
	sv.restartLocked()
}

func (sv *Saver) restartLocked() {
	if sv.timer != nil {
		sv.timer.Stop()
	}
	sv.timer = time.AfterFunc(sv.quiet, sv.flushPending)
}

func (sv *Saver) flushPending() {
	sv.mu.Lock()
	session, profile, library := sv.session, sv.profile, sv.library
	libraryPending := sv.libraryPending
	sv.session, sv.profile, sv.library = nil, nil, nil
	sv.libraryPending = false
	closed := sv.closed
	sv.mu.Unlock()
	if closed {
		return
	}

	// Persistence is best-effort: the in-memory state stays authoritative
	// and the editing path is never blocked on a failed write.
	if session != nil {
		if err := sv.store.SaveSession(*session); err != nil {
			sv.log.Warn().Err(err).Msg("session persist failed")
		}
	}
	if profile != nil {
		if err := sv.store.SaveProfile(*profile); err != nil {
			sv.log.Warn().Err(err).Msg("profile persist failed")
		}
	}
	if libraryPending {
		if library == nil {
			library = []VendorLibraryEntry{}
		}
		if err := sv.store.SaveLibrary(library); err != nil {
			sv.log.Warn().Err(err).Msg("library persist failed")
		}
	}
}

// Flush writes anything pending immediately.
func (sv *Saver) Flush() {
	sv.mu.Lock()
	if sv.timer != nil {
		sv.timer.Stop()
		sv.timer = nil
	}
	sv.mu.Unlock()
	sv.flushPending()
}

// Close stops the timer and abandons any pending write.
func (sv *Saver) Close() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.closed = true
	if sv.timer != nil {
		sv.timer.Stop()
		sv.timer = nil
	}
	sv.session, sv.profile, sv.library = nil, nil, nil
	sv.libraryPending = false
}
