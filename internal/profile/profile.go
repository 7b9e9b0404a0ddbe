// Package profile persists per-student state between sessions: a JSON
// profile with coarse mastery counters plus an append-only JSONL log of
// tutoring turns.
package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxHistory = 50

// Turn is one student/tutor exchange kept in the profile history.
type Turn struct {
	Student string    `json:"student"`
	Tutor   string    `json:"tutor"`
	At      time.Time `json:"t"`
}

type Profile struct {
	UserID     string         `json:"user_id"`
	Mastery    map[string]int `json:"mastery"`
	StuckCount int            `json:"stuck_count"`
	History    []Turn         `json:"history"`
}

func NewProfile(userID string) *Profile {
	return &Profile{
		UserID:  userID,
		Mastery: make(map[string]int),
	}
}

// Update folds one exchange into the profile: bounded history, crude
// topic counters, and a consecutive-confusion streak.
func (p *Profile) Update(student, tutor string) {
	if p.Mastery == nil {
		p.Mastery = make(map[string]int)
	}

	p.History = append(p.History, Turn{Student: student, Tutor: tutor, At: time.Now()})
	if len(p.History) > maxHistory {
		p.History = p.History[len(p.History)-maxHistory:]
	}

	lower := strings.ToLower(student + " " + tutor)
	for topic, words := range topicWords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				p.Mastery[topic]++
				break
			}
		}
	}

	sl := strings.ToLower(student)
	if strings.Contains(sl, "i don't know") || strings.Contains(sl, "not sure") || strings.Contains(sl, "confused") {
		p.StuckCount++
	} else {
		p.StuckCount = 0
	}
}

var topicWords = map[string][]string{
	"algebra":    {"solve", "equation", "x ="},
	"kinematics": {"velocity", "acceleration", "displacement"},
	"dynamics":   {"force", "friction", "newton"},
	"projectile": {"projectile", "trajectory", "launch"},
}

// Store reads and writes profiles and the session log under a base
// directory, one JSON file per student.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(filepath.Join(s.baseDir, "profiles"), 0755)
}

func (s *Store) path(userID string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(userID)
	return filepath.Join(s.baseDir, "profiles", safe+".json")
}

// Load returns the stored profile, or a fresh one if none exists yet.
func (s *Store) Load(userID string) (*Profile, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return NewProfile(userID), nil
		}
		return nil, err
	}

	p := NewProfile(userID)
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) Save(p *Profile) error {
	if err := s.Init(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(p.UserID), data, 0644)
}

// Reset discards any stored state for the student.
func (s *Store) Reset(userID string) error {
	err := os.Remove(s.path(userID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

type logRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Mode      string    `json:"mode"`
	Student   string    `json:"student_message"`
	Tutor     string    `json:"tutor_message"`
}

// LogTurn appends one exchange to the session log (JSON lines).
func (s *Store) LogTurn(userID, mode, student, tutor string) error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}

	rec := logRecord{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		UserID:    userID,
		Mode:      mode,
		Student:   student,
		Tutor:     tutor,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.baseDir, "session_log.jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}
