package transcript

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/mockmate/interview-engine/internal/interview"
)

// StoreError represents a transcript storage failure.
type StoreError struct {
	Operation string
	Path      string
	Err       error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("transcript store error during %s", e.Operation)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Summary is the stateless projection of a session that gets exported:
// its stats plus the full conversation history. Exporting never mutates
// the session; an abandoned interview exports exactly like a finished one.
type Summary struct {
	SessionID   string
	Role        interview.RoleID
	RoleDisplay string
	Phase       interview.Phase
	ExportedAt  time.Time
	Stats       interview.Stats
	Plan        []interview.QuestionSpec
	History     []interview.ConversationEvent
}

// StoreConfig holds configuration for the transcript store.
type StoreConfig struct {
	BasePath   string
	DefaultTTL time.Duration
	Logger     *slog.Logger
	FileSystem FileSystem
}

// Store persists session summaries as frontmattered markdown files named
// by session id under a single base path.
type Store struct {
	basePath   string
	defaultTTL time.Duration
	logger     *slog.Logger
	fs         FileSystem
}

// NewStore creates a transcript store, creating the base directory.
func NewStore(config StoreConfig) (*Store, error) {
	ctx := context.Background()

	if config.BasePath == "" {
		config.BasePath = "./transcripts"
	}
	if config.DefaultTTL == 0 {
		config.DefaultTTL = 24 * time.Hour
	}
	if config.FileSystem == nil {
		config.FileSystem = NewOSFileSystem()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := config.FileSystem.MkdirAll(config.BasePath, 0755); err != nil {
		config.Logger.ErrorContext(ctx, "failed to create transcript directory",
			"error", err,
			"path", config.BasePath,
		)
		return nil, &StoreError{Operation: "init - create directory", Path: config.BasePath, Err: err}
	}

	config.Logger.InfoContext(ctx, "transcript store initialized",
		"base_path", config.BasePath,
		"default_ttl", config.DefaultTTL,
	)

	return &Store{
		basePath:   config.BasePath,
		defaultTTL: config.DefaultTTL,
		logger:     config.Logger,
		fs:         config.FileSystem,
	}, nil
}

// ParseURI extracts the session id from a transcript://<id> URI.
func ParseURI(uri string) (string, error) {
	const scheme = "transcript://"
	if !strings.HasPrefix(uri, scheme) || len(uri) == len(scheme) {
		return "", &StoreError{
			Operation: "parse URI",
			Err:       fmt.Errorf("expected transcript://<session-id>, got %q", uri),
		}
	}
	return uri[len(scheme):], nil
}

// URI returns the transcript URI for a session id.
func URI(sessionID string) string {
	return "transcript://" + sessionID
}

func (st *Store) path(sessionID string) string {
	return filepath.Join(st.basePath, sessionID+".md")
}

// Save writes a summary and returns its transcript:// URI. Saving the
// same session again overwrites the previous export.
func (st *Store) Save(summary Summary) (string, error) {
	ctx := context.Background()
	path := st.path(summary.SessionID)

	if err := st.fs.WriteFile(path, []byte(renderSummary(summary)), 0644); err != nil {
		st.logger.ErrorContext(ctx, "failed to save transcript",
			"error", err,
			"session_id", summary.SessionID,
			"path", path,
			"operation", "save",
		)
		return "", &StoreError{Operation: "save transcript", Path: path, Err: err}
	}

	st.logger.InfoContext(ctx, "transcript saved",
		"session_id", summary.SessionID,
		"path", path,
		"asked", summary.Stats.Asked,
		"total", summary.Stats.Total,
	)

	return URI(summary.SessionID), nil
}

// Read returns the rendered transcript for a transcript:// URI.
func (st *Store) Read(uri string) ([]byte, error) {
	ctx := context.Background()
	sessionID, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	path := st.path(sessionID)
	content, err := st.fs.ReadFile(path)
	if err != nil {
		st.logger.ErrorContext(ctx, "failed to read transcript",
			"error", err,
			"uri", uri,
			"path", path,
			"operation", "read",
		)
		return nil, &StoreError{Operation: "read transcript", Path: path, Err: err}
	}
	return content, nil
}

// Exists reports whether a transcript is stored for the given URI.
func (st *Store) Exists(uri string) bool {
	sessionID, err := ParseURI(uri)
	if err != nil {
		return false
	}
	_, err = st.fs.Stat(st.path(sessionID))
	return err == nil
}

// List returns the session ids of all stored transcripts.
func (st *Store) List() ([]string, error) {
	entries, err := st.fs.ReadDir(st.basePath)
	if err != nil {
		return nil, &StoreError{Operation: "list transcripts", Path: st.basePath, Err: err}
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".md") {
			ids = append(ids, strings.TrimSuffix(name, ".md"))
		}
	}
	return ids, nil
}

// Cleanup removes transcripts older than ttl (the default TTL when zero)
// and returns how many were removed.
func (st *Store) Cleanup(ttl time.Duration) (int64, error) {
	ctx := context.Background()
	if ttl == 0 {
		ttl = st.defaultTTL
	}

	entries, err := st.fs.ReadDir(st.basePath)
	if err != nil {
		return 0, &StoreError{Operation: "cleanup", Path: st.basePath, Err: err}
	}

	cutoff := time.Now().Add(-ttl)
	var removed int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.ModTime().Before(cutoff) {
			if err := st.fs.Remove(filepath.Join(st.basePath, entry.Name())); err == nil {
				removed++
			}
		}
	}

	st.logger.InfoContext(ctx, "transcript cleanup completed",
		"removed", removed,
		"ttl", ttl,
	)
	return removed, nil
}

// IsAccessible reports whether the base directory exists. Used by the
// readiness probe.
func (st *Store) IsAccessible() bool {
	_, err := st.fs.Stat(st.basePath)
	return err == nil
}

// renderSummary produces the frontmattered markdown transcript.
func renderSummary(summary Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "---\n")
	fmt.Fprintf(&b, "session_id: %s\n", summary.SessionID)
	if summary.Role != interview.RoleNone {
		fmt.Fprintf(&b, "role: %s\n", summary.Role)
	}
	fmt.Fprintf(&b, "phase: %s\n", summary.Phase)
	fmt.Fprintf(&b, "exported_at: %s\n", summary.ExportedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "---\n\n")

	b.WriteString("# Interview Transcript\n\n")
	if summary.RoleDisplay != "" {
		fmt.Fprintf(&b, "Target role: %s\n\n", summary.RoleDisplay)
	}

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- Total questions: %d\n", summary.Stats.Total)
	fmt.Fprintf(&b, "- Asked: %d\n", summary.Stats.Asked)
	fmt.Fprintf(&b, "- Answered: %d\n", summary.Stats.Answered)
	fmt.Fprintf(&b, "- Skipped: %d\n", summary.Stats.Skipped)
	fmt.Fprintf(&b, "- Response rate: %.0f%%\n", summary.Stats.ResponseRate*100)
	fmt.Fprintf(&b, "- Skip rate: %.0f%%\n\n", summary.Stats.SkipRate*100)

	b.WriteString("## Conversation\n\n")
	resolved := make(map[string]interview.ConversationEvent, len(summary.History))
	for _, event := range summary.History {
		resolved[event.QuestionID] = event
	}

	for _, question := range summary.Plan {
		fmt.Fprintf(&b, "### Q%d. %s\n\n", question.Rank, question.Prompt)
		event, ok := resolved[question.ID]
		switch {
		case !ok:
			b.WriteString("_Not reached._\n\n")
		case event.Status == interview.StatusSkipped:
			b.WriteString("_Skipped._\n\n")
		case event.Answer == "":
			b.WriteString("_Answered (empty)._\n\n")
		default:
			fmt.Fprintf(&b, "%s\n\n", event.Answer)
		}
	}

	return b.String()
}
