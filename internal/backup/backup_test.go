package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/teamfit/teamfit/internal/constants"
	"github.com/teamfit/teamfit/internal/storage"
)

func newJSONData(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	s := storage.New(storage.NewJSONBackend(dir))
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	s.Close()
	return dir
}

func newSQLiteData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teamfit.db")
	s := storage.New(storage.NewSQLiteBackend(path))
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	s.Close()
	return path
}

func TestCreateBackupMissingData(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := m.CreateBackup(); err == nil {
		t.Fatal("expected backup of missing storage to fail")
	}
}

func TestCreateAndListJSONBackups(t *testing.T) {
	m := NewManager(newJSONData(t))

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("backup not on disk: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected collection backup to be a directory")
	}
	if _, err := os.Stat(filepath.Join(path, "members.json")); err != nil {
		t.Errorf("expected members.json in backup: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path %s, want %s", backups[0].Path, path)
	}
}

func TestCreateAndListSQLiteBackups(t *testing.T) {
	m := NewManager(newSQLiteData(t))

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if !strings.HasSuffix(path, BackupFileSuffix) {
		t.Errorf("expected .db backup, got %s", path)
	}
	if err := m.verifyBackup(path); err != nil {
		t.Errorf("backup is not a valid database: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
}

func TestRestoreJSONBackup(t *testing.T) {
	dir := newJSONData(t)
	m := NewManager(dir)

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Clobber the live data, then restore.
	if err := os.WriteFile(filepath.Join(dir, "members.json"), []byte("not json"), 0600); err != nil {
		t.Fatalf("failed to clobber members.json: %v", err)
	}
	if err := m.RestoreBackup(path); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "members.json"))
	if err != nil {
		t.Fatalf("failed to read restored file: %v", err)
	}
	if string(data) == "not json" {
		t.Error("restore did not replace live data")
	}

	// Restore takes a safety backup of the clobbered state.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected safety backup, got %d backups", len(backups))
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	m := NewManager(newJSONData(t))
	if err := m.RestoreBackup(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected restore of missing backup to fail")
	}
}

func TestRotateBackups(t *testing.T) {
	dir := newJSONData(t)
	m := NewManager(dir)
	if err := m.ensureBackupDir(); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}

	// Seed more on-disk backups than the retention limit.
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < constants.MaxBackups+3; i++ {
		name := constants.BackupFilePrefix + base.Add(time.Duration(i)*time.Minute).Format(timestampFormat)
		if err := os.MkdirAll(filepath.Join(m.GetBackupDir(), name), 0700); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	if err := m.rotateBackups(); err != nil {
		t.Fatalf("failed to rotate: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	// The newest survive.
	want := base.Add(time.Duration(constants.MaxBackups+2) * time.Minute)
	if !backups[0].Timestamp.Equal(want) {
		t.Errorf("newest backup %v, want %v", backups[0].Timestamp, want)
	}
}

func TestParseBackupTimestamp(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{constants.BackupFilePrefix + "20260827-1504", true},
		{constants.BackupFilePrefix + "20260827-150405", true},
		{constants.BackupFilePrefix + "20260827-150405-2", true},
		{constants.BackupFilePrefix + "garbage", false},
	}
	for _, tc := range cases {
		if _, ok := parseBackupTimestamp(tc.name); ok != tc.ok {
			t.Errorf("parseBackupTimestamp(%q) ok=%v, want %v", tc.name, ok, tc.ok)
		}
	}
}
