package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/teamfit/teamfit/internal/constants"
)

const (
	// BackupFileSuffix is the suffix for SQLite backup files
	BackupFileSuffix = ".db"

	timestampFormat     = "20060102-1504"
	timestampFormatLong = "20060102-150405"
)

// BackupInfo contains information about a backup
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for either storage flavor. A data path
// ending in .db is backed up as a single SQLite file; anything else is
// treated as a JSON collection directory and backed up as a directory of
// collection files.
type Manager struct {
	dataPath  string
	backupDir string
	sqlite    bool
}

// NewManager creates a new backup manager for the given data path
func NewManager(dataPath string) *Manager {
	return &Manager{
		dataPath:  dataPath,
		backupDir: filepath.Join(filepath.Dir(dataPath), constants.BackupDirName),
		sqlite:    strings.HasSuffix(dataPath, ".db"),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// CreateBackup creates a new backup of the stored data
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup creates a new backup. skipRotation prevents recursive
// rotation when a safety backup is taken during restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.dataPath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage does not exist: %s", m.dataPath)
	}

	backupPath, err := m.uniqueBackupPath()
	if err != nil {
		return "", err
	}

	if m.sqlite {
		err = m.backupDatabase(backupPath)
	} else {
		err = m.backupCollections(backupPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// uniqueBackupPath builds a timestamped backup name, extending the
// timestamp and then appending a counter on collision.
func (m *Manager) uniqueBackupPath() (string, error) {
	suffix := ""
	if m.sqlite {
		suffix = BackupFileSuffix
	}

	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+time.Now().Format(timestampFormat)+suffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	timestamp := time.Now().Format(timestampFormatLong)
	path = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+suffix)
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, suffix))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup name")
		}
	}
}

// backupDatabase uses VACUUM INTO to produce a clean copy of the database,
// falling back to a plain file copy when the SQLite build lacks it.
func (m *Manager) backupDatabase(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.dataPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		srcDB.Close()
		return copyFile(m.dataPath, destPath)
	}
	return nil
}

// backupCollections copies every collection file into a backup directory.
func (m *Manager) backupCollections(destDir string) error {
	entries, err := os.ReadDir(m.dataPath)
	if err != nil {
		return fmt.Errorf("failed to read collection directory: %w", err)
	}
	if err := os.MkdirAll(destDir, 0700); err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		src := filepath.Join(m.dataPath, entry.Name())
		if err := copyFile(src, filepath.Join(destDir, entry.Name())); err != nil {
			return fmt.Errorf("failed to copy %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// ListBackups returns all available backups, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		// SQLite backups are files, collection backups are directories.
		if entry.IsDir() == m.sqlite {
			continue
		}
		if !strings.HasPrefix(name, constants.BackupFilePrefix) {
			continue
		}
		if m.sqlite && !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		timestamp, ok := parseBackupTimestamp(name)
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// parseBackupTimestamp extracts the creation time from a backup name,
// tolerating the collision counter suffix.
func parseBackupTimestamp(name string) (time.Time, bool) {
	s := strings.TrimPrefix(name, constants.BackupFilePrefix)
	s = strings.TrimSuffix(s, BackupFileSuffix)

	// Strip a trailing "-N" counter; timestamp segments are 4, 6, or 8
	// digits.
	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		last := parts[len(parts)-1]
		if len(last) != 4 && len(last) != 6 && isDigits(last) {
			s = strings.Join(parts[:len(parts)-1], "-")
		}
	}

	if t, err := time.Parse(timestampFormat, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(timestampFormatLong, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.RemoveAll(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup restores the stored data from a backup, taking a safety
// backup of the current data first
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup does not exist: %s", backupPath)
	}

	if m.sqlite {
		if err := m.verifyBackup(backupPath); err != nil {
			return fmt.Errorf("backup file is corrupted or invalid: %w", err)
		}
	}

	if _, err := os.Stat(m.dataPath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to backup current data before restore: %w", err)
		}
		fmt.Printf("Created backup of current data: %s\n", filepath.Base(currentBackup))
	}

	if m.sqlite {
		return m.restoreDatabase(backupPath)
	}
	return m.restoreCollections(backupPath)
}

// restoreDatabase swaps the backup in via a temp file and atomic rename.
func (m *Manager) restoreDatabase(backupPath string) error {
	tempPath := m.dataPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dataPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

// restoreCollections copies the backed-up collection files over the live
// directory. Files are replaced one by one; the safety backup taken above
// covers a partial failure.
func (m *Manager) restoreCollections(backupPath string) error {
	entries, err := os.ReadDir(backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup directory: %w", err)
	}
	if err := os.MkdirAll(m.dataPath, 0700); err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		src := filepath.Join(backupPath, entry.Name())
		if err := copyFile(src, filepath.Join(m.dataPath, entry.Name())); err != nil {
			return fmt.Errorf("failed to restore %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// verifyBackup checks if a backup file is a valid SQLite database
func (m *Manager) verifyBackup(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
