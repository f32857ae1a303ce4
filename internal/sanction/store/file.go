package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"warden/internal/sanction/models"
	dErrors "warden/pkg/domain-errors"
)

// FileLedgerStore persists the ledger as one JSON document with an
// atomic-rename save protocol. Companion paths <path>.bak and <path>.tmp are
// used transiently during Save and must not exist after a successful save.
type FileLedgerStore struct {
	path   string
	logger *slog.Logger
}

func NewFileLedgerStore(path string, logger *slog.Logger) *FileLedgerStore {
	return &FileLedgerStore{path: path, logger: logger}
}

// Init prepares the backing medium before any Load or Save. A missing file
// recovers from an interrupted save's backup when one exists, and is
// otherwise created pre-populated with the empty ledger shape. An existing
// file that fails structural validation aborts startup: a medium that is
// neither absent nor valid cannot be trusted.
func (s *FileLedgerStore) Init(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		restored, rerr := s.restoreBackup(ctx)
		if rerr != nil {
			return rerr
		}
		if !restored {
			empty, _ := json.MarshalIndent(models.NewLedger(), "", "    ")
			if err := os.WriteFile(s.path, empty, 0o644); err != nil {
				return fmt.Errorf("seed empty ledger: %w", err)
			}
			s.logger.InfoContext(ctx, "created empty sanction ledger", "path", s.path)
			return nil
		}
		// The restored content goes through the same structural
		// validation as any pre-existing file.
		data, err = os.ReadFile(s.path)
	}
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return fmt.Errorf("ledger at %s is not valid JSON: %w", s.path, err)
	}
	if _, ok := shape["last_id"]; !ok {
		return fmt.Errorf("ledger at %s is missing last_id", s.path)
	}
	if _, ok := shape["fines"]; !ok {
		return fmt.Errorf("ledger at %s is missing fines", s.path)
	}
	return nil
}

// restoreBackup brings <path>.bak back to the canonical path. A crash inside
// Save after the stable copy was moved aside but before the new content was
// renamed in leaves the canonical file missing while the backup still holds
// the full pre-crash ledger; treating that as a missing file would silently
// destroy it.
func (s *FileLedgerStore) restoreBackup(ctx context.Context) (bool, error) {
	backup := s.path + ".bak"
	if _, err := os.Stat(backup); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat ledger backup: %w", err)
	}
	if err := os.Rename(backup, s.path); err != nil {
		return false, fmt.Errorf("restore ledger backup: %w", err)
	}
	s.logger.WarnContext(ctx, "restored sanction ledger from backup after interrupted save", "path", s.path)
	return true, nil
}

// Load reads the ledger from disk. A missing canonical file with a backup
// present is an interrupted save and recovers from the backup. On any other
// failure it logs the condition and returns a fresh empty ledger rather than
// raising to the caller.
func (s *FileLedgerStore) Load(ctx context.Context) *models.Ledger {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if restored, rerr := s.restoreBackup(ctx); rerr == nil && restored {
			data, err = os.ReadFile(s.path)
		}
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read sanction ledger", "path", s.path, "error", err)
		return models.NewLedger()
	}

	var ledger models.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		s.logger.ErrorContext(ctx, "failed to decode sanction ledger", "path", s.path, "error", err)
		return models.NewLedger()
	}
	if ledger.Records == nil {
		ledger.Records = make(map[string]*models.SanctionRecord)
	}
	return &ledger
}

// Save writes the ledger with the backup/temp/rename protocol:
//
//  1. move any existing stable copy aside to <path>.bak
//  2. write the new content to <path>.tmp
//  3. atomically rename <path>.tmp over <path>
//  4. remove <path>.bak
//
// If step 3 fails, the backup is restored and the failure re-signaled. If
// even the restore fails, the error carries CodePersistence: the ledger's
// trustworthiness is compromised and the condition must be loud.
func (s *FileLedgerStore) Save(ctx context.Context, ledger *models.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "    ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	backup := s.path + ".bak"
	haveBackup := false
	if _, err := os.Stat(s.path); err == nil {
		if err := os.Rename(s.path, backup); err != nil {
			return fmt.Errorf("move ledger aside: %w", err)
		}
		haveBackup = true
	}

	restore := func(cause error) error {
		if !haveBackup {
			return fmt.Errorf("save ledger: %w", cause)
		}
		if rerr := os.Rename(backup, s.path); rerr != nil {
			s.logger.ErrorContext(ctx, "ledger save failed and backup could not be restored",
				"path", s.path, "save_error", cause, "restore_error", rerr)
			return dErrors.Wrap(cause, dErrors.CodePersistence, "sanction ledger unrecoverable")
		}
		return fmt.Errorf("save ledger (backup restored): %w", cause)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return restore(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return restore(err)
	}

	if haveBackup {
		if err := os.Remove(backup); err != nil {
			s.logger.WarnContext(ctx, "failed to remove ledger backup", "path", backup, "error", err)
		}
	}
	return nil
}
