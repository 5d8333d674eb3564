package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/seoforge/contentiq/internal/models"
)

// Archive persists scored reports so editors can review past verdicts.
type Archive interface {
	SaveReport(ctx context.Context, report *models.ScoreReport) error
	GetReport(ctx context.Context, id string) (*models.ScoreReport, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.ScoreReport, error)
	DeleteReport(ctx context.Context, id string) error
}

// FileArchive stores reports as JSON files under dated directories.
type FileArchive struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileArchive creates the archive directory if needed.
func NewFileArchive(basePath string) (*FileArchive, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &FileArchive{basePath: basePath}, nil
}

// SaveReport writes one report under YYYY/MM/DD.
func (a *FileArchive) SaveReport(ctx context.Context, report *models.ScoreReport) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	datePath := filepath.Join(a.basePath, report.CreatedAt.Format("2006/01/02"))
	if err := os.MkdirAll(datePath, 0755); err != nil {
		return fmt.Errorf("failed to create date directory: %w", err)
	}

	filename := fmt.Sprintf("%d_%s.json", report.CreatedAt.Unix(), report.ID)
	filePath := filepath.Join(datePath, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	report.FilePath = filePath
	return nil
}

// GetReport retrieves a report by its ID.
func (a *FileArchive) GetReport(ctx context.Context, id string) (*models.ScoreReport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	var found *models.ScoreReport
	err := filepath.WalkDir(a.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		if !strings.Contains(d.Name(), id) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}

		var report models.ScoreReport
		if err := json.Unmarshal(data, &report); err != nil {
			return fmt.Errorf("failed to unmarshal report: %w", err)
		}

		report.FilePath = path
		found = &report
		return filepath.SkipAll
	})
	if err != nil {
		return nil, fmt.Errorf("error walking the archive: %w", err)
	}
	if found == nil {
		return nil, fmt.Errorf("report with ID %s not found", id)
	}
	return found, nil
}

// ListReports retrieves a paginated report list, newest first.
func (a *FileArchive) ListReports(ctx context.Context, page, pageSize int) ([]*models.ScoreReport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	var files []string
	err := filepath.WalkDir(a.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking the archive: %w", err)
	}

	// Filenames start with the unix timestamp, so a reverse lexical
	// sort within each dated directory orders newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	start := (page - 1) * pageSize
	if start >= len(files) {
		return []*models.ScoreReport{}, nil
	}
	end := start + pageSize
	if end > len(files) {
		end = len(files)
	}

	reports := make([]*models.ScoreReport, 0, end-start)
	for _, file := range files[start:end] {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file %s: %w", file, err)
		}

		var report models.ScoreReport
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("error unmarshaling report: %w", err)
		}
		report.FilePath = file
		reports = append(reports, &report)
	}

	return reports, nil
}

// DeleteReport removes a report by its ID.
func (a *FileArchive) DeleteReport(ctx context.Context, id string) error {
	report, err := a.GetReport(ctx, id)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.Remove(report.FilePath); err != nil {
		return fmt.Errorf("failed to delete report file: %w", err)
	}
	return nil
}

// PurgeOlderThan drops report files older than the retention window.
func (a *FileArchive) PurgeOlderThan(ctx context.Context, retention time.Duration) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cutoff := time.Now().Add(-retention)
	purged := 0
	err := filepath.WalkDir(a.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				return err
			}
			purged++
		}
		return nil
	})
	if err != nil {
		return purged, fmt.Errorf("error purging archive: %w", err)
	}
	return purged, nil
}
