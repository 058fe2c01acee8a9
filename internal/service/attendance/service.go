package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/storage"
)

// counterCollection names the counter that mints attendance record IDs.
const counterCollection = "Attendance"

// Notifier receives the import summary after a run. The webhook client
// implements it.
type Notifier interface {
	Notify(ctx context.Context, payload any) error
}

type ServiceImpl struct {
	records   attendance.Repository
	counters  attendance.CounterRepository
	files     storage.FileStorage
	notifier  Notifier
	chunkSize int
	workers   int

	httpClient *http.Client
}

// NewAttendanceService wires the ingest pipeline. files and notifier may
// be nil; archival and webhook notification are then skipped.
func NewAttendanceService(
	records attendance.Repository,
	counters attendance.CounterRepository,
	files storage.FileStorage,
	notifier Notifier,
	chunkSize int,
	workers int,
) attendance.Service {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if workers <= 0 {
		workers = 4
	}
	return &ServiceImpl{
		records:    records,
		counters:   counters,
		files:      files,
		notifier:   notifier,
		chunkSize:  chunkSize,
		workers:    workers,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

// runTally accumulates per-run counts across concurrent chunk workers.
type runTally struct {
	rows         atomic.Int64
	inserted     atomic.Int64
	updated      atomic.Int64
	skipped      atomic.Int64
	degraded     atomic.Int64
	failedChunks atomic.Int64
}

func (t *runTally) summary(runID string) attendance.ImportSummary {
	return attendance.ImportSummary{
		RunID:        runID,
		TotalRows:    t.rows.Load(),
		Inserted:     t.inserted.Load(),
		Updated:      t.updated.Load(),
		Skipped:      t.skipped.Load(),
		Degraded:     t.degraded.Load(),
		FailedChunks: t.failedChunks.Load(),
	}
}

// ImportFile implements attendance.Service.
func (s *ServiceImpl) ImportFile(ctx context.Context, req attendance.ImportRequest) (attendance.ImportSummary, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportSummary{}, err
	}

	runID := uuid.NewString()
	slog.Info("starting attendance import", "run_id", runID, "file_path", req.FilePath)

	path, cleanup, err := s.resolveFile(ctx, req.FilePath)
	if err != nil {
		return attendance.ImportSummary{}, err
	}
	defer cleanup()

	f, err := os.Open(path)
	if err != nil {
		return attendance.ImportSummary{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader, err := newChunkReader(f, s.chunkSize)
	if err != nil {
		return attendance.ImportSummary{}, err
	}

	var tally runTally
	var g errgroup.Group
	g.SetLimit(s.workers)

	chunkIndex := 0
	for {
		rows, readErr := reader.Next()
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			// A structurally broken file aborts the run; chunks already
			// dispatched are left to finish.
			_ = g.Wait()
			return attendance.ImportSummary{}, readErr
		}

		if len(rows) > 0 {
			chunk := rows
			index := chunkIndex
			chunkIndex++
			tally.rows.Add(int64(len(chunk)))

			// Chunks run concurrently; a failed chunk is logged and
			// dropped, the rest of the run continues.
			g.Go(func() error {
				if err := s.processChunk(ctx, chunk, &tally); err != nil {
					slog.Error("dropping failed chunk", "run_id", runID, "chunk", index, "error", err)
					tally.failedChunks.Add(1)
				}
				return nil
			})
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	_ = g.Wait()

	summary := tally.summary(runID)
	slog.Info("attendance import finished",
		"run_id", runID,
		"rows", summary.TotalRows,
		"inserted", summary.Inserted,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"degraded", summary.Degraded,
		"failed_chunks", summary.FailedChunks,
	)

	s.archiveSource(ctx, runID, path)
	s.notify(ctx, summary)

	return summary, nil
}

// processChunk normalizes, reconciles and persists one chunk. Rows are
// reconciled one by one against the store; records with no existing match
// are committed together as a single batch at the end.
func (s *ServiceImpl) processChunk(ctx context.Context, rows []rawRow, tally *runTally) error {
	var pending []attendance.Record

	for _, row := range rows {
		res := buildRecord(row)
		if res.skip {
			tally.skipped.Add(1)
			slog.Debug("skipping row", "line", row.line, "reason", res.reason)
			continue
		}
		if res.degraded {
			tally.degraded.Add(1)
			slog.Warn("importing degraded row with full deductions", "line", row.line, "reason", res.reason)
		}

		rec := res.record
		existing, err := s.records.ListByEmployee(ctx, rec.EmployeeID)
		if err != nil {
			return fmt.Errorf("list records for employee %d: %w", rec.EmployeeID, err)
		}

		if match := findSameDay(existing, rec.DateTime); match != nil {
			rec.ID = match.ID
			if err := s.records.Update(ctx, rec); err != nil {
				return fmt.Errorf("update record %d: %w", match.ID, err)
			}
			tally.updated.Add(1)
			continue
		}

		pending = append(pending, rec)
	}

	if len(pending) == 0 {
		return nil
	}

	// IDs come from the shared counter before the batch commits; a failed
	// commit does not hand them back.
	for i := range pending {
		id, err := s.counters.Next(ctx, counterCollection)
		if err != nil {
			return fmt.Errorf("allocate record id: %w", err)
		}
		pending[i].ID = id
	}

	if err := s.records.SetBatch(ctx, pending); err != nil {
		return fmt.Errorf("commit batch of %d records: %w", len(pending), err)
	}
	tally.inserted.Add(int64(len(pending)))

	return nil
}

// findSameDay locates an existing record for the candidate's calendar
// day, comparing date parts only.
func findSameDay(records []attendance.Record, day time.Time) *attendance.Record {
	for i := range records {
		if records[i].SameDay(day) {
			return &records[i]
		}
	}
	return nil
}

// resolveFile turns the request locator into a readable local path. URLs
// are downloaded to a temp file; the returned cleanup removes it. Local
// paths are existence-checked and left alone.
func (s *ServiceImpl) resolveFile(ctx context.Context, pathOrURL string) (string, func(), error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return s.downloadFile(ctx, pathOrURL)
	}

	if _, err := os.Stat(pathOrURL); err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s", attendance.ErrFileNotFound, pathOrURL)
		}
		return "", nil, fmt.Errorf("stat %s: %w", pathOrURL, err)
	}
	return pathOrURL, func() {}, nil
}

func (s *ServiceImpl) downloadFile(ctx context.Context, url string) (string, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", attendance.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("%w: status %d", attendance.ErrDownloadFailed, resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "attendance-*.csv")
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("close temp file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(tmp.Name()); err != nil {
			slog.Warn("failed to remove temp file", "path", tmp.Name(), "error", err)
		}
	}
	return tmp.Name(), cleanup, nil
}

// archiveSource keeps a copy of the processed CSV as the run's audit
// artifact. Failures are logged, never fatal.
func (s *ServiceImpl) archiveSource(ctx context.Context, runID, path string) {
	if s.files == nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		slog.Warn("cannot archive import source", "run_id", runID, "error", err)
		return
	}
	defer f.Close()

	key := fmt.Sprintf("imports/%s.csv", runID)
	if _, err := s.files.Upload(ctx, f, key, "text/csv"); err != nil {
		slog.Warn("cannot archive import source", "run_id", runID, "error", err)
		return
	}
	slog.Info("archived import source", "run_id", runID, "key", key)
}

func (s *ServiceImpl) notify(ctx context.Context, summary attendance.ImportSummary) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, summary); err != nil {
		slog.Error("import webhook failed", "run_id", summary.RunID, "error", err)
	}
}

// ListRecords implements attendance.Service.
func (s *ServiceImpl) ListRecords(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	return responses, nil
}

// GetRecord implements attendance.Service.
func (s *ServiceImpl) GetRecord(ctx context.Context, id int64) (attendance.RecordResponse, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.NewRecordResponse(rec), nil
}
