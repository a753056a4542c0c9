package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/katiemcmillin/homework-cloner/internal/config"
	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/ports"
)

// SQLiteHistoryRepository implements ports.HistoryRepository using GORM
type SQLiteHistoryRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.HistoryRepository = (*SQLiteHistoryRepository)(nil)

// gormLogger routes GORM logs to the application logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if logging.Debugging() {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteHistoryRepository opens (creating if needed) the history database
func NewSQLiteHistoryRepository(dbPath string) (*SQLiteHistoryRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&CloneRunModel{}, &CloneResultModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	logging.Logger.Debug("History database opened", "path", dbPath)
	return &SQLiteHistoryRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteHistoryRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AddRun implements HistoryWriter.AddRun
func (r *SQLiteHistoryRepository) AddRun(ctx context.Context, run domain.HistoryRun) error {
	runModel, results := domainToRunModel(run)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&runModel).Error; err != nil {
				return fmt.Errorf("failed to save run %s: %w", run.ID, err)
			}
			if len(results) == 0 {
				return nil
			}
			if err := tx.Create(&results).Error; err != nil {
				return fmt.Errorf("failed to save results for run %s: %w", run.ID, err)
			}
			return nil
		})
	}, 3)
}

// ListRuns implements HistoryReader.ListRuns
func (r *SQLiteHistoryRepository) ListRuns(ctx context.Context, assignment string, limit int) ([]domain.HistoryRun, error) {
	var runs []CloneRunModel
	var results []CloneResultModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			query := tx.Order("started_at DESC")
			if assignment != "" {
				query = query.Where("assignment = ?", assignment)
			}
			if limit > 0 {
				query = query.Limit(limit)
			}
			if err := query.Find(&runs).Error; err != nil {
				return err
			}
			if len(runs) == 0 {
				return nil
			}

			ids := make([]string, 0, len(runs))
			for _, run := range runs {
				ids = append(ids, run.ID)
			}
			return tx.Where("run_id IN ?", ids).Order("position ASC").Find(&results).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	byRun := make(map[string][]CloneResultModel, len(runs))
	for _, res := range results {
		byRun[res.RunID] = append(byRun[res.RunID], res)
	}

	history := make([]domain.HistoryRun, 0, len(runs))
	for _, run := range runs {
		history = append(history, runModelToDomain(run, byRun[run.ID]))
	}
	return history, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
