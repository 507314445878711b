package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// SQLiteRepository implements ports.SessionRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the application logger
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

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating when needed) the state database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&SessionModel{}, &AppFlagModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	if !db.Migrator().HasTable(&ToolCallModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS tool_calls (
				session_id TEXT NOT NULL,
				call_id TEXT NOT NULL,
				title TEXT NOT NULL DEFAULT '',
				pending_permission INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME,
				updated_at DATETIME,
				PRIMARY KEY (session_id, call_id),
				FOREIGN KEY (session_id) REFERENCES sessions(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create tool_calls table: %w", err)
		}
		if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_tool_calls_session ON tool_calls(session_id)").Error; err != nil {
			return nil, fmt.Errorf("failed to index tool_calls: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Opened state database", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForHome opens the state database inside an ASM_HOME directory
func NewSQLiteRepositoryForHome(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements SessionReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var session SessionModel
	var calls []ToolCallModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&session).Error; err != nil {
				return err
			}
			return tx.Where("session_id = ?", id).Find(&calls).Error
		})
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
		}
		return nil, err
	}

	result := sessionModelToDomain(session, calls)
	return &result, nil
}

// List implements SessionReader.List. Sessions are returned in creation order.
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Session, error) {
	var sessions []SessionModel
	var calls []ToolCallModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("created_at ASC").Order("id ASC").Find(&sessions).Error; err != nil {
				return err
			}
			return tx.Find(&calls).Error
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	callMap := make(map[string][]ToolCallModel)
	for _, c := range calls {
		callMap[c.SessionID] = append(callMap[c.SessionID], c)
	}

	result := make([]domain.Session, len(sessions))
	for i, s := range sessions {
		result[i] = sessionModelToDomain(s, callMap[s.ID])
	}
	return result, nil
}

// Add implements SessionWriter.Add
func (r *SQLiteRepository) Add(ctx context.Context, session domain.Session) error {
	model := domainToSessionModel(session)
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now().UTC()
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&SessionModel{}).Where("id = ?", session.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("session %s: %w", session.ID, domain.ErrSessionExists)
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}
			return nil
		})
	}, 3)
}

// Delete implements SessionWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("session_id = ?", id).Delete(&ToolCallModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete tool calls: %w", err)
			}
			result := tx.Where("id = ?", id).Delete(&SessionModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
			}
			return nil
		})
	}, 3)
}

// updateSession applies column updates to one session row
func (r *SQLiteRepository) updateSession(ctx context.Context, id string, updates map[string]any) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&SessionModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
		}
		return nil
	}, 3)
}

// ResetRuntimeState implements SessionStatePublisher.ResetRuntimeState.
// Everything published by a previous control client is cleared.
func (r *SQLiteRepository) ResetRuntimeState(ctx context.Context, id string, controlPID int) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&SessionModel{}).Where("id = ?", id).Updates(map[string]any{
				"busy":        false,
				"control_pid": controlPID,
				"initialized": false,
				"session_id":  "",
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
			}
			return tx.Where("session_id = ?", id).Delete(&ToolCallModel{}).Error
		})
	}, 3)
}

// UpdateInitialized implements SessionStatePublisher.UpdateInitialized
func (r *SQLiteRepository) UpdateInitialized(ctx context.Context, id string, initialized bool) error {
	return r.updateSession(ctx, id, map[string]any{"initialized": initialized})
}

// UpdateSessionID implements SessionStatePublisher.UpdateSessionID
func (r *SQLiteRepository) UpdateSessionID(ctx context.Context, id, sessionID string) error {
	return r.updateSession(ctx, id, map[string]any{"session_id": sessionID})
}

// UpdateBusy implements SessionStatePublisher.UpdateBusy
func (r *SQLiteRepository) UpdateBusy(ctx context.Context, id string, busy bool) error {
	return r.updateSession(ctx, id, map[string]any{"busy": busy})
}

// UpdateMode implements SessionStatePublisher.UpdateMode.
// A nil available list keeps the stored one.
func (r *SQLiteRepository) UpdateMode(ctx context.Context, id, modeID string, available []domain.Mode) error {
	return withRetry(func() error {
		model := SessionModel{ModeID: modeID, AvailableModes: available}
		columns := []string{"mode_id"}
		if available != nil {
			columns = append(columns, "available_modes")
		}
		result := r.db.WithContext(ctx).Model(&SessionModel{}).Where("id = ?", id).Select(columns).Updates(&model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
		}
		return nil
	}, 3)
}

// AddToolCall implements SessionStatePublisher.AddToolCall.
// An existing call with the same id is updated in place.
func (r *SQLiteRepository) AddToolCall(ctx context.Context, id string, call domain.ToolCall) error {
	model := ToolCallModel{
		CallID:            call.ID,
		CreatedAt:         call.CreatedAt,
		PendingPermission: call.PendingPermission,
		SessionID:         id,
		Title:             call.Title,
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&SessionModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
			}
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "session_id"}, {Name: "call_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"pending_permission", "title", "updated_at"}),
			}).Create(&model).Error
		})
	}, 3)
}

// RemoveToolCall implements SessionStatePublisher.RemoveToolCall.
// Removing an unknown call is not an error.
func (r *SQLiteRepository) RemoveToolCall(ctx context.Context, id, callID string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("session_id = ? AND call_id = ?", id, callID).
			Delete(&ToolCallModel{}).Error
	}, 3)
}

// ClearToolCalls implements SessionStatePublisher.ClearToolCalls
func (r *SQLiteRepository) ClearToolCalls(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("session_id = ?", id).Delete(&ToolCallModel{}).Error
	}, 3)
}

// GetFlag implements AppFlagStore.GetFlag. Unset flags read as false.
func (r *SQLiteRepository) GetFlag(ctx context.Context, name string) (bool, error) {
	var flag AppFlagModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&flag).Error
	}, 3)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return flag.Value, nil
}

// SetFlag implements AppFlagStore.SetFlag
func (r *SQLiteRepository) SetFlag(ctx context.Context, name string, value bool) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&AppFlagModel{Name: name, Value: value}).Error
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
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
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
