package logging

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"resume-composer/internal/logging/types"
)

// adapterSet is shared by a logger and every child derived from it
type adapterSet struct {
	mu       sync.RWMutex
	adapters map[string]types.LogAdapter
	level    LogLevel
}

// MultiLogger is the main implementation of the Logger interface. It fans each entry
// out to every registered adapter.
type MultiLogger struct {
	shared  *adapterSet
	context context.Context
	fields  map[string]interface{}
}

// NewMultiLogger creates a new MultiLogger instance at info level
func NewMultiLogger() *MultiLogger {
	return &MultiLogger{
		shared: &adapterSet{
			adapters: make(map[string]types.LogAdapter),
			level:    InfoLevel,
		},
		context: context.Background(),
		fields:  map[string]interface{}{},
	}
}

// NewLogger creates a logger at the given level writing to the given adapters
func NewLogger(level LogLevel, adapters ...types.LogAdapter) *MultiLogger {
	l := NewMultiLogger()
	l.shared.level = level
	for _, a := range adapters {
		l.shared.adapters[a.Name()] = a
	}
	return l
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return NewLogger(FatalLevel + 1)
}

func (l *MultiLogger) Debug(message string, fields ...map[string]interface{}) {
	l.Log(DebugLevel, message, fields...)
}

func (l *MultiLogger) Info(message string, fields ...map[string]interface{}) {
	l.Log(InfoLevel, message, fields...)
}

func (l *MultiLogger) Warn(message string, fields ...map[string]interface{}) {
	l.Log(WarnLevel, message, fields...)
}

func (l *MultiLogger) Error(message string, fields ...map[string]interface{}) {
	l.Log(ErrorLevel, message, fields...)
}

// Fatal logs a fatal message, closes adapters and exits
func (l *MultiLogger) Fatal(message string, fields ...map[string]interface{}) {
	l.Log(FatalLevel, message, fields...)
	l.Close()
	os.Exit(1)
}

// Log writes a message at the specified level to all adapters
func (l *MultiLogger) Log(level LogLevel, message string, fields ...map[string]interface{}) {
	l.shared.mu.RLock()
	defer l.shared.mu.RUnlock()

	if level < l.shared.level || len(l.shared.adapters) == 0 {
		return
	}

	entry := &types.LogEntry{
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
		Context:   l.context,
		Fields:    l.mergeFields(fields...),
	}

	for name, adapter := range l.shared.adapters {
		if err := adapter.Write(entry); err != nil {
			// stderr only, logging the failure through the logger could loop
			fmt.Fprintf(os.Stderr, "logging adapter %s error: %v\n", name, err)
		}
	}
}

// WithContext returns a child logger carrying ctx
func (l *MultiLogger) WithContext(ctx context.Context) Logger {
	return &MultiLogger{shared: l.shared, context: ctx, fields: l.copyFields()}
}

// WithField returns a child logger with one extra field
func (l *MultiLogger) WithField(key string, value interface{}) Logger {
	fields := l.copyFields()
	fields[key] = value
	return &MultiLogger{shared: l.shared, context: l.context, fields: fields}
}

// WithFields returns a child logger with extra fields
func (l *MultiLogger) WithFields(fields map[string]interface{}) Logger {
	merged := l.copyFields()
	for k, v := range fields {
		merged[k] = v
	}
	return &MultiLogger{shared: l.shared, context: l.context, fields: merged}
}

// SetLevel sets the minimum log level for this logger and its children
func (l *MultiLogger) SetLevel(level LogLevel) {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	l.shared.level = level
}

// GetLevel returns the current log level
func (l *MultiLogger) GetLevel() LogLevel {
	l.shared.mu.RLock()
	defer l.shared.mu.RUnlock()
	return l.shared.level
}

// AddAdapter registers a new log adapter
func (l *MultiLogger) AddAdapter(adapter types.LogAdapter) error {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()

	name := adapter.Name()
	if _, exists := l.shared.adapters[name]; exists {
		return fmt.Errorf("adapter %s already exists", name)
	}
	l.shared.adapters[name] = adapter
	return nil
}

// RemoveAdapter closes and unregisters a log adapter
func (l *MultiLogger) RemoveAdapter(adapterName string) error {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()

	adapter, exists := l.shared.adapters[adapterName]
	if !exists {
		return fmt.Errorf("adapter %s not found", adapterName)
	}
	if err := adapter.Close(); err != nil {
		return fmt.Errorf("failed to close adapter %s: %w", adapterName, err)
	}
	delete(l.shared.adapters, adapterName)
	return nil
}

// AdapterNames lists registered adapters in name order
func (l *MultiLogger) AdapterNames() []string {
	l.shared.mu.RLock()
	defer l.shared.mu.RUnlock()

	names := make([]string, 0, len(l.shared.adapters))
	for name := range l.shared.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes all adapters
func (l *MultiLogger) Close() error {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()

	var errs []error
	for name, adapter := range l.shared.adapters {
		if err := adapter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("adapter %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (l *MultiLogger) copyFields() map[string]interface{} {
	fields := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return fields
}

func (l *MultiLogger) mergeFields(additionalFields ...map[string]interface{}) map[string]interface{} {
	fields := l.copyFields()
	for _, fieldMap := range additionalFields {
		for k, v := range fieldMap {
			fields[k] = v
		}
	}
	return fields
}
