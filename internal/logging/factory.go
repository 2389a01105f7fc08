package logging

import (
	"fmt"

	"resume-composer/internal/logging/adapters"
	"resume-composer/internal/logging/types"
)

// AdapterFactory creates logging adapters based on configuration
type AdapterFactory struct{}

// NewAdapterFactory creates a new adapter factory
func NewAdapterFactory() *AdapterFactory {
	return &AdapterFactory{}
}

// CreateAdapter creates a logging adapter based on the provided configuration
func (f *AdapterFactory) CreateAdapter(adapterConfig types.AdapterConfig) (types.LogAdapter, error) {
	switch adapterConfig.Type {
	case "stdout":
		return f.createStdoutAdapter(adapterConfig), nil
	case "file":
		return f.createFileAdapter(adapterConfig)
	case "memory":
		return adapters.NewMemoryAdapter(adapterConfig.Name, getIntOption(adapterConfig.Options, "limit", 1000)), nil
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", adapterConfig.Type)
	}
}

func (f *AdapterFactory) createStdoutAdapter(adapterConfig types.AdapterConfig) types.LogAdapter {
	return adapters.NewStdoutAdapter(adapterConfig.Name, adapters.StdoutConfig{
		Format:    getStringOption(adapterConfig.Options, "format", "json"),
		Colorized: getBoolOption(adapterConfig.Options, "colorized", false),
		Stderr:    getBoolOption(adapterConfig.Options, "stderr", false),
	})
}

func (f *AdapterFactory) createFileAdapter(adapterConfig types.AdapterConfig) (types.LogAdapter, error) {
	return adapters.NewFileAdapter(adapterConfig.Name, adapters.FileConfig{
		FilePath:    getStringOption(adapterConfig.Options, "file_path", ""),
		Format:      getStringOption(adapterConfig.Options, "format", "json"),
		MaxSize:     getInt64Option(adapterConfig.Options, "max_size", 0),
		MaxBackups:  getIntOption(adapterConfig.Options, "max_backups", 5),
		CreateDirs:  getBoolOption(adapterConfig.Options, "create_dirs", true),
		SyncOnWrite: getBoolOption(adapterConfig.Options, "sync_on_write", false),
	})
}

// Helper functions to extract options with defaults. YAML decodes numbers as int,
// JSON as float64, so both are accepted.

func getStringOption(options map[string]interface{}, key string, defaultValue string) string {
	if str, ok := options[key].(string); ok {
		return str
	}
	return defaultValue
}

func getIntOption(options map[string]interface{}, key string, defaultValue int) int {
	switch v := options[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return defaultValue
}

func getInt64Option(options map[string]interface{}, key string, defaultValue int64) int64 {
	switch v := options[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return defaultValue
}

func getBoolOption(options map[string]interface{}, key string, defaultValue bool) bool {
	if b, ok := options[key].(bool); ok {
		return b
	}
	return defaultValue
}
