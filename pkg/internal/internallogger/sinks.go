package internallogger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

// AddSink attaches an additional output core identified by name.
func (z *ZapLoggerAdapter) AddSink(identifier string, config types.SinkConfig) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	var ws zapcore.WriteSyncer

	switch config.Type {
	case string(types.FileSink):
		path, ok := config.Config["path"].(string)
		if !ok {
			return fmt.Errorf("file path configuration is missing or invalid")
		}
		dir := filepath.Dir(path)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %v", dir, err)
			}
		}
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open file %s: %v", path, err)
		}
		ws = zapcore.AddSync(file)
	case string(types.StdoutSink):
		ws = zapcore.Lock(os.Stdout)
	default:
		return fmt.Errorf("unsupported sink type: %s", config.Type)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(standardEncoderConfig()), ws, z.atomicLevel)
	z.sinks[identifier] = core
	z.rebuildLocked()

	return nil
}

// RemoveSink removes a sink based on its identifier.
func (z *ZapLoggerAdapter) RemoveSink(identifier string) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if _, ok := z.sinks[identifier]; !ok {
		return fmt.Errorf("sink not found: %s", identifier)
	}
	delete(z.sinks, identifier)
	z.rebuildLocked()
	return nil
}

// ListSinks lists all configured sinks.
func (z *ZapLoggerAdapter) ListSinks() ([]string, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	var identifiers []string
	for id := range z.sinks {
		identifiers = append(identifiers, id)
	}
	return identifiers, nil
}
