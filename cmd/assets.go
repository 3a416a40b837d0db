package cmd

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed assets/*.proto
var protoAssets embed.FS

// writeAssets extracts the service contract's .proto files into dir, so
// a caller wiring up a client in another language doesn't need network
// access to this repository to get them.
func writeAssets(dir string) error {
	entries, err := protoAssets.ReadDir("assets")
	if err != nil {
		return fmt.Errorf("read embedded assets: %w", err)
	}

	for _, entry := range entries {
		data, err := protoAssets.ReadFile(filepath.Join("assets", entry.Name()))
		if err != nil {
			return fmt.Errorf("read embedded asset %s: %w", entry.Name(), err)
		}
		dest := filepath.Join(dir, entry.Name())
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", dest, err)
		}
	}
	return nil
}
