package export

import (
	"fmt"
	"os"
)

// WriteFile writes the report to path in the format its extension names.
func WriteFile(path string, r Report) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	switch format {
	case FormatPDF:
		return WritePDF(f, r)
	default:
		return WriteXLSX(f, r)
	}
}
