package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"widl/internal/layout"
	"widl/internal/sema"
)

// Current schema version - increment when ExportPayload format changes.
const exportSchemaVersion uint16 = 1

// ExportAllocation mirrors layout.Allocation for serialization.
type ExportAllocation struct {
	Size        int
	Align       int
	Bound       int64
	Allocations []ExportAllocation
}

// ExportShape is one resolved type's wire shape.
type ExportShape struct {
	Name        string
	Size        int
	Align       int
	Allocations []ExportAllocation
}

// ExportPayload is the layout table written for downstream code generators.
// Shapes are sorted by name for reproducible output.
type ExportPayload struct {
	Schema  uint16
	Package string
	Shapes  []ExportShape
}

// BuildExportPayload collects the session's resolved shapes.
func BuildExportPayload(pkg string, s *sema.Session) *ExportPayload {
	resolved := s.Table.ResolvedShapes()
	shapes := make([]ExportShape, 0, len(resolved))
	for name, shape := range resolved {
		shapes = append(shapes, ExportShape{
			Name:        name,
			Size:        shape.Size,
			Align:       shape.Align,
			Allocations: exportAllocations(shape),
		})
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Name < shapes[j].Name })
	return &ExportPayload{
		Schema:  exportSchemaVersion,
		Package: pkg,
		Shapes:  shapes,
	}
}

func exportAllocations(shape layout.TypeShape) []ExportAllocation {
	if len(shape.Allocations) == 0 {
		return nil
	}
	out := make([]ExportAllocation, 0, len(shape.Allocations))
	for _, alloc := range shape.Allocations {
		out = append(out, ExportAllocation{
			Size:        alloc.Shape.Size,
			Align:       alloc.Shape.Align,
			Bound:       alloc.Bound,
			Allocations: exportAllocations(alloc.Shape),
		})
	}
	return out
}

// Export writes the payload to path, replacing any existing file
// atomically.
func Export(path string, payload *ExportPayload) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadExport loads a payload back, rejecting unknown schema versions.
func ReadExport(path string) (*ExportPayload, error) {
	f, err := os.Open(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload ExportPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Schema != exportSchemaVersion {
		return nil, fmt.Errorf("%s: unsupported layout table version %d", path, payload.Schema)
	}
	return &payload, nil
}
