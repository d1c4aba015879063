package diagfmt

import (
	"fmt"
	"io"

	"widl/internal/layout"
	"widl/internal/sema"
)

// Dump writes the resolved declaration report: for each declaration kind, a
// count line followed by every declaration's name and wire shape. Names
// without a registered shape (consts, interfaces, structs) print the empty
// shape.
func Dump(w io.Writer, s *sema.Session) {
	fmt.Fprintf(w, "\nconst %d\n", len(s.Consts))
	for i := range s.Consts {
		dumpEntry(w, s, s.Consts[i].Name.Data())
	}

	fmt.Fprintf(w, "\nenum %d\n", len(s.Enums))
	for i := range s.Enums {
		dumpEntry(w, s, s.Enums[i].Name.Data())
	}

	fmt.Fprintf(w, "\ninterface %d\n", len(s.Interfaces))
	for i := range s.Interfaces {
		dumpEntry(w, s, s.Interfaces[i].Name.Data())
	}

	fmt.Fprintf(w, "\nstruct %d\n", len(s.Structs))
	for i := range s.Structs {
		dumpEntry(w, s, s.Structs[i].Name.Data())
	}

	fmt.Fprintf(w, "\nunion %d\n", len(s.Unions))
	for i := range s.Unions {
		dumpEntry(w, s, s.Unions[i].Name.Data())
	}
}

func dumpEntry(w io.Writer, s *sema.Session, name string) {
	shape, ok := s.Table.LookupShape(name)
	if !ok {
		shape = layout.Empty()
	}
	fmt.Fprintf(w, "\t%s\n", name)
	fmt.Fprintf(w, "\t\tsize: %d\n", shape.Size)
	fmt.Fprintf(w, "\t\talignment: %d\n", shape.Align)
}
