package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// MemReport provides a hierarchical memory usage report for a component.
type MemReport struct {
	Name       string      `json:"name"`
	TotalBytes int         `json:"total_bytes"`
	Children   []MemReport `json:"children,omitempty"`
}

// ChildBytes sums the sizes of the direct children.
func (r MemReport) ChildBytes() int {
	total := 0
	for _, child := range r.Children {
		total += child.TotalBytes
	}
	return total
}

// Fprint writes the report as an indented tree.
func (r MemReport) Fprint(w io.Writer, indent int) {
	fmt.Fprintf(w, "%s- %s: %s\n", strings.Repeat("  ", indent), r.Name, humanize.IBytes(uint64(r.TotalBytes)))
	for _, child := range r.Children {
		child.Fprint(w, indent+1)
	}
}

func (r MemReport) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(b)
}

func (r MemReport) String() string {
	var sb strings.Builder
	r.Fprint(&sb, 0)
	return sb.String()
}
