package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "INTERFACE", "TYPE")
	tbl.Row("00:01:1", "UNI")
	tbl.Row("00:01:2", "NNI")
	tbl.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4 (headers, divider, 2 rows)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "INTERFACE") {
		t.Errorf("header line = %q, want INTERFACE first", lines[0])
	}
	if !strings.HasPrefix(lines[1], "---------") {
		t.Errorf("divider line = %q, want dashes", lines[1])
	}
	if !strings.Contains(lines[2], "00:01:1") || !strings.Contains(lines[2], "UNI") {
		t.Errorf("row line = %q, want id and type", lines[2])
	}
}

func TestTable_EmptyProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "INTERFACE", "TYPE")
	tbl.Flush()

	if buf.Len() != 0 {
		t.Errorf("empty table wrote %q, want no output", buf.String())
	}
}
