package tracing

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVWriter writes Records to a plain CSV file, one row per Record,
// buffering writes and flushing in batches.
type CSVWriter struct {
	path string
	file *os.File

	records    []Record
	bufferSize int
}

// NewCSVWriter creates a CSVWriter targeting path+".csv". If path is
// empty, a random name is minted with xid so concurrent runs never
// collide on the same file.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path, bufferSize: 1000}
}

// Init creates the CSV file, writing its header row. It panics if the
// target file already exists rather than overwriting a prior trace
// silently.
func (w *CSVWriter) Init() {
	if w.path == "" {
		w.path = "asimpy_trace_" + xid.New().String()
	}

	filename := w.path + ".csv"
	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("tracing: file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "Time,Serial,Pos,Label\n")

	atexit.Register(func() {
		w.Flush()
		if err := w.file.Close(); err != nil {
			panic(err)
		}
	})
}

// Write buffers r, flushing automatically once bufferSize Records have
// accumulated.
func (w *CSVWriter) Write(r Record) {
	w.records = append(w.records, r)
	if len(w.records) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes every buffered Record to disk.
func (w *CSVWriter) Flush() {
	for _, r := range w.records {
		fmt.Fprintf(w.file, "%.10f,%d,%s,%s\n", r.Time, r.Serial, r.Pos, r.Label)
	}
	w.records = nil
}
