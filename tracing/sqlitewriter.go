package tracing

import (
	"database/sql"
	"fmt"
	"os"

	// Registers the sqlite3 driver under database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteWriter batches Records into a SQLite database, for traces large
// enough that scanning a CSV file by hand is inconvenient.
type SQLiteWriter struct {
	db        *sql.DB
	statement *sql.Stmt

	dbName    string
	batch     []Record
	batchSize int
}

// NewSQLiteWriter creates a SQLiteWriter targeting path+".sqlite3". If
// path is empty, a random name is minted with xid.
func NewSQLiteWriter(path string) *SQLiteWriter {
	w := &SQLiteWriter{dbName: path, batchSize: 10000}
	atexit.Register(func() { w.Flush() })
	return w
}

// Init opens the database, creates its schema, and prepares the insert
// statement used by Write/Flush.
func (w *SQLiteWriter) Init() {
	if w.dbName == "" {
		w.dbName = "asimpy_trace_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"
	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("tracing: file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}
	w.db = db

	w.mustExecute(`
		CREATE TABLE trace (
			time   FLOAT        NOT NULL,
			serial INTEGER      NOT NULL,
			pos    VARCHAR(10)  NOT NULL,
			label  VARCHAR(100) NOT NULL
		);
	`)
	w.mustExecute(`CREATE INDEX trace_time_index ON trace (time);`)

	stmt, err := w.db.Prepare(`INSERT INTO trace VALUES (?, ?, ?, ?)`)
	if err != nil {
		panic(err)
	}
	w.statement = stmt
}

// Write buffers r, flushing automatically once batchSize Records have
// accumulated.
func (w *SQLiteWriter) Write(r Record) {
	w.batch = append(w.batch, r)
	if len(w.batch) >= w.batchSize {
		w.Flush()
	}
}

// Flush inserts every buffered Record inside one transaction.
func (w *SQLiteWriter) Flush() {
	if len(w.batch) == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	for _, r := range w.batch {
		if _, err := w.statement.Exec(r.Time, r.Serial, r.Pos, r.Label); err != nil {
			panic(err)
		}
	}
	w.mustExecute("COMMIT TRANSACTION")

	w.batch = nil
}

func (w *SQLiteWriter) mustExecute(query string) {
	if _, err := w.db.Exec(query); err != nil {
		panic(fmt.Errorf("tracing: %s: %w", query, err))
	}
}
