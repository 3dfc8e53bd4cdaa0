// Copyright 2025 Sonic Labs
// This file is part of Zoc, a zero-outage capacity evaluator for dependent fading links
//
// Zoc is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zoc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Zoc. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrFormat     = errors.New("unknown output format")
	ErrIdentifier = errors.New("invalid sql identifier")
)

// Console output formats.
const (
	TableFormat    = "table"
	CsvFormat      = "csv"
	MarkdownFormat = "markdown"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Printer is a utility class to output data from the system
//
//go:generate mockgen -source print.go -destination print_mock.go -package utils
type Printer interface {
	Print() error
	Close()
}

type Printers struct {
	printers []Printer
}

// Print runs every printer, all of them even if some fail.
func (ps *Printers) Print() error {
	var errs []error
	for _, p := range ps.printers {
		if err := p.Print(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (ps *Printers) Close() {
	for _, p := range ps.printers {
		p.Close()
	}
}

func NewPrinters() *Printers {
	return &Printers{[]Printer{}}
}

func (ps *Printers) AddPrinter(p Printer) *Printers {
	ps.printers = append(ps.printers, p)
	return ps
}

// PrinterToWriter writes to any io.Writer
// Wrap f, returns a string to be printed
type PrinterToWriter struct {
	w io.Writer
	f func() (string, error)
}

func (p *PrinterToWriter) Print() error {
	text, err := p.f()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, text)
	return err
}

func (p *PrinterToWriter) Close() {
}

func NewPrinterToWriter(w io.Writer, f func() (string, error)) *PrinterToWriter {
	return &PrinterToWriter{w, f}
}

// NewPrinterToConsole renders the series to stdout in the given format.
func NewPrinterToConsole(format string, s *Series) *PrinterToWriter {
	return NewPrinterToWriter(os.Stdout, func() (string, error) {
		return FormatSeries(s, format)
	})
}

func (ps *Printers) AddPrinterToWriter(w io.Writer, format string, s *Series) *Printers {
	return ps.AddPrinter(NewPrinterToWriter(w, func() (string, error) {
		return FormatSeries(s, format)
	}))
}

func (ps *Printers) AddPrinterToConsole(isDisabled bool, format string, s *Series) *Printers {
	if isDisabled {
		return ps
	}
	return ps.AddPrinter(NewPrinterToConsole(format, s))
}

// FormatSeries renders a series as a table, csv or markdown.
func FormatSeries(s *Series, format string) (string, error) {
	tw := table.NewWriter()
	header := table.Row{}
	for _, name := range s.Names() {
		header = append(header, name)
	}
	tw.AppendHeader(header)
	for _, row := range s.Rows() {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = formatValue(v.(float64))
		}
		tw.AppendRow(r)
	}

	switch strings.ToLower(format) {
	case TableFormat, "":
		return tw.Render(), nil
	case CsvFormat:
		return tw.RenderCSV(), nil
	case MarkdownFormat:
		return tw.RenderMarkdown(), nil
	default:
		return "", errors.Wrapf(ErrFormat, "%q", format)
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// PrinterToFile writes the series as a tab delimited file with a header line.
// The file is replaced on every print.
type PrinterToFile struct {
	filepath string
	s        *Series
}

func (p *PrinterToFile) Print() (err error) {
	file, err := os.OpenFile(p.filepath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to print to file %s", p.filepath)
	}

	defer func(file *os.File) {
		e := file.Close()
		if e != nil {
			err = errors.Join(err, e)
		}
	}(file)

	w := csv.NewWriter(file)
	w.Comma = '\t'
	if err = w.Write(p.s.Names()); err != nil {
		return err
	}
	for _, row := range p.s.Rows() {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatValue(v.(float64))
		}
		if err = w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (p *PrinterToFile) Close() {
}

func NewPrinterToFile(filepath string, s *Series) *PrinterToFile {
	return &PrinterToFile{filepath, s}
}

func (ps *Printers) AddPrinterToFile(filepath string, s *Series) *Printers {
	if filepath != "" {
		ps.AddPrinter(NewPrinterToFile(filepath, s))
	}
	return ps
}

// PrinterToDb inserts the rows of the series into a table whose columns
// are named after the series columns.
type PrinterToDb struct {
	db    *sqlx.DB
	table string
	s     *Series
}

func newPrinterToDb(db *sqlx.DB, table string, s *Series) (*PrinterToDb, error) {
	if !identifier.MatchString(table) {
		return nil, errors.Wrapf(ErrIdentifier, "table %q", table)
	}
	for _, name := range s.Names() {
		if !identifier.MatchString(name) {
			return nil, errors.Wrapf(ErrIdentifier, "column %q", name)
		}
	}
	return &PrinterToDb{db, table, s}, nil
}

func (p *PrinterToDb) createStatement() string {
	columns := make([]string, 0, len(p.s.Names()))
	for _, name := range p.s.Names() {
		columns = append(columns, name+" REAL")
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", p.table, strings.Join(columns, ", "))
}

func (p *PrinterToDb) insertStatement() string {
	names := p.s.Names()
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		p.table,
		strings.Join(names, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", "),
	)
}

func (p *PrinterToDb) Print() (err error) {
	if _, err = p.db.Exec(p.createStatement()); err != nil {
		return errors.Wrapf(err, "failed to create table %s", p.table)
	}

	// Transaction is used to improve efficiency over bulk insert
	tx, err := p.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "unable to begin a transaction")
	}

	stmt, err := tx.Preparex(p.insertStatement())
	if err != nil {
		return errors.Join(errors.Wrap(err, "unable to prepare insert"), tx.Rollback())
	}
	defer func(stmt *sqlx.Stmt) {
		if e := stmt.Close(); e != nil {
			err = errors.Join(err, e)
		}
	}(stmt)

	for _, row := range p.s.Rows() {
		if _, err = stmt.Exec(row...); err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	return tx.Commit()
}

func (p *PrinterToDb) Close() {
	err := p.db.Close()
	if err != nil {
		panic(err)
	}
}

// NewPrinterToSqlite3 opens the sqlite3 database at conn for writing the
// series into table.
func NewPrinterToSqlite3(conn string, table string, s *Series) (*PrinterToDb, error) {
	db, err := sqlx.Open("sqlite3", conn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open connection to sqlite3 %s", conn)
	}

	// so that insert does not block
	if _, err = db.Exec("PRAGMA synchronous = OFF"); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	p, err := newPrinterToDb(db, table, s)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return p, nil
}

func (ps *Printers) AddPrinterToSqlite3(conn string, table string, s *Series) (*Printers, error) {
	if conn == "" {
		return ps, nil
	}
	p, err := NewPrinterToSqlite3(conn, table, s)
	if err != nil {
		return ps, err
	}
	return ps.AddPrinter(p), nil
}
