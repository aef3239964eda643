package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/atenea/rumbo/core"
)

// Canonical catalog column headers, as they appear in the source workbook.
const (
	ColTitle           = "Curso"
	ColDescription     = "Descripción del Curso"
	ColCompetencyGroup = "Grupo de Competencias"
	ColCompetency      = "Competencia que se fomenta con el curso"
	ColSkill           = "Habilidad"
	ColKeywords        = "Palabras Clave"
	ColLevel           = "Nivel de complejidad"
	ColAccess          = "Tipo de Acceso (REA o Redireccionamiento)"
	ColPopulation      = "Población objetivo"
	ColQualification   = "Cualificación asociada (Marco Nacional de Cualificaciones de Colombia)"
	ColDuration        = "Duración del Curso"
	ColPortal          = "Portal o Aliado"
	ColURL             = "URL del Curso"
	ColMoodleURL       = "URL del curso Moodle"
)

// Loader reads course catalogs from tabular sources.
type Loader struct {
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// NewLoader creates a catalog loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadXLSX reads every sheet of the workbook at path into one catalog.
// Rows keep the name of the sheet they came from as their category label.
// An unreadable workbook is rejected; an empty workbook yields an empty
// catalog.
func (l *Loader) LoadXLSX(path string) (*core.Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	defer f.Close()
	return l.loadWorkbook(f)
}

// LoadXLSXReader reads a workbook from an in-memory stream, typically an
// upload. Same semantics as LoadXLSX.
func (l *Loader) LoadXLSXReader(r io.Reader) (*core.Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	defer f.Close()
	return l.loadWorkbook(f)
}

func (l *Loader) loadWorkbook(f *excelize.File) (*core.Catalog, error) {
	catalog := &core.Catalog{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %w", ErrUnreadableSource, sheet, err)
		}
		courses := coursesFromRows(rows, sheet)
		l.logger.Debug("loaded catalog sheet", "sheet", sheet, "courses", len(courses))
		catalog.Courses = append(catalog.Courses, courses...)
	}
	l.logger.Info("catalog loaded", "courses", catalog.Len())
	return catalog, nil
}

// LoadCSV reads a single-table CSV catalog. Every row is labelled with the
// given sheet label, mirroring the per-sheet labelling of workbook sources.
func (l *Loader) LoadCSV(r io.Reader, sheetLabel string) (*core.Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyHeader
	}
	catalog := &core.Catalog{Courses: coursesFromRows(rows, sheetLabel)}
	l.logger.Info("catalog loaded", "courses", catalog.Len())
	return catalog, nil
}

// coursesFromRows converts raw table rows into courses. The first non-empty
// row is the header; fully empty rows are skipped; unknown columns are
// ignored and missing ones leave their fields empty.
func coursesFromRows(rows [][]string, sheet string) []core.Course {
	header := -1
	var columns map[string]int
	for i, row := range rows {
		if emptyRow(row) {
			continue
		}
		header = i
		columns = make(map[string]int, len(row))
		for j, cell := range row {
			name := normalizeHeader(cell)
			if name == "" {
				continue
			}
			if _, ok := columns[name]; !ok {
				columns[name] = j
			}
		}
		break
	}
	if header < 0 {
		return nil
	}

	courses := make([]core.Course, 0, len(rows)-header-1)
	for _, row := range rows[header+1:] {
		if emptyRow(row) {
			continue
		}
		cell := func(col string) string {
			idx, ok := columns[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return cleanCell(row[idx])
		}
		course := core.Course{
			Title:           cell(ColTitle),
			Description:     cell(ColDescription),
			CompetencyGroup: cell(ColCompetencyGroup),
			Competency:      cell(ColCompetency),
			Skill:           cell(ColSkill),
			Keywords:        cell(ColKeywords),
			Level:           cell(ColLevel),
			Access:          cell(ColAccess),
			Population:      cell(ColPopulation),
			Qualification:   cell(ColQualification),
			Duration:        cell(ColDuration),
			Sheet:           sheet,
			Portal:          cell(ColPortal),
			URL:             cell(ColURL),
			MoodleURL:       cell(ColMoodleURL),
		}
		course.Hours = ParseHours(course.Duration)
		courses = append(courses, course)
	}
	return courses
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cleanCell(cell) != "" {
			return false
		}
	}
	return true
}
