package datagen

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/schema"
)

// HeaderPrefix starts the first line of every artifact.
const HeaderPrefix = "// Code generated by datagen"

// Render produces the gofmt-formatted artifact for t: the record struct and
// the fixed-length table, plus Scalable methods when the dataset asks for
// them. Output depends only on t, so identical input renders identical bytes.
func Render(t *Table) ([]byte, error) {
	ds := t.Dataset
	if err := ds.validate(); err != nil {
		return nil, err
	}

	rows := make([]string, len(t.Rows))
	needsMath := false
	for i, row := range t.Rows {
		if len(row) != len(ds.Schema) {
			return nil, errors.AssertionFailedf("dataset %s: row %d has %d values for %d columns", ds.Name, i, len(row), len(ds.Schema))
		}
		lits := make([]string, len(row))
		for j, v := range row {
			lits[j] = schema.FormatLiteral(ds.Schema[j].Type, v)
			if ds.Schema[j].Type.IsFloat() && strings.Contains(lits[j], "math.") {
				needsMath = true
			}
		}
		rows[i] = "\t{" + strings.Join(lits, ", ") + "},\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s from %s. DO NOT EDIT.\n\n", HeaderPrefix, ds.label()))
	sb.WriteString(fmt.Sprintf("package %s\n\n", ds.Package))
	if needsMath {
		sb.WriteString("import \"math\"\n\n")
	}

	sb.WriteString(fmt.Sprintf("// %s is one record of the %s dataset.\n", ds.TypeName, ds.Name))
	sb.WriteString(fmt.Sprintf("type %s struct {\n", ds.TypeName))
	for _, col := range ds.Schema {
		sb.WriteString(fmt.Sprintf("\t%s %s\n", col.FieldName(), col.Type.GoType()))
	}
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("// %s holds the %d records of %s in file order.\n", ds.Table, len(rows), ds.label()))
	if len(rows) == 0 {
		sb.WriteString(fmt.Sprintf("var %s = [0]%s{}\n", ds.Table, ds.TypeName))
	} else {
		sb.WriteString(fmt.Sprintf("var %s = [%d]%s{\n", ds.Table, len(rows), ds.TypeName))
		for _, row := range rows {
			sb.WriteString(row)
		}
		sb.WriteString("}\n")
	}

	if ds.Scalable {
		writeScalable(&sb, ds)
	}

	src, err := imports.Process(filepath.Base(ds.Output), []byte(sb.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s: failed to format generated source", ds.Name)
	}
	return src, nil
}

// writeScalable emits the methods scale.SubtractMean needs. Floating point
// columns are exposed; every other column reports false.
func writeScalable(sb *strings.Builder, ds Dataset) {
	var floats []int
	for i, col := range ds.Schema {
		if col.Type.IsFloat() {
			floats = append(floats, i)
		}
	}

	sb.WriteString(fmt.Sprintf("\n// ColumnCount reports the number of columns in a %s record.\n", ds.TypeName))
	sb.WriteString(fmt.Sprintf("func (r *%s) ColumnCount() int {\n\treturn %d\n}\n", ds.TypeName, len(ds.Schema)))

	sb.WriteString("\n// Float returns column i as a float64. Columns that are not floating point report false.\n")
	sb.WriteString(fmt.Sprintf("func (r *%s) Float(i int) (float64, bool) {\n", ds.TypeName))
	if len(floats) > 0 {
		sb.WriteString("\tswitch i {\n")
		for _, i := range floats {
			col := ds.Schema[i]
			value := "r." + col.FieldName()
			if col.Type == schema.Float32Type {
				value = "float64(" + value + ")"
			}
			sb.WriteString(fmt.Sprintf("\tcase %d:\n\t\treturn %s, true\n", i, value))
		}
		sb.WriteString("\t}\n")
	}
	sb.WriteString("\treturn 0, false\n}\n")

	sb.WriteString("\n// SetFloat stores v into column i. Columns that are not floating point are left unchanged.\n")
	sb.WriteString(fmt.Sprintf("func (r *%s) SetFloat(i int, v float64) {\n", ds.TypeName))
	if len(floats) > 0 {
		sb.WriteString("\tswitch i {\n")
		for _, i := range floats {
			col := ds.Schema[i]
			value := "v"
			if col.Type == schema.Float32Type {
				value = "float32(v)"
			}
			sb.WriteString(fmt.Sprintf("\tcase %d:\n\t\tr.%s = %s\n", i, col.FieldName(), value))
		}
		sb.WriteString("\t}\n")
	}
	sb.WriteString("}\n")
}
