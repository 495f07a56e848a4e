package dialect

import (
	"fmt"
	"strings"
)

// mergeUpsert renders the MERGE-based upsert shared by Oracle, SQL Server
// and Vertica. The source row is a single SELECT of bound parameters
// aliased s; the target table is aliased t.
func mergeUpsert(f baseFuncs, p UpsertParams, fromDual bool) (string, []any, error) {
	if err := p.validate(); err != nil {
		return "", nil, err
	}
	on := p.On
	if on == "" {
		if len(p.Keys) == 0 {
			return "", nil, fmt.Errorf("dialect: merge into %q on %s requires key columns or an explicit match condition", p.Table, f.name)
		}
		conds := make([]string, len(p.Keys))
		for i, k := range p.Keys {
			qk := f.quoter.Ident(k)
			conds[i] = fmt.Sprintf("t.%s = s.%s", qk, qk)
		}
		on = strings.Join(conds, " AND ")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "MERGE INTO %s t USING (SELECT ", f.quoter.Ident(p.Table))
	for i, c := range p.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "? AS %s", f.quoter.Ident(c))
	}
	if fromDual {
		b.WriteString(" FROM DUAL")
	}
	fmt.Fprintf(&b, ") s ON (%s)", on)
	if update := p.nonKey(); len(update) > 0 {
		b.WriteString(" WHEN MATCHED THEN UPDATE SET ")
		for i, c := range update {
			if i > 0 {
				b.WriteString(", ")
			}
			qc := f.quoter.Ident(c)
			fmt.Fprintf(&b, "t.%s = s.%s", qc, qc)
		}
	}
	b.WriteString(" WHEN NOT MATCHED THEN INSERT (")
	b.WriteString(f.quoter.Idents(p.Columns...))
	b.WriteString(") VALUES (")
	for i, c := range p.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "s.%s", f.quoter.Ident(c))
	}
	b.WriteString(")")
	return b.String(), p.Values, nil
}
