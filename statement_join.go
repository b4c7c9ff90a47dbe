package sqlquery

// SetJoin appends a joined table. The join type defaults to JOIN.
// Joins are kept in order and never deduplicated.
func (s *Statement) SetJoin(j Join) {
	if j.Type == "" {
		j.Type = JoinDefault
	}
	s.joins = append(s.joins, j)
}

// Join appends a plain JOIN, with an optional alias.
func (s *Statement) Join(table, on string, alias ...string) *Statement {
	return s.join(JoinDefault, table, on, alias)
}

// InnerJoin appends an INNER JOIN, with an optional alias.
func (s *Statement) InnerJoin(table, on string, alias ...string) *Statement {
	return s.join(JoinInner, table, on, alias)
}

// LeftJoin appends a LEFT JOIN, with an optional alias.
func (s *Statement) LeftJoin(table, on string, alias ...string) *Statement {
	return s.join(JoinLeft, table, on, alias)
}

// RightJoin appends a RIGHT JOIN, with an optional alias.
func (s *Statement) RightJoin(table, on string, alias ...string) *Statement {
	return s.join(JoinRight, table, on, alias)
}

// CrossJoin appends a CROSS JOIN, which has no ON predicate.
func (s *Statement) CrossJoin(table string, alias ...string) *Statement {
	return s.join(JoinCross, table, "", alias)
}

// Joins returns a copy of the joined tables.
func (s *Statement) Joins() []Join {
	return append([]Join(nil), s.joins...)
}

func (s *Statement) join(typ, table, on string, alias []string) *Statement {
	j := Join{Type: typ, Table: table, On: on}
	if len(alias) > 0 {
		j.Alias = alias[0]
	}
	s.SetJoin(j)
	return s
}
