package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = map[string]string{
	"name": "t.name",
	"type": "t.type",
	"date": "t.date",
}

func TestPredicate_SQL(t *testing.T) {
	tests := []struct {
		pred       *Predicate
		name       string
		wantClause string
		wantArgs   []any
		wantErr    bool
	}{
		{
			name:       "nil predicate compiles to empty clause",
			pred:       nil,
			wantClause: "",
		},
		{
			name:       "equality",
			pred:       Eq("type", "income"),
			wantClause: "t.type = ?",
			wantArgs:   []any{"income"},
		},
		{
			name:       "range bound",
			pred:       Gte("date", "2024-01-01"),
			wantClause: "t.date >= ?",
			wantArgs:   []any{"2024-01-01"},
		},
		{
			name:       "conjunction",
			pred:       And(Gte("date", "a"), Lte("date", "b"), Eq("type", "expense")),
			wantClause: "(t.date >= ? AND t.date <= ? AND t.type = ?)",
			wantArgs:   []any{"a", "b", "expense"},
		},
		{
			name:       "conjunction skips nil members",
			pred:       And(nil, Eq("name", "Food"), nil),
			wantClause: "t.name = ?",
			wantArgs:   []any{"Food"},
		},
		{
			name:    "unknown field rejected",
			pred:    Eq("amount; DROP TABLE", 1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args, err := tt.pred.SQL(testColumns)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestAnd_AllNilIsNoPredicate(t *testing.T) {
	assert.Nil(t, And(nil, nil))
}

func TestOrderBy(t *testing.T) {
	clause, err := OrderBy([]SortKey{Desc("date"), Asc("name")}, testColumns)
	require.NoError(t, err)
	assert.Equal(t, "t.date DESC, t.name ASC", clause)

	clause, err = OrderBy(nil, testColumns)
	require.NoError(t, err)
	assert.Empty(t, clause)

	_, err = OrderBy([]SortKey{Asc("bogus")}, testColumns)
	require.Error(t, err)
}
