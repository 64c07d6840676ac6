package leaderboard

import (
	"strings"
	"testing"
)

func TestInsertScoreQuery(t *testing.T) {
	sqlStr, args, err := insertScoreQuery("ABC", 7).ToSql()
	if err != nil {
		t.Fatalf("ToSql() failed: %v", err)
	}
	if !strings.HasPrefix(sqlStr, "INSERT INTO scores") || !strings.Contains(sqlStr, "$1") || !strings.Contains(sqlStr, "$2") {
		t.Errorf("unexpected insert SQL: %s", sqlStr)
	}
	if len(args) != 2 || args[0] != "ABC" || args[1] != 7 {
		t.Errorf("args = %v", args)
	}
}

func TestTopScoresQuery(t *testing.T) {
	sqlStr, args, err := topScoresQuery(5).ToSql()
	if err != nil {
		t.Fatalf("ToSql() failed: %v", err)
	}
	expected := "SELECT name, score FROM scores ORDER BY score DESC, id ASC LIMIT 5"
	if sqlStr != expected {
		t.Errorf("SQL = %q, expected %q", sqlStr, expected)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, expected none", args)
	}
}
