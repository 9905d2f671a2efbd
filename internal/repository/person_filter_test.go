package repository

import (
	"reflect"
	"testing"
)

func TestPersonFilter_Empty(t *testing.T) {
	where, args := PersonFilter{}.where(true)
	if where != "" || args != nil {
		t.Errorf("Expected no clause, got %q %v", where, args)
	}

	where, _ = PersonFilter{Name: "   "}.where(true)
	if where != "" {
		t.Errorf("Expected blank name to be ignored, got %q", where)
	}
}

func TestPersonFilter_SingleTokenMatchesEitherName(t *testing.T) {
	where, args := PersonFilter{Name: "John"}.where(true)

	want := "WHERE (first_name ILIKE $1 OR last_name ILIKE $1)"
	if where != want {
		t.Errorf("Expected %q, got %q", want, where)
	}
	if !reflect.DeepEqual(args, []interface{}{"%John%"}) {
		t.Errorf("Unexpected args %v", args)
	}
}

func TestPersonFilter_MultipleTokensUseFirstAndLast(t *testing.T) {
	where, args := PersonFilter{Name: "  John  Paul Smith "}.where(true)

	want := "WHERE first_name ILIKE $1 AND last_name ILIKE $2"
	if where != want {
		t.Errorf("Expected %q, got %q", want, where)
	}
	if !reflect.DeepEqual(args, []interface{}{"%John%", "%Smith%"}) {
		t.Errorf("Unexpected args %v", args)
	}
}

func TestPersonFilter_ClassroomCombinesWithName(t *testing.T) {
	where, args := PersonFilter{Name: "ann", ClassroomID: "c-1"}.where(true)

	want := "WHERE (first_name ILIKE $1 OR last_name ILIKE $1) AND classroom_id = $2"
	if where != want {
		t.Errorf("Expected %q, got %q", want, where)
	}
	if !reflect.DeepEqual(args, []interface{}{"%ann%", "c-1"}) {
		t.Errorf("Unexpected args %v", args)
	}

	where, args = PersonFilter{ClassroomID: "c-1"}.where(true)
	if where != "WHERE classroom_id = $1" || len(args) != 1 {
		t.Errorf("Unexpected classroom-only clause %q %v", where, args)
	}
}

func TestPersonFilter_ClassroomIgnoredForTeachers(t *testing.T) {
	where, args := PersonFilter{ClassroomID: "c-1"}.where(false)
	if where != "" || len(args) != 0 {
		t.Errorf("Expected classroom to be ignored, got %q %v", where, args)
	}
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	cases := map[string]string{
		"smith":  "%smith%",
		"50%":    `%50\%%`,
		"a_b":    `%a\_b%`,
		`back\s`: `%back\\s%`,
	}

	for in, want := range cases {
		if got := containsPattern(in); got != want {
			t.Errorf("containsPattern(%q) = %q, expected %q", in, got, want)
		}
	}
}
