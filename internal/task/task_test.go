package task

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-03-01 ")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(Date(2024, time.March, 1)) {
		t.Errorf("ParseDate = %v", got)
	}

	if _, err := ParseDate("03/01/2024"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("FormatDate(zero) = %q, want -", got)
	}
	if got := FormatDate(Date(2024, time.January, 5)); got != "2024-01-05" {
		t.Errorf("FormatDate = %q", got)
	}
}
