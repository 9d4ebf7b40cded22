package analytics

import (
	"errors"
	"testing"
	"time"
)

func TestParseReference(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "valid",
			in:   "2020-12-20 00:00:00",
			want: time.Date(2020, 12, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "wrong layout",
			in:      "20.12.2020 00:00:00",
			wantErr: true,
		},
		{
			name:    "garbage",
			in:      "invalid_date",
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseReference(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				if !errors.Is(err, ErrInvalidTimestamp) {
					t.Fatalf("error %v is not ErrInvalidTimestamp", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMonthWindow(t *testing.T) {
	ref := time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC)
	w := MonthWindow(ref)

	wantStart := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Fatalf("start=%v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(ref) {
		t.Fatalf("end=%v, want %v", w.End, ref)
	}
	if w.End.Before(w.Start) {
		t.Fatalf("start after end: %+v", w)
	}
}

func TestQuarterWindow(t *testing.T) {
	cases := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
	}{
		{
			name:      "plain subtraction",
			ref:       time.Date(2023, 3, 10, 16, 0, 0, 0, time.UTC),
			wantStart: time.Date(2022, 12, 10, 16, 0, 0, 0, time.UTC),
		},
		{
			name:      "clamps to last day of February",
			ref:       time.Date(2023, 5, 31, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2023, 2, 28, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "clamps to leap-year February 29",
			ref:       time.Date(2020, 5, 31, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2020, 2, 29, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "year boundary",
			ref:       time.Date(2023, 1, 15, 8, 30, 0, 0, time.UTC),
			wantStart: time.Date(2022, 10, 15, 8, 30, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := QuarterWindow(tc.ref)
			if !w.Start.Equal(tc.wantStart) {
				t.Fatalf("start=%v, want %v", w.Start, tc.wantStart)
			}
			if !w.End.Equal(tc.ref) {
				t.Fatalf("end=%v, want %v", w.End, tc.ref)
			}
		})
	}
}

func TestWindowContains_InclusiveBounds(t *testing.T) {
	w := Window{
		Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC),
	}

	if !w.Contains(w.Start) {
		t.Fatalf("start bound must be included")
	}
	if !w.Contains(w.End) {
		t.Fatalf("end bound must be included")
	}
	if w.Contains(w.Start.Add(-time.Second)) {
		t.Fatalf("instant before start must be excluded")
	}
	if w.Contains(w.End.Add(time.Second)) {
		t.Fatalf("instant after end must be excluded")
	}
}
