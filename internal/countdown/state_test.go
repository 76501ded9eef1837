package countdown

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func TestCompute_Examples(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	target := NewTarget(time.Date(2025, 12, 28, 9, 0, 0, 0, loc))

	tests := []struct {
		name string
		now  time.Time
		want State
	}{
		{
			name: "one second short of a full day",
			now:  time.Date(2025, 12, 27, 9, 0, 1, 0, loc),
			want: State{Days: 0, Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name: "day before at eight",
			now:  time.Date(2025, 12, 27, 8, 0, 1, 0, loc),
			want: State{Days: 1, Hours: 0, Minutes: 59, Seconds: 59},
		},
		{
			name: "sub-second remainder truncates",
			now:  time.Date(2025, 12, 28, 8, 59, 58, 500_000_000, loc),
			want: State{Seconds: 1},
		},
		{
			name: "less than a second left",
			now:  time.Date(2025, 12, 28, 8, 59, 59, 999_000_000, loc),
			want: State{},
		},
		{
			name: "exactly at target",
			now:  target.At(),
			want: Arrived,
		},
		{
			name: "after target",
			now:  target.At().Add(72 * time.Hour),
			want: Arrived,
		},
		{
			name: "many days out",
			now:  time.Date(2025, 1, 1, 0, 0, 0, 0, loc),
			want: State{Days: 361, Hours: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(target, tt.now)
			if got != tt.want {
				t.Errorf("Compute = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCompute_ZeroTargetHasArrived(t *testing.T) {
	got := Compute(Target{}, time.Now())
	if !got.Arrived {
		t.Errorf("zero target should have arrived, got %+v", got)
	}
}

func TestCompute_FarFutureTarget(t *testing.T) {
	target := NewTarget(time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := Compute(target, now)
	want := State{Days: 136600}
	if got != want {
		t.Errorf("Compute = %+v, want %+v", got, want)
	}
}

func TestDecompose_Bounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	deltas := []int64{1, 999, 1000, 59_999, 60_000, msPerHour - 1, msPerHour, msPerDay - 1, msPerDay, msPerDay + 1}
	for i := 0; i < 2000; i++ {
		deltas = append(deltas, 1+r.Int63n(400*msPerDay))
	}

	for _, delta := range deltas {
		s := decompose(delta)
		if s.Arrived {
			t.Fatalf("delta=%d reported arrived", delta)
		}
		if s.Days < 0 || s.Hours < 0 || s.Hours > 23 || s.Minutes < 0 || s.Minutes > 59 || s.Seconds < 0 || s.Seconds > 59 {
			t.Fatalf("delta=%d out of range: %+v", delta, s)
		}
		low := s.Days*msPerDay + s.Hours*msPerHour + s.Minutes*msPerMinute + s.Seconds*msPerSecond
		if low > delta || delta >= low+msPerSecond {
			t.Fatalf("delta=%d not bracketed by %+v", delta, s)
		}
	}
}

func TestDecompose_NonPositiveArrives(t *testing.T) {
	for _, delta := range []int64{0, -1, -msPerDay} {
		if got := decompose(delta); got != Arrived {
			t.Errorf("decompose(%d) = %+v, want arrived", delta, got)
		}
	}
}

func TestState_Pulses(t *testing.T) {
	tests := []struct {
		state State
		want  []Unit
	}{
		{State{Days: 3, Hours: 2, Minutes: 1, Seconds: 5}, []Unit{UnitSeconds}},
		{State{Days: 3, Hours: 2, Minutes: 1}, []Unit{UnitSeconds, UnitMinutes}},
		{State{Days: 3, Hours: 2}, []Unit{UnitSeconds, UnitMinutes, UnitHours}},
		{State{Days: 3}, []Unit{UnitSeconds, UnitMinutes, UnitHours, UnitDays}},
		{Arrived, nil},
	}
	for _, tt := range tests {
		if got := tt.state.Pulses(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v Pulses = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestState_Padded(t *testing.T) {
	s := State{Days: 123, Hours: 4, Minutes: 0, Seconds: 59}
	if got := s.Padded(UnitDays); got != "123" {
		t.Errorf("days %q, want 123", got)
	}
	if got := s.Padded(UnitHours); got != "04" {
		t.Errorf("hours %q, want 04", got)
	}
	if got := s.Padded(UnitMinutes); got != "00" {
		t.Errorf("minutes %q, want 00", got)
	}
	if got := s.String(); got != "123d 04h 00m 59s" {
		t.Errorf("String %q", got)
	}
}

func TestParseTarget(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	target, err := ParseTarget("2025-12-28T09:00:00", loc)
	if err != nil {
		t.Fatalf("ParseTarget: %v", err)
	}
	want := time.Date(2025, 12, 28, 9, 0, 0, 0, loc)
	if !target.At().Equal(want) {
		t.Errorf("At %v, want %v", target.At(), want)
	}

	bad, err := ParseTarget("next saturday", loc)
	if err == nil {
		t.Fatal("expected error for malformed literal")
	}
	if !bad.IsZero() {
		t.Error("malformed literal should yield the zero target")
	}
	if !Compute(bad, time.Now()).Arrived {
		t.Error("malformed target should arrive immediately")
	}
}
