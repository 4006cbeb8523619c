package font

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewRequestDedupPreservesOrder(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no_duplicates",
			args: []string{"FiraCode", "Hack"},
			want: []string{"FiraCode", "Hack"},
		},
		{
			name: "exact_duplicate",
			args: []string{"FiraCode", "Hack", "FiraCode"},
			want: []string{"FiraCode", "Hack"},
		},
		{
			name: "case_insensitive_duplicate",
			args: []string{"FiraCode", "firacode", "FIRACODE"},
			want: []string{"FiraCode"},
		},
		{
			name: "first_spelling_wins",
			args: []string{"hack", "Hack"},
			want: []string{"hack"},
		},
		{
			name: "empty",
			args: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest(tt.args)
			if req.All() {
				t.Fatal("All() = true for a named request")
			}
			got := req.Names()
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewRequestWildcard(t *testing.T) {
	for _, args := range [][]string{
		{"*"},
		{"FiraCode", "*", "Hack"},
	} {
		req := NewRequest(args)
		if !req.All() {
			t.Errorf("NewRequest(%v).All() = false, want true", args)
		}
		if len(req.Names()) != 0 {
			t.Errorf("wildcard request still carries names: %v", req.Names())
		}
	}
}

func TestRequestNamesIsACopy(t *testing.T) {
	req := NewRequest([]string{"FiraCode"})
	names := req.Names()
	names[0] = "mutated"
	if req.Names()[0] != "FiraCode" {
		t.Error("request was mutated through Names()")
	}
}

func TestReportCounts(t *testing.T) {
	r := &Report{}
	r.Add(Outcome{Name: "A", Status: StatusInstalled, Files: 10})
	r.Add(Outcome{Name: "B", Status: StatusSkipped})
	r.Add(Outcome{Name: "C", Status: StatusFailed, Err: errors.New("boom")})
	r.Add(Outcome{Name: "D", Status: StatusFailed, Err: errors.New("boom")})

	if got := r.Installed(); got != 1 {
		t.Errorf("Installed = %d", got)
	}
	if got := r.Skipped(); got != 1 {
		t.Errorf("Skipped = %d", got)
	}
	if got := r.Failed(); got != 2 {
		t.Errorf("Failed = %d", got)
	}
	if r.TotalFailure() {
		t.Error("TotalFailure = true with a success present")
	}
}

func TestReportTotalFailure(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     bool
	}{
		{name: "empty_run", statuses: nil, want: false},
		{name: "all_failed", statuses: []Status{StatusFailed, StatusFailed}, want: true},
		{name: "skip_is_clean", statuses: []Status{StatusFailed, StatusSkipped}, want: false},
		{name: "one_success", statuses: []Status{StatusFailed, StatusInstalled}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{}
			for i, s := range tt.statuses {
				r.Add(Outcome{Name: string(rune('A' + i)), Status: s})
			}
			if got := r.TotalFailure(); got != tt.want {
				t.Errorf("TotalFailure = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if StatusInstalled.String() != "installed" || StatusSkipped.String() != "skipped" || StatusFailed.String() != "failed" {
		t.Error("status labels changed")
	}
}
