package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestScoreCmdFlags(t *testing.T) {
	cmd := newScoreCmd()
	f := cmd.Flags()

	// Test default output format
	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}

	for _, flag := range []string{"input", "income", "expenses", "debts", "age", "employment", "years", "amount", "strategy", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestCompareCmdFlags(t *testing.T) {
	cmd := newCompareCmd()
	f := cmd.Flags()

	for _, flag := range []string{"input", "income", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestDecideCmdFlags(t *testing.T) {
	cmd := newDecideCmd()
	f := cmd.Flags()

	// Test default employment type
	employment, _ := f.GetString("employment")
	if employment != "permanent" {
		t.Errorf("default employment = %q, want permanent", employment)
	}

	for _, flag := range []string{"input", "income", "strategy", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestProfileOptsResolveFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var opts profileOpts
	opts.register(cmd)

	if err := cmd.Flags().Parse([]string{
		"--income", "60000", "--expenses", "20000", "--age", "40",
		"--years", "10", "--amount", "600000",
	}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	p, err := opts.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.MonthlyIncome != 60000 {
		t.Errorf("MonthlyIncome = %v, want 60000", p.MonthlyIncome)
	}
	if p.Age != 40 {
		t.Errorf("Age = %d, want 40", p.Age)
	}
	if string(p.EmploymentType) != "permanent" {
		t.Errorf("EmploymentType = %q, want permanent", p.EmploymentType)
	}
}

func TestProfileOptsResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")

	data, _ := json.Marshal(map[string]any{
		"monthly_income":        5000,
		"monthly_expenses":      2000,
		"age":                   35,
		"employment_type":       "contract",
		"employment_years":      3,
		"requested_loan_amount": 20000,
	})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	cmd := &cobra.Command{Use: "test"}
	var opts profileOpts
	opts.register(cmd)
	if err := cmd.Flags().Parse([]string{"--input", path, "--age", "36"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	p, err := opts.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.MonthlyIncome != 5000 {
		t.Errorf("MonthlyIncome = %v, want 5000 from file", p.MonthlyIncome)
	}
	if p.Age != 36 {
		t.Errorf("Age = %d, want flag override 36", p.Age)
	}
	if string(p.EmploymentType) != "contract" {
		t.Errorf("EmploymentType = %q, want contract from file", p.EmploymentType)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
